package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates gradient noise from random unit vectors on a hashed lattice
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds the gradient and permutation tables from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		).Normalize()
	}
	generatePermutation(random, &p.permX)
	generatePermutation(random, &p.permY)
	generatePermutation(random, &p.permZ)
	return p
}

func generatePermutation(random *rand.Rand, perm *[perlinPointCount]int) {
	for i := range perm {
		perm[i] = i
	}
	random.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
}

// Noise returns smooth noise in roughly [-1, 1] at point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}
	return perlinInterpolate(&c, u, v, w)
}

// perlinInterpolate blends lattice gradients with Hermite smoothing
func perlinInterpolate(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise with halving weights
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	temp := point
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}
	return math.Abs(accum)
}

// NoiseStyle selects how noise values become a gray level
type NoiseStyle int

const (
	NoiseSmooth NoiseStyle = iota
	NoiseTurbulence
	NoiseMarble
)

// NoiseTexture is a grayscale procedural texture driven by Perlin noise
type NoiseTexture struct {
	Perlin *Perlin
	Scale  float64
	Depth  int
	Style  NoiseStyle
}

// NewNoiseTexture creates a noise texture with its own Perlin tables
func NewNoiseTexture(random *rand.Rand, scale float64, depth int, style NoiseStyle) *NoiseTexture {
	return &NoiseTexture{
		Perlin: NewPerlin(random),
		Scale:  scale,
		Depth:  depth,
		Style:  style,
	}
}

// Evaluate returns a gray level in [0, 1] at point
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	var level float64
	switch n.Style {
	case NoiseTurbulence:
		level = n.Perlin.Turbulence(point.Multiply(n.Scale), n.Depth)
	case NoiseMarble:
		level = 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Perlin.Turbulence(point, n.Depth)))
	default:
		level = 0.5 * (1 + n.Perlin.Noise(point.Multiply(n.Scale)))
	}
	level = math.Max(0, math.Min(1, level))
	return core.NewVec3(level, level, level)
}

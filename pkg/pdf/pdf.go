// Package pdf provides probability densities over directions for importance sampling.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CosinePDF samples directions proportional to the cosine with a surface normal
type CosinePDF struct {
	basis core.ONB
}

// NewCosinePDF creates a cosine-weighted density around normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{basis: core.NewONB(normal)}
}

// Value returns cos(θ)/π for directions above the surface and zero below it
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.basis.W())
	return math.Max(0, cosine/math.Pi)
}

// Generate draws a cosine-weighted direction
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.basis.Transform(core.RandomCosineDirection(sampler.Get2D()))
}

// SpherePDF samples directions uniformly over the whole sphere
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere density
func NewSpherePDF() *SpherePDF {
	return &SpherePDF{}
}

func (p *SpherePDF) Value(direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

func (p *SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// ShapePDF samples directions from Origin toward a light target
type ShapePDF struct {
	Target core.LightTarget
	Origin core.Vec3
}

// NewShapePDF creates a density of directions from origin toward target
func NewShapePDF(target core.LightTarget, origin core.Vec3) *ShapePDF {
	return &ShapePDF{Target: target, Origin: origin}
}

func (p *ShapePDF) Value(direction core.Vec3) float64 {
	return p.Target.PDFValue(p.Origin, direction)
}

func (p *ShapePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.Target.Random(p.Origin, sampler)
}

// MixturePDF blends two densities with equal weight
type MixturePDF struct {
	A, B core.PDF
}

// NewMixturePDF creates an equal mixture of a and b
func NewMixturePDF(a, b core.PDF) *MixturePDF {
	return &MixturePDF{A: a, B: b}
}

// Value returns the mean of both densities
func (p *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*p.A.Value(direction) + 0.5*p.B.Value(direction)
}

// Generate picks one of the two densities uniformly and samples it
func (p *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.A.Generate(sampler)
	}
	return p.B.Generate(sampler)
}

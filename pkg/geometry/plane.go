package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Plane is an infinite plane through Point with the given normal.
// It has no finite bounds and cannot be sampled as a light.
type Plane struct {
	planarFrame
	Point    core.Vec3
	Material core.Material
}

// NewPlane creates an infinite plane. Texture coordinates repeat every unit along two axes in the plane.
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	var frame planarFrame
	if normal.LengthSquared() > 0 {
		basis := core.NewONB(normal)
		// V × U points along the normal
		frame, _ = newPlanarFrame(point, basis.V(), basis.U())
	}
	return &Plane{
		planarFrame: frame,
		Point:       point,
		Material:    material,
	}
}

// Hit returns every crossing of the plane inside (tMin, tMax)
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t, point, alpha, beta, ok := p.intersect(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	uv := core.NewVec2(alpha-math.Floor(alpha), beta-math.Floor(beta))
	return p.hitRecord(ray, t, point, uv, p.Material), true
}

// BoundingBox returns the universe box
func (p *Plane) BoundingBox() core.AABB {
	return core.UniverseAABB
}

// Validate rejects planes without a usable normal
func (p *Plane) Validate() error {
	if p.Normal.LengthSquared() == 0 || !p.Normal.IsFinite() || !p.Point.IsFinite() {
		return fmt.Errorf("%w: plane through %v has no usable normal", ErrInvalidShape, p.Point)
	}
	if p.Material == nil {
		return fmt.Errorf("%w: plane has no material", ErrInvalidShape)
	}
	return nil
}

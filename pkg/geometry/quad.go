package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	planarFrame
	Material core.Material // Material of the quad
	area     float64
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	frame, area := newPlanarFrame(corner, u, v)
	return &Quad{
		planarFrame: frame,
		Material:    material,
		area:        area,
		bbox: core.NewAABBFromPoints(
			corner,
			corner.Add(u),
			corner.Add(v),
			corner.Add(u).Add(v),
		),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t, point, alpha, beta, ok := q.intersect(ray, tMin, tMax)
	if !ok || alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}
	return q.hitRecord(ray, t, point, core.NewVec2(alpha, beta), q.Material), true
}

// BoundingBox returns the axis-aligned bounding box of the four corners
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// Area returns the surface area of the quad
func (q *Quad) Area() float64 {
	return q.area
}

// PDFValue converts the uniform area density of the quad to solid angle as seen from origin
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := q.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}
	return q.solidAngleDensity(hit.T, direction, q.area)
}

// Random returns a direction from origin to a uniformly chosen point on the quad
func (q *Quad) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	p := q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))
	return p.Subtract(origin)
}

// Validate rejects quads with parallel or zero edges
func (q *Quad) Validate() error {
	if !(q.area > 0) || !q.Corner.IsFinite() {
		return fmt.Errorf("%w: degenerate quad with edges %v and %v", ErrInvalidShape, q.U, q.V)
	}
	if q.Material == nil {
		return fmt.Errorf("%w: quad has no material", ErrInvalidShape)
	}
	return nil
}

package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Tri is the triangle with vertices Corner, Corner+U and Corner+V
type Tri struct {
	planarFrame
	Material core.Material
	area     float64
	bbox     core.AABB
}

// NewTri creates a triangle from a corner and the two edges leaving it
func NewTri(corner, u, v core.Vec3, material core.Material) *Tri {
	frame, parallelogramArea := newPlanarFrame(corner, u, v)
	return &Tri{
		planarFrame: frame,
		Material:    material,
		area:        parallelogramArea / 2,
		bbox:        core.NewAABBFromPoints(corner, corner.Add(u), corner.Add(v)),
	}
}

// NewTriangle creates a triangle from three vertices; the front face follows v0, v1, v2 counterclockwise
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Tri {
	return NewTri(v0, v1.Subtract(v0), v2.Subtract(v0), material)
}

// Hit tests the plane crossing against the barycentric interior α,β ≥ 0, α+β ≤ 1
func (tr *Tri) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t, point, alpha, beta, ok := tr.intersect(ray, tMin, tMax)
	if !ok || alpha < 0 || beta < 0 || alpha+beta > 1 {
		return nil, false
	}
	return tr.hitRecord(ray, t, point, core.NewVec2(alpha, beta), tr.Material), true
}

func (tr *Tri) BoundingBox() core.AABB {
	return tr.bbox
}

// Area returns the surface area of the triangle
func (tr *Tri) Area() float64 {
	return tr.area
}

// PDFValue converts the uniform area density of the triangle to solid angle as seen from origin
func (tr *Tri) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := tr.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}
	return tr.solidAngleDensity(hit.T, direction, tr.area)
}

// Random returns a direction from origin to a uniformly chosen point on the triangle
func (tr *Tri) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	a, b := sample.X, sample.Y
	// Fold the far half of the unit square back onto the triangle
	if a+b > 1 {
		a, b = 1-a, 1-b
	}
	p := tr.Corner.Add(tr.U.Multiply(a)).Add(tr.V.Multiply(b))
	return p.Subtract(origin)
}

// Validate rejects triangles with parallel or zero edges
func (tr *Tri) Validate() error {
	if !(tr.area > 0) || !tr.Corner.IsFinite() {
		return fmt.Errorf("%w: degenerate triangle with edges %v and %v", ErrInvalidShape, tr.U, tr.V)
	}
	if tr.Material == nil {
		return fmt.Errorf("%w: triangle has no material", ErrInvalidShape)
	}
	return nil
}

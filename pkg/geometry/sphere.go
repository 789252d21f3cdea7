package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidShape is returned when a shape is constructed with unusable parameters
var ErrInvalidShape = errors.New("invalid shape")

// Sphere represents a sphere, optionally moving linearly between two centers over time [0,1]
type Sphere struct {
	Center   core.Ray // Center at time 0 is Center.Origin; Direction is the motion over the shutter
	Radius   float64
	Material core.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return NewMovingSphere(center, center, radius, material)
}

// NewMovingSphere creates a sphere moving from center0 at time 0 to center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, material core.Material) *Sphere {
	s := &Sphere{
		Center:   core.NewRay(center0, center1.Subtract(center0)),
		Radius:   radius,
		Material: material,
	}
	r := math.Abs(radius)
	rvec := core.NewVec3(r, r, r)
	box0 := core.NewAABB(center0.Subtract(rvec), center0.Add(rvec))
	box1 := core.NewAABB(center1.Subtract(rvec), center1.Add(rvec))
	s.bbox = box0.Union(box1)
	return s
}

// IsMoving reports whether the center changes over time
func (s *Sphere) IsMoving() bool {
	return s.Center.Direction != (core.Vec3{})
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// A point has no surface to hit and no normal
	if s.Radius == 0 {
		return nil, false
	}
	center := s.Center.At(ray.Time)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Find the nearest root strictly inside (tMin, tMax)
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
		Time:     ray.Time,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to texture coordinates:
// u runs around the Y axis starting at -X, v runs from the south pole (0) to the north pole (1)
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere over the whole shutter interval
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDFValue returns the solid angle density of sampling direction from origin toward the sphere
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, hit := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil); !hit {
		return 0
	}

	distanceSquared := s.Center.Origin.Subtract(origin).LengthSquared()
	ratio := s.Radius * s.Radius / distanceSquared
	if ratio >= 1 {
		// Origin inside the sphere sees it in every direction
		return 1 / (4 * math.Pi)
	}
	cosThetaMax := math.Sqrt(1 - ratio)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random returns a direction from origin uniformly within the cone subtended by the sphere
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Origin.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	if s.Radius*s.Radius >= distanceSquared {
		return core.SampleOnUnitSphere(sampler.Get2D())
	}
	basis := core.NewONB(direction)
	return basis.Transform(core.RandomToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}

// Validate checks the radius is a non-negative finite number and a material is attached
func (s *Sphere) Validate() error {
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius < 0 {
		return fmt.Errorf("%w: sphere radius %v", ErrInvalidShape, s.Radius)
	}
	if !s.Center.Origin.IsFinite() || !s.Center.Direction.IsFinite() {
		return fmt.Errorf("%w: sphere center is not finite", ErrInvalidShape)
	}
	if s.Material == nil {
		return fmt.Errorf("%w: sphere has no material", ErrInvalidShape)
	}
	return nil
}

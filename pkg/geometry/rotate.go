package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// mat3 is a row-major 3x3 rotation matrix
type mat3 [3][3]float64

func (m mat3) apply(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z,
	)
}

func (m mat3) mul(o mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

func (m mat3) transpose() mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

func rotationX(radians float64) mat3 {
	s, c := math.Sincos(radians)
	return mat3{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

func rotationY(radians float64) mat3 {
	s, c := math.Sincos(radians)
	return mat3{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

func rotationZ(radians float64) mat3 {
	s, c := math.Sincos(radians)
	return mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Rotate turns a wrapped shape about the world origin.
// Angles are Euler angles in degrees applied about X, then Y, then Z.
type Rotate struct {
	Shape   core.Shape
	Angles  core.Vec3
	toWorld mat3
	toLocal mat3
	bbox    core.AABB
}

// NewRotate wraps shape rotated by the given Euler angles in degrees
func NewRotate(shape core.Shape, angles core.Vec3) *Rotate {
	toWorld := rotationZ(degreesToRadians(angles.Z)).
		mul(rotationY(degreesToRadians(angles.Y))).
		mul(rotationX(degreesToRadians(angles.X)))

	r := &Rotate{
		Shape:   shape,
		Angles:  angles,
		toWorld: toWorld,
		toLocal: toWorld.transpose(),
	}
	if shape != nil {
		r.bbox = rotatedBounds(shape.BoundingBox(), toWorld)
	}
	return r
}

// NewRotateY wraps shape rotated about the Y axis by degrees
func NewRotateY(shape core.Shape, degrees float64) *Rotate {
	return NewRotate(shape, core.NewVec3(0, degrees, 0))
}

// rotatedBounds returns the box bounding the 8 rotated corners of box
func rotatedBounds(box core.AABB, m mat3) core.AABB {
	if box.IsUnbounded() {
		return core.UniverseAABB
	}
	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					box.Min.X+float64(i)*(box.Max.X-box.Min.X),
					box.Min.Y+float64(j)*(box.Max.Y-box.Min.Y),
					box.Min.Z+float64(k)*(box.Max.Z-box.Min.Z),
				)
				corners = append(corners, m.apply(corner))
			}
		}
	}
	return core.NewAABBFromPoints(corners...)
}

// Hit rotates the ray into the shape's frame, intersects, and rotates the hit back
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	local := core.NewRayWithTime(r.toLocal.apply(ray.Origin), r.toLocal.apply(ray.Direction), ray.Time)

	hit, ok := r.Shape.Hit(local, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld.apply(hit.Point)
	hit.Normal = r.toWorld.apply(hit.Normal)
	return hit, true
}

func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}

// PDFValue delegates in the shape's frame; rotations preserve solid angle
func (r *Rotate) PDFValue(origin, direction core.Vec3) float64 {
	return lightPDFValue(r.Shape, r.toLocal.apply(origin), r.toLocal.apply(direction))
}

func (r *Rotate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.toWorld.apply(lightRandom(r.Shape, r.toLocal.apply(origin), sampler))
}

func (r *Rotate) Validate() error {
	if !r.Angles.IsFinite() {
		return fmt.Errorf("%w: rotation angles %v are not finite", ErrInvalidShape, r.Angles)
	}
	return ValidateShape(r.Shape)
}

package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Translate moves a wrapped shape by a fixed offset
type Translate struct {
	Shape  core.Shape
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps shape so it appears moved by offset
func NewTranslate(shape core.Shape, offset core.Vec3) *Translate {
	t := &Translate{Shape: shape, Offset: offset}
	if shape != nil {
		t.bbox = shape.BoundingBox().Translate(offset)
	}
	return t
}

// Hit moves the ray into the shape's frame, intersects, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	local := core.NewRayWithTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Shape.Hit(local, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// PDFValue delegates to the wrapped shape from the shifted origin
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return lightPDFValue(t.Shape, origin.Subtract(t.Offset), direction)
}

// Random delegates to the wrapped shape from the shifted origin
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return lightRandom(t.Shape, origin.Subtract(t.Offset), sampler)
}

func (t *Translate) Validate() error {
	if !t.Offset.IsFinite() {
		return fmt.Errorf("%w: translation offset %v is not finite", ErrInvalidShape, t.Offset)
	}
	return ValidateShape(t.Shape)
}

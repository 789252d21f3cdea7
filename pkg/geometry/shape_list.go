package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ShapeList is a flat collection of shapes intersected by linear search
type ShapeList struct {
	Shapes []core.Shape
	bbox   core.AABB
}

// NewShapeList creates a list holding shapes
func NewShapeList(shapes ...core.Shape) *ShapeList {
	l := &ShapeList{}
	for _, shape := range shapes {
		l.Add(shape)
	}
	return l
}

// Add appends a shape and grows the bounding box
func (l *ShapeList) Add(shape core.Shape) {
	if len(l.Shapes) == 0 {
		l.bbox = shape.BoundingBox()
	} else {
		l.bbox = l.bbox.Union(shape.BoundingBox())
	}
	l.Shapes = append(l.Shapes, shape)
}

// Len returns the number of shapes in the list
func (l *ShapeList) Len() int {
	return len(l.Shapes)
}

// Hit returns the closest hit over all shapes
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar, sampler); ok {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

func (l *ShapeList) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue averages the member densities
func (l *ShapeList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Shapes) == 0 {
		return uniformSpherePDF
	}
	weight := 1.0 / float64(len(l.Shapes))
	sum := 0.0
	for _, shape := range l.Shapes {
		sum += weight * lightPDFValue(shape, origin, direction)
	}
	return sum
}

// Random samples a direction toward one member chosen uniformly
func (l *ShapeList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Shapes) == 0 {
		return core.SampleOnUnitSphere(sampler.Get2D())
	}
	index := min(int(sampler.Get1D()*float64(len(l.Shapes))), len(l.Shapes)-1)
	return lightRandom(l.Shapes[index], origin, sampler)
}

// Validate checks every member, reporting all problems at once
func (l *ShapeList) Validate() error {
	var errs []error
	for i, shape := range l.Shapes {
		if err := ValidateShape(shape); err != nil {
			errs = append(errs, fmt.Errorf("shape %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ValidateShape validates shape if it knows how, and rejects nil shapes
func ValidateShape(shape core.Shape) error {
	if shape == nil {
		return fmt.Errorf("%w: nil shape", ErrInvalidShape)
	}
	if v, ok := shape.(core.Validator); ok {
		return v.Validate()
	}
	return nil
}

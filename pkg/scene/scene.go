package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrNoShapes is returned when a scene has nothing to render
var ErrNoShapes = errors.New("scene has no shapes")

// ErrUnsamplableLight is returned for lights that cannot be sampled by direction, such as planes or media
var ErrUnsamplableLight = errors.New("light cannot be sampled")

// BackgroundFunc returns the radiance carried by a ray that escapes the scene
type BackgroundFunc func(ray core.Ray) core.Vec3

// ConstantBackground returns the same color for every escaping ray
func ConstantBackground(color core.Vec3) BackgroundFunc {
	return func(ray core.Ray) core.Vec3 {
		return color
	}
}

// GradientBackground blends bottom to top by the ray's vertical direction
func GradientBackground(top, bottom core.Vec3) BackgroundFunc {
	return func(ray core.Ray) core.Vec3 {
		unitDirection := ray.Direction.Normalize()
		// Map y from [-1,1] to [0,1]
		t := 0.5 * (unitDirection.Y + 1.0)
		return bottom.Multiply(1.0 - t).Add(top.Multiply(t))
	}
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	CameraConfig   geometry.CameraConfig
	Shapes         []core.Shape       // Objects in the scene
	Lights         []core.LightTarget // Shapes sampled directly when scattering diffusely
	Background     BackgroundFunc
	SamplingConfig SamplingConfig

	BVH       *geometry.BVH       // Acceleration structure for ray-object intersection
	LightList *geometry.ShapeList // Lights wrapped as one sampling target, nil without lights
}

// SamplingConfig contains per-pixel sampling configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate reports sampling values that cannot produce an image
func (c SamplingConfig) Validate() error {
	var errs []error
	if c.SamplesPerPixel <= 0 {
		errs = append(errs, fmt.Errorf("samples per pixel %d must be positive", c.SamplesPerPixel))
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max depth %d must not be negative", c.MaxDepth))
	}
	return errors.Join(errs...)
}

// MergeSamplingConfig returns base with every non-zero field of override applied
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	return result
}

// NewGroundQuad creates a large horizontal quad facing up, centered at the given point
func NewGroundQuad(center core.Vec3, size float64, material core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v points up
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}

// Preprocess validates the scene and builds the acceleration structures.
// All problems are reported together.
func (s *Scene) Preprocess() error {
	var errs []error
	if len(s.Shapes) == 0 {
		errs = append(errs, ErrNoShapes)
	}
	for i, shape := range s.Shapes {
		if err := geometry.ValidateShape(shape); err != nil {
			errs = append(errs, fmt.Errorf("shape %d: %w", i, err))
		}
	}
	for i, light := range s.Lights {
		if err := geometry.ValidateShape(light); err != nil {
			errs = append(errs, fmt.Errorf("light %d: %w", i, err))
			continue
		}
		if !geometry.IsSamplable(light) {
			errs = append(errs, fmt.Errorf("light %d: %w", i, ErrUnsamplableLight))
		}
	}
	if err := s.CameraConfig.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("camera: %w", err))
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sampling: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}

	if s.Background == nil {
		s.Background = ConstantBackground(core.Vec3{})
	}

	s.BVH = geometry.NewBVH(s.Shapes)

	s.LightList = nil
	if len(s.Lights) > 0 {
		lights := make([]core.Shape, len(s.Lights))
		for i, light := range s.Lights {
			lights[i] = light
		}
		s.LightList = geometry.NewShapeList(lights...)
	}

	return nil
}

// Hit finds the closest intersection in the scene. Preprocess must have been called.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return s.BVH.Hit(ray, tMin, tMax, sampler)
}

// LightTarget returns the combined light sampling target, or nil when the scene has no lights
func (s *Scene) LightTarget() core.LightTarget {
	if s.LightList == nil {
		return nil
	}
	return s.LightList
}

// GetPrimitiveCount returns the number of shapes referenced by the BVH leaves
func (s *Scene) GetPrimitiveCount() int {
	if s.BVH == nil {
		return len(s.Shapes)
	}
	return s.BVH.Stats().TotalShapes
}

// AddShapes appends shapes to the scene
func (s *Scene) AddShapes(shapes ...core.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddQuadLight adds a rectangular area light that is both rendered and sampled
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission core.Vec3) *geometry.Quad {
	light := geometry.NewQuad(corner, u, v, material.NewDiffuseLight(emission))
	s.Shapes = append(s.Shapes, light)
	s.Lights = append(s.Lights, light)
	return light
}

// AddTriangleLight adds a triangular area light that is both rendered and sampled
func (s *Scene) AddTriangleLight(v0, v1, v2 core.Vec3, emission core.Vec3) *geometry.Tri {
	light := geometry.NewTriangle(v0, v1, v2, material.NewDiffuseLight(emission))
	s.Shapes = append(s.Shapes, light)
	s.Lights = append(s.Lights, light)
	return light
}

// AddSphereLight adds a spherical light that is both rendered and sampled
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) *geometry.Sphere {
	light := geometry.NewSphere(center, radius, material.NewDiffuseLight(emission))
	s.Shapes = append(s.Shapes, light)
	s.Lights = append(s.Lights, light)
	return light
}

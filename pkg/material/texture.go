package material

import (
	"errors"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidTexture is returned when texture data is malformed
var ErrInvalidTexture = errors.New("invalid texture")

// ErrInvalidMaterial is returned when material parameters are out of range
var ErrInvalidMaterial = errors.New("invalid material")

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two textures in a 3D grid of cubes
type CheckerTexture struct {
	invScale float64
	Even     Texture
	Odd      Texture
}

// NewCheckerTexture creates a checker with cubes of edge length scale
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker alternating two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks the even or odd texture by the parity of the cell containing point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * point.X))
	y := int(math.Floor(c.invScale * point.Y))
	z := int(math.Floor(c.invScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}

// Validate checks the checker has a finite positive scale and both sub-textures
func (c *CheckerTexture) Validate() error {
	if c.Even == nil || c.Odd == nil {
		return errors.Join(ErrInvalidTexture, errors.New("checker needs both even and odd textures"))
	}
	if c.invScale <= 0 || math.IsInf(c.invScale, 0) || math.IsNaN(c.invScale) {
		return errors.Join(ErrInvalidTexture, errors.New("checker scale must be positive"))
	}
	return nil
}

package material

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting surface
type DiffuseLight struct {
	Emit Texture // Emitted radiance
}

// NewDiffuseLight creates a light with uniform emission
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies over the surface
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs: lights emit but do not reflect
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (e *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission for hits on the front face and black from behind
func (e *DiffuseLight) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Emit.Evaluate(hit.UV, hit.Point)
}

func (e *DiffuseLight) Validate() error {
	if e.Emit == nil {
		return errors.Join(ErrInvalidMaterial, errors.New("diffuse light needs an emission texture"))
	}
	return nil
}

// Emitted returns the light emitted by mat at hit, or black for non-emissive materials
func Emitted(mat core.Material, rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	if emitter, ok := mat.(core.Emitter); ok {
		return emitter.Emitted(rayIn, hit)
	}
	return core.Vec3{}
}

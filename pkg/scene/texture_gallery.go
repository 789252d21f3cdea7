package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTextureGalleryScene lines up the generated textures on spheres and tilted panels
// under a gradient-textured panel light
func NewTextureGalleryScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))

	s := &Scene{
		Name:           "texture-gallery",
		CameraConfig:   defaultCameraConfig(core.NewVec3(0, 2, 9), core.NewVec3(0, 1, 0), 40),
		Background:     GradientBackground(core.NewVec3(0.3, 0.4, 0.6), core.NewVec3(0.05, 0.05, 0.05)),
		SamplingConfig: DefaultSamplingConfig(),
	}

	checkerImage := material.NewCheckerboardTexture(64, 64, 8, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.1, 0.1, 0.1))
	uvDebug := material.NewUVDebugTexture(64, 64)
	turbulence := material.NewNoiseTexture(random, 3, 7, material.NoiseTurbulence)
	smooth := material.NewNoiseTexture(random, 2, 1, material.NoiseSmooth)

	s.AddShapes(
		NewGroundQuad(core.NewVec3(0, 0, 0), 40, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(-3, 1, 0), 1, material.NewTexturedLambertian(uvDebug)),
		geometry.NewSphere(core.NewVec3(-1, 1, 0), 1, material.NewTexturedLambertian(turbulence)),
		geometry.NewSphere(core.NewVec3(1, 1, 0), 1, material.NewTexturedLambertian(smooth)),
		geometry.NewSphere(core.NewVec3(3, 1, 0), 1, material.NewTexturedLambertian(checkerImage)),
	)

	// Checker panel turned about all three axes behind the spheres
	panel := geometry.NewQuad(core.NewVec3(-1.5, -1.5, 0), core.NewVec3(3, 0, 0), core.NewVec3(0, 3, 0), material.NewTexturedLambertian(checkerImage))
	s.AddShapes(geometry.NewTranslate(
		geometry.NewRotate(panel, core.NewVec3(-10, 25, 15)),
		core.NewVec3(0, 2.5, -4),
	))

	// Box of smoke tinted by the turbulence texture
	smoke := geometry.NewBox(core.NewVec3(4.5, 0, -3), core.NewVec3(6, 1.5, -1.5), material.NewLambertian(core.Vec3{}))
	s.AddShapes(geometry.NewTexturedConstantMedium(smoke, 1.5, turbulence))

	// Overhead panel light whose emission fades from warm to cool across the panel
	gradient := material.NewGradientTexture(16, 16, core.NewVec3(6, 5, 4), core.NewVec3(3, 4, 6))
	light := geometry.NewQuad(core.NewVec3(-2, 5, -1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 2), material.NewTexturedDiffuseLight(gradient))
	s.AddShapes(light)
	s.Lights = append(s.Lights, light)

	return s, nil
}

package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sky gradient used by the lambertian-sky scene
var (
	SkyTop    = core.NewVec3(0.5, 0.7, 1.0)
	SkyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// NewLambertianSkyScene creates a single diffuse sphere at the origin lit only by a sky gradient
func NewLambertianSkyScene(opts Options) (*Scene, error) {
	cameraConfig := defaultCameraConfig(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, 0), 60)
	cameraConfig.AspectRatio = 1.0
	cameraConfig.Width = 32

	s := &Scene{
		Name:         "lambertian-sky",
		CameraConfig: cameraConfig,
		Background:   GradientBackground(SkyTop, SkyBottom),
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 10,
			MaxDepth:        10,
		},
	}
	s.AddShapes(geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	return s, nil
}

// NewOccludedLightScene creates a quad light standing on an absorbing floor in the dark.
// Only pixels that see the light directly receive any radiance.
func NewOccludedLightScene(opts Options) (*Scene, error) {
	cameraConfig := defaultCameraConfig(core.NewVec3(0, 1, 4), core.NewVec3(0, 1, 0), 40)
	cameraConfig.AspectRatio = 1.0
	cameraConfig.Width = 32

	s := &Scene{
		Name:         "occluded-light",
		CameraConfig: cameraConfig,
		Background:   ConstantBackground(core.Vec3{}),
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 16,
			MaxDepth:        10,
		},
	}

	s.AddShapes(NewGroundQuad(core.NewVec3(0, 0, 0), 20, material.NewLambertian(core.Vec3{})))

	// Vertical light at z=0 facing the camera
	s.AddQuadLight(
		core.NewVec3(-0.5, 0.5, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(4, 4, 4),
	)
	return s, nil
}

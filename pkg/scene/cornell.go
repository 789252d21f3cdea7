package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellCameraConfig looks into the open side of the box
func cornellCameraConfig() geometry.CameraConfig {
	config := defaultCameraConfig(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40)
	config.AspectRatio = 1.0
	config.Width = 600
	return config
}

// addCornellWalls adds the red, green and white walls of the box
func addCornellWalls(s *Scene) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	s.AddShapes(
		// Right wall (green) at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Left wall (red) at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)
}

// NewCornellScene creates the Cornell box with a rotated block and a glass sphere.
// The glass sphere is sampled as a light as well so caustics converge faster.
func NewCornellScene(opts Options) (*Scene, error) {
	s := &Scene{
		Name:         "cornell-box",
		CameraConfig: cornellCameraConfig(),
		Background:   ConstantBackground(core.Vec3{}),
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 1000,
			MaxDepth:        50,
		},
	}
	addCornellWalls(s)

	// Ceiling light facing down
	s.AddQuadLight(
		core.NewVec3(343, 554, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		core.NewVec3(15, 15, 15),
	)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	block := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	s.AddShapes(geometry.NewTranslate(geometry.NewRotateY(block, 15), core.NewVec3(265, 0, 295)))

	glass := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))
	s.AddShapes(glass)
	s.Lights = append(s.Lights, glass)

	return s, nil
}

// NewCornellSmokeScene creates the Cornell box with two blocks of dark and light smoke
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	s := &Scene{
		Name:         "cornell-smoke",
		CameraConfig: cornellCameraConfig(),
		Background:   ConstantBackground(core.Vec3{}),
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 200,
			MaxDepth:        50,
		},
	}
	addCornellWalls(s)

	// Wide ceiling light facing down
	s.AddQuadLight(
		core.NewVec3(113, 554, 127),
		core.NewVec3(330, 0, 0),
		core.NewVec3(0, 0, 305),
		core.NewVec3(7, 7, 7),
	)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallPlaced := geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))
	s.AddShapes(geometry.NewConstantMedium(tallPlaced, 0.01, core.NewVec3(0, 0, 0)))

	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shortPlaced := geometry.NewRotateY(geometry.NewTranslate(short, core.NewVec3(130, 0, 65)), -18)
	s.AddShapes(geometry.NewConstantMedium(shortPlaced, 0.01, core.NewVec3(1, 1, 1)))

	return s, nil
}

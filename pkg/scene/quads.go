package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewQuadsScene creates five colored quads framing the view
func NewQuadsScene(opts Options) (*Scene, error) {
	cameraConfig := defaultCameraConfig(core.NewVec3(0, 0, 9), core.NewVec3(0, 0, 0), 80)
	cameraConfig.AspectRatio = 1.0

	s := &Scene{
		Name:           "quads",
		CameraConfig:   cameraConfig,
		Background:     ConstantBackground(skyBlue),
		SamplingConfig: DefaultSamplingConfig(),
	}

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	s.AddShapes(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)
	return s, nil
}

// NewSimpleLightScene creates the marble spheres lit by a sphere light and a quad light in the dark
func NewSimpleLightScene(opts Options) (*Scene, error) {
	s := &Scene{
		Name:           "simple-light",
		CameraConfig:   defaultCameraConfig(core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), 20),
		Background:     ConstantBackground(core.Vec3{}),
		SamplingConfig: DefaultSamplingConfig(),
	}

	marble := marbleLambertian(opts, 4)
	s.AddShapes(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	emission := core.NewVec3(4, 4, 4)
	s.AddSphereLight(core.NewVec3(0, 7, 0), 2, emission)
	s.AddQuadLight(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), emission)
	return s, nil
}

// NewPlanesAndTrianglesScene creates a triangle pyramid and a tilted mirror triangle on an infinite
// tiled floor, lit from above by a triangle light
func NewPlanesAndTrianglesScene(opts Options) (*Scene, error) {
	s := &Scene{
		Name:           "planes-and-triangles",
		CameraConfig:   defaultCameraConfig(core.NewVec3(0, 2.5, 7), core.NewVec3(0, 0.8, 0), 40),
		Background:     ConstantBackground(core.NewVec3(0.05, 0.05, 0.08)),
		SamplingConfig: DefaultSamplingConfig(),
	}

	// The floor's UVs repeat every unit, so each image tile covers one square unit
	tiles := material.NewCheckerboardTexture(64, 64, 32, core.NewVec3(0.85, 0.85, 0.85), core.NewVec3(0.2, 0.3, 0.2))
	s.AddShapes(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.NewTexturedLambertian(tiles)),
		geometry.NewPlane(core.NewVec3(0, 0, -6), core.NewVec3(0, 0, 1), material.NewLambertian(core.NewVec3(0.6, 0.6, 0.6))),
	)

	apex := core.NewVec3(0, 1.5, 0)
	base := []core.Vec3{
		core.NewVec3(-1, 0, 1),
		core.NewVec3(1, 0, 1),
		core.NewVec3(1, 0, -1),
		core.NewVec3(-1, 0, -1),
	}
	red := material.NewLambertian(core.NewVec3(0.7, 0.15, 0.1))
	for i := range base {
		s.AddShapes(geometry.NewTriangle(base[i], base[(i+1)%len(base)], apex, red))
	}

	mirror := geometry.NewTri(core.NewVec3(0, 0, 0), core.NewVec3(1.5, 0, 0), core.NewVec3(0, 2, 0), material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.05))
	s.AddShapes(geometry.NewTranslate(geometry.NewRotateY(mirror, -35), core.NewVec3(1.8, 0, -1)))

	// Faces down: (v1 - v0) × (v2 - v0) points along -Y
	s.AddTriangleLight(core.NewVec3(-1, 4, -1), core.NewVec3(1, 4, -1), core.NewVec3(0, 4, 1), core.NewVec3(8, 8, 8))
	return s, nil
}

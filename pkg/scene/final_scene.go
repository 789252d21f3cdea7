package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewFinalScene creates the scene combining every feature: nested BVHs, media, motion blur and textures
func NewFinalScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))

	cameraConfig := defaultCameraConfig(core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), 40)
	cameraConfig.AspectRatio = 1.0
	cameraConfig.Width = 800

	s := &Scene{
		Name:         "final",
		CameraConfig: cameraConfig,
		Background:   ConstantBackground(core.Vec3{}),
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 10000,
			MaxDepth:        40,
		},
	}

	// Ground: a 20x20 field of boxes with random heights in its own BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	const w = 100.0
	boxes := make([]core.Shape, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	s.AddShapes(geometry.NewBVH(boxes))

	s.AddQuadLight(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), core.NewVec3(7, 7, 7))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	s.AddShapes(
		geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass shell filled with blue subsurface haze
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.AddShapes(boundary, geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.AddShapes(geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth, err := earthTexture(opts)
	if err != nil {
		return nil, err
	}
	s.AddShapes(
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80, marbleLambertian(opts, 0.2)),
	)

	// Cluster of small white spheres, rotated and moved as one BVH
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const ns = 1000
	cluster := make([]core.Shape, 0, ns)
	for i := 0; i < ns; i++ {
		center := core.NewVec3(165*random.Float64(), 165*random.Float64(), 165*random.Float64())
		cluster = append(cluster, geometry.NewSphere(center, 10, white))
	}
	s.AddShapes(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(cluster), 15),
		core.NewVec3(-100, 270, 395),
	))

	return s, nil
}

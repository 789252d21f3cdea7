package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

var skyBlue = core.NewVec3(0.70, 0.80, 1.00)

// defaultCameraConfig returns a 16:9, 400 pixel wide pinhole camera with a full [0,1] shutter
func defaultCameraConfig(center, lookAt core.Vec3, vfov float64) geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:       center,
		LookAt:       lookAt,
		Up:           core.NewVec3(0, 1, 0),
		Width:        400,
		AspectRatio:  16.0 / 9.0,
		VFov:         vfov,
		ShutterOpen:  0,
		ShutterClose: 1,
	}
}

// NewSimpleSpheresScene creates three spheres (diffuse, hollow glass, fuzzy metal) on a huge ground sphere
func NewSimpleSpheresScene(opts Options) (*Scene, error) {
	cameraConfig := defaultCameraConfig(core.NewVec3(-2, 2, 1), core.NewVec3(0, 0, -1), 20)
	cameraConfig.Aperture = 10
	cameraConfig.FocusDistance = 3.4

	s := &Scene{
		Name:           "simple-spheres",
		CameraConfig:   cameraConfig,
		Background:     ConstantBackground(skyBlue),
		SamplingConfig: DefaultSamplingConfig(),
	}

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2)

	s.AddShapes(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metal),
	)
	return s, nil
}

// NewBouncingSpheresScene creates the random field of small spheres with motion blur on the diffuse ones
func NewBouncingSpheresScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))

	cameraConfig := defaultCameraConfig(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20)
	cameraConfig.Aperture = 0.6
	cameraConfig.FocusDistance = 10

	s := &Scene{
		Name:           "bouncing-spheres",
		CameraConfig:   cameraConfig,
		Background:     ConstantBackground(skyBlue),
		SamplingConfig: DefaultSamplingConfig(),
	}

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.AddShapes(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	randomColor := func(lo, hi float64) core.Vec3 {
		return core.NewVec3(
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
		)
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(0, 1).MultiplyVec(randomColor(0, 1))
				center2 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				s.AddShapes(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomColor(0.5, 1)
				fuzz := 0.5 * random.Float64()
				s.AddShapes(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.AddShapes(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.AddShapes(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return s, nil
}

// NewCheckeredSpheresScene creates two large spheres sharing a spatial checker texture
func NewCheckeredSpheresScene(opts Options) (*Scene, error) {
	s := &Scene{
		Name:           "checkered-spheres",
		CameraConfig:   defaultCameraConfig(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20),
		Background:     ConstantBackground(skyBlue),
		SamplingConfig: DefaultSamplingConfig(),
	}

	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	s.AddShapes(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
	return s, nil
}

// NewPerlinSpheresScene creates a marble ground and sphere
func NewPerlinSpheresScene(opts Options) (*Scene, error) {
	s := &Scene{
		Name:           "perlin-spheres",
		CameraConfig:   defaultCameraConfig(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20),
		Background:     ConstantBackground(skyBlue),
		SamplingConfig: DefaultSamplingConfig(),
	}

	marble := marbleLambertian(opts, 4)
	s.AddShapes(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
	return s, nil
}

// NewEarthScene creates a single image-textured globe
func NewEarthScene(opts Options) (*Scene, error) {
	texture, err := earthTexture(opts)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Name:           "earth",
		CameraConfig:   defaultCameraConfig(core.NewVec3(0, 0, 12), core.NewVec3(0, 0, 0), 20),
		Background:     ConstantBackground(skyBlue),
		SamplingConfig: DefaultSamplingConfig(),
	}
	s.AddShapes(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))
	return s, nil
}

// marbleLambertian returns a diffuse material with a marble texture of depth 7
func marbleLambertian(opts Options, scale float64) *material.Lambertian {
	random := rand.New(rand.NewSource(opts.Seed))
	return material.NewTexturedLambertian(material.NewNoiseTexture(random, scale, 7, material.NoiseMarble))
}

// earthTexture loads opts.TexturePath, or generates a stand-in map when no path is given
func earthTexture(opts Options) (material.Texture, error) {
	if opts.TexturePath == "" {
		random := rand.New(rand.NewSource(opts.Seed))
		return material.NewEarthLikeTexture(1024, 512, material.NewPerlin(random)), nil
	}
	texture, err := loaders.LoadImageTexture(opts.TexturePath)
	if err != nil {
		return nil, fmt.Errorf("loading earth texture: %w", err)
	}
	return texture, nil
}

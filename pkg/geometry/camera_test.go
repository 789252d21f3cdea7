package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 2.0,
		VFov:        90,
	}
}

// centerSampler always returns the middle of the unit square
type centerSampler struct{}

func (centerSampler) Get1D() float64 {
	return 0.5
}

func (centerSampler) Get2D() core.Vec2 {
	return core.NewVec2(0.5, 0.5)
}

func (centerSampler) Get3D() core.Vec3 {
	return core.NewVec3(0.5, 0.5, 0.5)
}

func TestCamera_Dimensions(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if camera.Width() != 400 || camera.Height() != 200 {
		t.Errorf("Expected 400x200, got %dx%d", camera.Width(), camera.Height())
	}

	tiny := testCameraConfig()
	tiny.Width = 1
	tiny.AspectRatio = 16.0 / 9.0
	if h := tiny.Height(); h != 1 {
		t.Errorf("Expected height clamped to 1, got %d", h)
	}

	forward := camera.GetCameraForward()
	if forward.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected forward (0,0,-1), got %v", forward)
	}
}

func TestCamera_GetRayOrientation(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sampler := centerSampler{}

	tests := []struct {
		name  string
		i, j  int
		check func(dir core.Vec3) bool
	}{
		{"Top-left points up and left", 0, 0, func(d core.Vec3) bool { return d.X < 0 && d.Y > 0 }},
		{"Top-right points up and right", 399, 0, func(d core.Vec3) bool { return d.X > 0 && d.Y > 0 }},
		{"Bottom-left points down and left", 0, 199, func(d core.Vec3) bool { return d.X < 0 && d.Y < 0 }},
		{"Bottom-right points down and right", 399, 199, func(d core.Vec3) bool { return d.X > 0 && d.Y < 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.i, tt.j, sampler)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Pinhole camera ray should start at the center, got %v", ray.Origin)
			}
			if !tt.check(ray.Direction) {
				t.Errorf("Unexpected direction %v for pixel (%d,%d)", ray.Direction, tt.i, tt.j)
			}
			if ray.Direction.Z >= 0 {
				t.Errorf("Ray should point into the scene, got %v", ray.Direction)
			}
		})
	}

	// 90° vertical fov: the top edge of the image is 45° above the view axis
	top := camera.GetRay(200, 0, sampler).Direction.Normalize()
	expected := math.Cos(math.Pi / 4)
	if math.Abs(top.Dot(core.NewVec3(0, 0, -1))-expected) > 0.01 {
		t.Errorf("Expected top ray at ~45°, got cos=%f", top.Dot(core.NewVec3(0, 0, -1)))
	}
}

func TestCamera_DefocusAndShutter(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 10
	config.FocusDistance = 5
	config.ShutterOpen = 0.25
	config.ShutterClose = 0.75
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sampler := core.NewSeededSampler(42)
	radius := 5 * math.Tan(5*math.Pi/180)
	moved := false
	for i := 0; i < 500; i++ {
		ray := camera.GetRay(100, 50, sampler)
		if ray.Origin.Length() > radius+1e-9 {
			t.Fatalf("Ray origin %v outside defocus disk radius %f", ray.Origin, radius)
		}
		if math.Abs(ray.Origin.Z) > 1e-9 {
			t.Fatalf("Defocus disk should lie in the camera plane, got %v", ray.Origin)
		}
		if ray.Origin.Length() > 1e-6 {
			moved = true
		}
		if ray.Time < 0.25 || ray.Time > 0.75 {
			t.Fatalf("Ray time %f outside the shutter interval", ray.Time)
		}
	}
	if !moved {
		t.Error("Expected ray origins spread over the defocus disk")
	}
}

func TestCamera_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *CameraConfig)
	}{
		{"Zero width", func(c *CameraConfig) { c.Width = 0 }},
		{"Negative aspect", func(c *CameraConfig) { c.AspectRatio = -1 }},
		{"Fov too wide", func(c *CameraConfig) { c.VFov = 180 }},
		{"Negative focus", func(c *CameraConfig) { c.FocusDistance = -1 }},
		{"Shutter reversed", func(c *CameraConfig) { c.ShutterOpen, c.ShutterClose = 1, 0 }},
		{"Look at center", func(c *CameraConfig) { c.LookAt = c.Center }},
		{"Up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig()
			tt.modify(&config)
			if _, err := NewCamera(config); !errors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := testCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{Width: 800, VFov: 40})

	if merged.Width != 800 || merged.VFov != 40 {
		t.Errorf("Expected overrides applied, got %+v", merged)
	}
	if merged.AspectRatio != base.AspectRatio || merged.LookAt != base.LookAt {
		t.Errorf("Expected base values kept, got %+v", merged)
	}
}

package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestFramebufferFromPixelStats(t *testing.T) {
	pixelStats := [][]PixelStats{
		make([]PixelStats, 3),
		make([]PixelStats, 3),
	}
	pixelStats[0][0].AddSample(core.NewVec3(0.25, 1, 4))
	pixelStats[1][2].AddSample(core.NewVec3(0.04, 0.09, 0.16))

	fb := newFramebuffer(pixelStats)
	if fb.Width != 3 || fb.Height != 2 {
		t.Fatalf("Expected 3x2 framebuffer, got %dx%d", fb.Width, fb.Height)
	}

	if c := fb.LinearAt(0, 0); c != core.NewVec3(0.25, 1, 4) {
		t.Errorf("Expected linear color to be kept, got %v", c)
	}
	// Gamma 2 then clamp to [0,1]
	if c := fb.At(0, 0); c != core.NewVec3(0.5, 1, 1) {
		t.Errorf("Expected (0.5, 1, 1), got %v", c)
	}
	// Row-major with row 0 at the top
	if c := fb.Pixels[1*3+2]; c.Subtract(core.NewVec3(0.2, 0.3, 0.4)).Length() > 1e-12 {
		t.Errorf("Expected (0.2, 0.3, 0.4) at (2,1), got %v", c)
	}
	if c := fb.At(1, 0); c != (core.Vec3{}) {
		t.Errorf("Expected unsampled pixel to be black, got %v", c)
	}
}

func TestFramebufferToRGBA(t *testing.T) {
	fb := &Framebuffer{
		Width:  2,
		Height: 2,
		Pixels: []core.Vec3{
			core.NewVec3(0, 0.5, 1),
			core.NewVec3(1, 1, 1),
			core.Vec3{},
			core.NewVec3(0.25, 0.999, 0.0039),
		},
	}

	img := fb.ToRGBA()
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", b)
	}

	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, color.RGBA{0, 128, 255, 255}},
		{1, 0, color.RGBA{255, 255, 255, 255}},
		{0, 1, color.RGBA{0, 0, 0, 255}},
		{1, 1, color.RGBA{64, 255, 0, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.expected {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}
}

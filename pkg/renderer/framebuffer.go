package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Framebuffer holds a rendered image, row-major with row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Gamma-corrected, every channel in [0,1]
	Linear []core.Vec3 // Averaged radiance before gamma correction
}

// newFramebuffer resolves the accumulated pixel statistics into an image
func newFramebuffer(pixelStats [][]PixelStats) *Framebuffer {
	height := len(pixelStats)
	width := 0
	if height > 0 {
		width = len(pixelStats[0])
	}

	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
		Linear: make([]core.Vec3, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			linear := pixelStats[y][x].GetColor()
			fb.Linear[y*width+x] = linear
			fb.Pixels[y*width+x] = linear.GammaCorrect(2.0).Clamp(0, 1)
		}
	}
	return fb
}

// At returns the display color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// LinearAt returns the linear radiance estimate of pixel (x, y)
func (fb *Framebuffer) LinearAt(x, y int) core.Vec3 {
	return fb.Linear[y*fb.Width+x]
}

// ToRGBA quantizes the display colors into an 8-bit image
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(fb.At(x, y)))
		}
	}
	return img
}

// vec3ToColor maps [0,1] channels onto 0..255 with equal-width buckets
func vec3ToColor(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 0.999)
	return color.RGBA{
		R: uint8(256 * c.X),
		G: uint8(256 * c.Y),
		B: uint8(256 * c.Z),
		A: 255,
	}
}

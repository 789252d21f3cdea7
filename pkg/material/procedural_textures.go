package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewCheckerboardTexture creates a checkerboard image with square checks of checkSize pixels
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/checkSize+y/checkSize)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// NewUVDebugTexture creates a texture showing texture coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		// Rows are stored top first, so the top row carries v=1
		v := 1.0 - float64(y)/float64(max(1, height-1))
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(1, width-1))
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// NewGradientTexture creates a vertical gradient from top to bottom
func NewGradientTexture(width, height int, top, bottom core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		color := top.Multiply(1.0 - t).Add(bottom.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// NewEarthLikeTexture creates a stand-in planet map: ocean with noisy continents and polar caps
func NewEarthLikeTexture(width, height int, perlin *Perlin) *ImageTexture {
	ocean := core.NewVec3(0.05, 0.2, 0.55)
	land := core.NewVec3(0.2, 0.5, 0.15)
	ice := core.NewVec3(0.95, 0.95, 0.95)

	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		v := float64(y) / float64(max(1, height-1))
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(1, width-1))
			color := ocean
			if perlin.Turbulence(core.NewVec3(u*8, v*4, 0.5), 5) > 0.35 {
				color = land
			}
			if v < 0.08 || v > 0.92 {
				color = ice
			}
			pixels[y*width+x] = color
		}
	}

	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

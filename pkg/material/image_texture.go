package material

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// debugColor marks lookups into an image with no pixels
var debugColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture, rejecting malformed pixel data
func NewImageTexture(width, height int, pixels []core.Vec3) (*ImageTexture, error) {
	t := &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the dimensions agree with the pixel buffer
func (t *ImageTexture) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%w: image dimensions %dx%d must be positive", ErrInvalidTexture, t.Width, t.Height)
	}
	if len(t.Pixels) != t.Width*t.Height {
		return fmt.Errorf("%w: image has %d pixels, expected %d", ErrInvalidTexture, len(t.Pixels), t.Width*t.Height)
	}
	return nil
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Height <= 0 || t.Width <= 0 || len(t.Pixels) == 0 {
		return debugColor
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	v := 1.0 - unit.Clamp(uv.Y)
	// NaN coordinates survive clamping; read the bottom-left pixel for them
	if math.IsNaN(u) {
		u = 0
	}
	if math.IsNaN(v) {
		v = 1
	}

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}

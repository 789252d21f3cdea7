package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidCamera is returned when a camera configuration cannot produce rays
var ErrInvalidCamera = errors.New("invalid camera")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	Width         int       // Image width in pixels
	AspectRatio   float64   // Aspect ratio (width/height)
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Defocus angle in degrees, 0 for a pinhole camera
	FocusDistance float64   // Distance to the focus plane, 0 for |LookAt-Center|
	ShutterOpen   float64   // Ray times are uniform in [ShutterOpen, ShutterClose]
	ShutterClose  float64
}

// Height returns the image height implied by the width and aspect ratio
func (c CameraConfig) Height() int {
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// Validate reports configuration values that cannot produce a viewport
func (c CameraConfig) Validate() error {
	var errs []error
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("%w: width %d must be positive", ErrInvalidCamera, c.Width))
	}
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		errs = append(errs, fmt.Errorf("%w: aspect ratio %f must be positive", ErrInvalidCamera, c.AspectRatio))
	}
	if !(c.VFov > 0 && c.VFov < 180) {
		errs = append(errs, fmt.Errorf("%w: vertical fov %f must be in (0, 180)", ErrInvalidCamera, c.VFov))
	}
	if !(c.FocusDistance >= 0) {
		errs = append(errs, fmt.Errorf("%w: focus distance %f must not be negative", ErrInvalidCamera, c.FocusDistance))
	}
	if !(c.Aperture >= 0) {
		errs = append(errs, fmt.Errorf("%w: aperture %f must not be negative", ErrInvalidCamera, c.Aperture))
	}
	if c.ShutterClose < c.ShutterOpen {
		errs = append(errs, fmt.Errorf("%w: shutter closes at %f before it opens at %f", ErrInvalidCamera, c.ShutterClose, c.ShutterOpen))
	}
	if c.LookAt.Subtract(c.Center).NearZero() {
		errs = append(errs, fmt.Errorf("%w: look-at point coincides with the center", ErrInvalidCamera))
	} else if c.LookAt.Subtract(c.Center).Cross(c.Up).NearZero() {
		errs = append(errs, fmt.Errorf("%w: up vector is parallel to the view direction", ErrInvalidCamera))
	}
	return errors.Join(errs...)
}

// MergeCameraConfig overrides the non-zero fields of override on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}
	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.ShutterOpen != 0 {
		result.ShutterOpen = override.ShutterOpen
	}
	if override.ShutterClose != 0 {
		result.ShutterClose = override.ShutterClose
	}
	return result
}

// Camera generates primary rays through the pixels of the image plane
type Camera struct {
	config       CameraConfig
	width        int
	height       int
	pixel00      core.Vec3 // Center of the top-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	u, v, w      core.Vec3
}

// NewCamera creates a camera with the given configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
	}

	width := config.Width
	height := config.Height()

	theta := degreesToRadians(config.VFov)
	viewportHeight := 2 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Orthonormal camera basis
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edges: u runs right, v runs down
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)
	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(degreesToRadians(config.Aperture/2))

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		u:            u,
		v:            v,
		w:            w,
	}, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// GetCameraForward returns the direction the camera looks along
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// GetRay returns a ray through a random point of pixel (i, j), with (0, 0) the top-left pixel
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.config.Center
	if c.config.Aperture > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = origin.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	time := c.config.ShutterOpen
	if c.config.ShutterClose > c.config.ShutterOpen {
		time += sampler.Get1D() * (c.config.ShutterClose - c.config.ShutterOpen)
	}

	return core.NewRayWithTime(origin, pixelSample.Subtract(origin), time)
}

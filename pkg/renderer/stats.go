package renderer

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MaxSamples     int     // Target samples per pixel for the pass
	MinSamples     int     // Minimum samples taken per pixel
	MaxSamplesUsed int     // Maximum samples actually used by any pixel

	MeanLuminance    float64 // Mean linear luminance over all pixels
	LuminanceStdDev  float64 // Spread of the per-pixel luminance
	EstimateVariance float64 // Mean variance of the per-pixel luminance estimates
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics.
// NaN and negative components count as zero.
func (ps *PixelStats) AddSample(color core.Vec3) {
	color = sanitizeSample(color)
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// LuminanceVariance returns the sample variance of the luminance seen so far
func (ps *PixelStats) LuminanceVariance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return math.Max(0, (ps.LuminanceSqAccum-n*mean*mean)/(n-1))
}

func sanitizeSample(c core.Vec3) core.Vec3 {
	return core.Vec3{X: sanitizeChannel(c.X), Y: sanitizeChannel(c.Y), Z: sanitizeChannel(c.Z)}
}

func sanitizeChannel(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// luminanceStats returns the mean and standard deviation of the per-pixel linear luminance
func luminanceStats(pixels []core.Vec3) (mean, stdDev float64) {
	if len(pixels) == 0 {
		return 0, 0
	}
	values := make([]float64, len(pixels))
	for i, p := range pixels {
		values[i] = p.Luminance()
	}
	if len(values) == 1 {
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

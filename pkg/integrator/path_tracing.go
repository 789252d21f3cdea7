package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Rays start this far along their direction to avoid re-hitting the surface they left
const shadowEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with light sampling
// mixed into every diffuse bounce
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a path tracer from the scene's sampling configuration
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: config.MaxDepth}
}

// RayColor computes the color for a ray.
// Paths cut off at MaxDepth return black.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColorRecursive(ray, scene, sampler, pt.MaxDepth)
}

// rayColorRecursive returns the color for a given ray with material support
func (pt *PathTracingIntegrator) rayColorRecursive(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// Check for intersections with objects
	hit, isHit := scene.Hit(ray, shadowEpsilon, math.Inf(1), sampler)
	if !isHit {
		return scene.Background(ray)
	}

	emitted := material.Emitted(hit.Material, ray, *hit)

	// Try to scatter the ray
	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	// Handle scattering based on material type
	if scatter.IsSpecular() {
		return emitted.Add(pt.calculateSpecularColor(scatter, scene, sampler, depth))
	}
	return emitted.Add(pt.calculateDiffuseColor(ray, scatter, hit, scene, sampler, depth))
}

// calculateSpecularColor follows the single deterministic scattered ray
func (pt *PathTracingIntegrator) calculateSpecularColor(scatter core.ScatterResult, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	return scatter.Attenuation.MultiplyVec(
		pt.rayColorRecursive(scatter.Scattered, scene, sampler, depth-1))
}

// calculateDiffuseColor samples a direction from the light/material mixture
// and weights the incoming light by scatteringPDF/pdfValue
func (pt *PathTracingIntegrator) calculateDiffuseColor(ray core.Ray, scatter core.ScatterResult, hit *core.HitRecord, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	samplingPDF := scatter.PDF
	if lights := scene.LightTarget(); lights != nil {
		samplingPDF = pdf.NewMixturePDF(pdf.NewShapePDF(lights, hit.Point), scatter.PDF)
	}

	direction := samplingPDF.Generate(sampler)
	scattered := core.NewRayWithTime(hit.Point, direction, ray.Time)
	pdfValue := samplingPDF.Value(direction)
	if !(pdfValue > 0) || math.IsInf(pdfValue, 0) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
	if scatteringPDF <= 0 {
		return core.Vec3{}
	}

	// Monte Carlo estimator: attenuation * scatteringPDF * incomingLight / pdf
	incomingLight := pt.rayColorRecursive(scattered, scene, sampler, depth-1)
	return scatter.Attenuation.Multiply(scatteringPDF / pdfValue).MultiplyVec(incomingLight)
}

package pdf

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-pathtracer/pkg/core"
)

// integrateOverSphere estimates ∫ p(ω) dω with uniform sphere samples
func integrateOverSphere(p core.PDF, n int, seed int64) float64 {
	sampler := core.NewSeededSampler(seed)
	values := make([]float64, n)
	for i := range values {
		dir := core.SampleOnUnitSphere(sampler.Get2D())
		values[i] = p.Value(dir) * 4 * math.Pi
	}
	return stat.Mean(values, nil)
}

func TestCosinePDF_IntegratesToOne(t *testing.T) {
	normals := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 1, 1).Normalize(),
	}
	for _, normal := range normals {
		integral := integrateOverSphere(NewCosinePDF(normal), 50000, 42)
		if math.Abs(integral-1.0) > 0.02 {
			t.Errorf("Normal %v: expected integral ≈ 1, got %f", normal, integral)
		}
	}
}

func TestCosinePDF_GeneratedDirections(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	p := NewCosinePDF(normal)
	sampler := core.NewSeededSampler(42)

	// Importance-sampled estimate of ∫ cos(θ) dω over the hemisphere (= π)
	const n = 20000
	estimates := make([]float64, n)
	for i := 0; i < n; i++ {
		dir := p.Generate(sampler)
		if dir.Dot(normal) < -1e-9 {
			t.Fatalf("Generated direction %v below the surface", dir)
		}
		value := p.Value(dir)
		if value <= 0 {
			continue
		}
		estimates[i] = dir.Normalize().Dot(normal) / value
	}
	mean, std := stat.MeanStdDev(estimates, nil)
	if math.Abs(mean-math.Pi) > 1e-6 {
		t.Errorf("Expected estimate π, got %f", mean)
	}
	if std > 1e-6 {
		t.Errorf("Cosine sampling of a cosine integrand should have zero variance, got std %g", std)
	}
}

func TestCosinePDF_BelowSurfaceIsZero(t *testing.T) {
	p := NewCosinePDF(core.NewVec3(0, 0, 1))
	if v := p.Value(core.NewVec3(0, 0, -1)); v != 0 {
		t.Errorf("Expected zero density below the surface, got %f", v)
	}
}

func TestSpherePDF(t *testing.T) {
	p := NewSpherePDF()
	integral := integrateOverSphere(p, 1000, 1)
	if math.Abs(integral-1.0) > 1e-9 {
		t.Errorf("Expected integral exactly 1, got %f", integral)
	}
	dir := p.Generate(core.NewSeededSampler(1))
	if math.Abs(dir.Length()-1) > 1e-9 {
		t.Errorf("Expected unit direction, got %v", dir)
	}
}

// mockTarget is a light target with a fixed direction and density
type mockTarget struct {
	direction core.Vec3
	density   float64
	origin    core.Vec3
}

func (m *mockTarget) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return nil, false
}

func (m *mockTarget) BoundingBox() core.AABB {
	return core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
}

func (m *mockTarget) PDFValue(origin, direction core.Vec3) float64 {
	m.origin = origin
	return m.density
}

func (m *mockTarget) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	m.origin = origin
	return m.direction
}

func TestShapePDF_DelegatesToTarget(t *testing.T) {
	target := &mockTarget{direction: core.NewVec3(0, 1, 0), density: 2.5}
	origin := core.NewVec3(1, 2, 3)
	p := NewShapePDF(target, origin)

	if v := p.Value(core.NewVec3(1, 0, 0)); v != 2.5 {
		t.Errorf("Expected target density 2.5, got %f", v)
	}
	if target.origin != origin {
		t.Errorf("Expected origin %v passed to target, got %v", origin, target.origin)
	}
	if d := p.Generate(core.NewSeededSampler(1)); d != target.direction {
		t.Errorf("Expected target direction, got %v", d)
	}
}

func TestMixturePDF(t *testing.T) {
	target := &mockTarget{direction: core.NewVec3(0, 1, 0), density: 3.0}
	cosine := NewCosinePDF(core.NewVec3(0, 1, 0))
	mix := NewMixturePDF(NewShapePDF(target, core.Vec3{}), cosine)

	dir := core.NewVec3(0, 1, 0)
	expected := 0.5*3.0 + 0.5*(1/math.Pi)
	if v := mix.Value(dir); math.Abs(v-expected) > 1e-9 {
		t.Errorf("Expected mixture value %f, got %f", expected, v)
	}

	// Roughly half of the samples should come from each component
	sampler := core.NewSeededSampler(42)
	fromTarget := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if mix.Generate(sampler) == target.direction {
			fromTarget++
		}
	}
	if frac := float64(fromTarget) / n; math.Abs(frac-0.5) > 0.03 {
		t.Errorf("Expected about half of samples from the target, got %f", frac)
	}

	// A mixture of two normalized densities is normalized
	integral := integrateOverSphere(NewMixturePDF(NewSpherePDF(), cosine), 50000, 7)
	if math.Abs(integral-1.0) > 0.02 {
		t.Errorf("Expected mixture integral ≈ 1, got %f", integral)
	}
}

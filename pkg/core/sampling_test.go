package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleCosineHemisphere(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(-1, 2, 0.5).Normalize(),
	}
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for _, normal := range normals {
		sumCos := 0.0
		const n = 20000
		for i := 0; i < n; i++ {
			dir := SampleCosineHemisphere(normal, sampler.Get2D())
			if math.Abs(dir.Length()-1.0) > 1e-9 {
				t.Fatalf("Expected unit direction, got length %f", dir.Length())
			}
			cos := dir.Dot(normal)
			if cos < -1e-9 {
				t.Fatalf("Direction %v points below the hemisphere of %v", dir, normal)
			}
			sumCos += cos
		}
		// E[cos θ] under a cosine-weighted distribution is 2/3
		if mean := sumCos / n; math.Abs(mean-2.0/3.0) > 0.01 {
			t.Errorf("Normal %v: expected mean cosine ≈ 0.667, got %f", normal, mean)
		}
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(7)
	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(d.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", d.Length())
		}
		sum = sum.Add(d)
	}
	if mean := sum.Divide(n); mean.Length() > 0.03 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
}

func TestSamplePointInUnitDiskAndSphere(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.Length() > 1.0+1e-9 {
			t.Fatalf("Point %v outside unit disk", p)
		}
		q := SamplePointInUnitSphere(sampler.Get3D())
		if q.Length() > 1.0+1e-9 {
			t.Fatalf("Point %v outside unit sphere", q)
		}
	}
}

func TestRandomToSphere(t *testing.T) {
	sampler := NewSeededSampler(11)
	radius, distance := 1.0, 4.0
	cosMax := math.Sqrt(1 - radius*radius/(distance*distance))

	for i := 0; i < 1000; i++ {
		d := RandomToSphere(radius, distance*distance, sampler.Get2D())
		if math.Abs(d.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got %f", d.Length())
		}
		if d.Z < cosMax-1e-9 {
			t.Fatalf("Direction %v outside the cone (cos %f < %f)", d, d.Z, cosMax)
		}
	}
}

func TestONB(t *testing.T) {
	for _, n := range []Vec3{NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0.3, -0.4, 2)} {
		onb := NewONB(n)
		if math.Abs(onb.U().Dot(onb.V())) > 1e-9 ||
			math.Abs(onb.U().Dot(onb.W())) > 1e-9 ||
			math.Abs(onb.V().Dot(onb.W())) > 1e-9 {
			t.Errorf("Basis for %v is not orthogonal", n)
		}
		if onb.W().Subtract(n.Normalize()).Length() > 1e-9 {
			t.Errorf("W axis %v does not match normal %v", onb.W(), n.Normalize())
		}
		if got := onb.Transform(NewVec3(0, 0, 1)); got.Subtract(onb.W()).Length() > 1e-9 {
			t.Errorf("Transform of +Z should be W, got %v", got)
		}
	}
}

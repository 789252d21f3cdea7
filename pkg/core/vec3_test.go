package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, 7, 9)},
		{"Subtract", b.Subtract(a), NewVec3(3, 3, 3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", b.Divide(2), NewVec3(2, 2.5, 3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, 10, 18)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-9
			if tt.got.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if a.Dot(b) != 32 {
		t.Errorf("Expected dot product 32, got %f", a.Dot(b))
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", zero)
	}
}

func TestVec3_NearZeroAndFinite(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("Expected 1e-3 component not to be near zero")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("Expected NaN vector not to be finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Expected infinite vector not to be finite")
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	got := NewVec3(0.25, 1, -0.5).GammaCorrect(2.0)
	expected := NewVec3(0.5, 1, 0)
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestReflectRefract(t *testing.T) {
	n := NewVec3(0, 1, 0)
	r := Reflect(NewVec3(1, -1, 0), n)
	if r.Subtract(NewVec3(1, 1, 0)).Length() > 1e-9 {
		t.Errorf("Expected reflection (1,1,0), got %v", r)
	}

	// Index ratio 1 leaves the direction unchanged
	in := NewVec3(1, -1, 0).Normalize()
	out := Refract(in, n, 1.0)
	if out.Subtract(in).Length() > 1e-9 {
		t.Errorf("Expected unchanged direction %v, got %v", in, out)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayWithTime(NewVec3(1, 0, 0), NewVec3(0, 2, 0), 0.5)
	if p := ray.At(1.5); p != NewVec3(1, 3, 0) {
		t.Errorf("Expected (1,3,0), got %v", p)
	}
	if ray.Time != 0.5 {
		t.Errorf("Expected time 0.5, got %f", ray.Time)
	}
}

func TestInterval(t *testing.T) {
	i := NewInterval(1, 3)
	if !i.Contains(1) || !i.Contains(3) || i.Contains(3.5) {
		t.Error("Contains should include bounds and exclude outside values")
	}
	if i.Surrounds(1) || !i.Surrounds(2) {
		t.Error("Surrounds should exclude bounds")
	}
	if i.Clamp(5) != 3 || i.Clamp(-1) != 1 {
		t.Error("Clamp should limit values to the interval")
	}
	if e := i.Expand(1); e.Min != 0.5 || e.Max != 3.5 {
		t.Errorf("Expected [0.5, 3.5], got %v", e)
	}
	if EmptyInterval.Contains(0) {
		t.Error("Empty interval should contain nothing")
	}
	if !UniverseInterval.Surrounds(1e300) {
		t.Error("Universe interval should surround everything finite")
	}
}

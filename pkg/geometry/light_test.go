package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLightTargets_RandomAndPDFAgree(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 4, 0), 1, testMaterial)
	quad := NewQuad(core.NewVec3(-1, 3, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), testMaterial)
	tri := NewTriangle(core.NewVec3(-1, 3, -1), core.NewVec3(1, 3, -1), core.NewVec3(0, 3, 1), testMaterial)
	box := NewBox(core.NewVec3(2, 2, 2), core.NewVec3(3, 4, 3), testMaterial)
	bvh := NewBVH([]core.Shape{NewSphere(core.NewVec3(0, 5, 0), 1, testMaterial)})
	smoke := NewConstantMedium(NewBox(core.NewVec3(-1, 2, -1), core.NewVec3(1, 3, 1), testMaterial), 0.5, core.NewVec3(1, 1, 1))

	tests := []struct {
		name        string
		target      core.LightTarget
		samplable   bool
		fallbackPDF bool // Directions are uniform over the sphere
	}{
		{"Sphere", sphere, true, false},
		{"Quad", quad, true, false},
		{"Triangle", tri, true, false},
		{"Box", box, true, false},
		{"Translated quad", NewTranslate(quad, core.NewVec3(1, 1, 0)), true, false},
		{"Rotated box", NewRotate(box, core.NewVec3(20, 30, 40)), true, false},
		{"Rotated translated triangle", NewRotateY(NewTranslate(tri, core.NewVec3(0, 1, 0)), 45), true, false},
		{"Sphere and quad", NewShapeList(sphere, quad), true, false},
		{"Translated BVH", NewTranslate(bvh, core.NewVec3(0, 1, 0)), false, true},
		{"Rotated medium", NewRotateY(smoke, 30), false, true},
		{"Quad and medium", NewShapeList(quad, smoke), false, false},
	}

	origins := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(5, 1, -3)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSamplable(tt.target); got != tt.samplable {
				t.Errorf("IsSamplable = %v, want %v", got, tt.samplable)
			}

			sampler := core.NewSeededSampler(7)
			for _, origin := range origins {
				for i := 0; i < 300; i++ {
					dir := tt.target.Random(origin, sampler)
					pdf := tt.target.PDFValue(origin, dir)
					if !(pdf > 0) || math.IsInf(pdf, 0) {
						t.Fatalf("From %v: sampled direction %v has pdf %v", origin, dir, pdf)
					}
					if tt.fallbackPDF && math.Abs(pdf-1/(4*math.Pi)) > 1e-12 {
						t.Fatalf("From %v: expected the uniform sphere pdf, got %v", origin, pdf)
					}
				}
			}
		})
	}
}

func TestIsSamplable(t *testing.T) {
	tests := []struct {
		name  string
		shape core.Shape
		want  bool
	}{
		{"Sphere", NewSphere(core.Vec3{}, 1, testMaterial), true},
		{"Point sphere", NewSphere(core.Vec3{}, 0, testMaterial), false},
		{"Degenerate quad", NewQuad(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0), testMaterial), false},
		{"Degenerate triangle", NewTri(core.Vec3{}, core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2), testMaterial), false},
		{"Plane", NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), testMaterial), false},
		{"Empty list", NewShapeList(), false},
		{"Nil", nil, false},
		{"BVH", NewBVH([]core.Shape{NewSphere(core.Vec3{}, 1, testMaterial)}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSamplable(tt.shape); got != tt.want {
				t.Errorf("IsSamplable = %v, want %v", got, tt.want)
			}
		})
	}
}

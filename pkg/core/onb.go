package core

import "math"

// ONB is an orthonormal basis built around a single direction W
type ONB struct {
	axis [3]Vec3
}

// NewONB builds a basis whose W axis points along n
func NewONB(n Vec3) ONB {
	w := n.Normalize()
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{axis: [3]Vec3{u, v, w}}
}

func (o ONB) U() Vec3 { return o.axis[0] }
func (o ONB) V() Vec3 { return o.axis[1] }
func (o ONB) W() Vec3 { return o.axis[2] }

// Transform maps a vector from basis coordinates to world space
func (o ONB) Transform(local Vec3) Vec3 {
	return o.axis[0].Multiply(local.X).
		Add(o.axis[1].Multiply(local.Y)).
		Add(o.axis[2].Multiply(local.Z))
}

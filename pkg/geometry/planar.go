package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// planarFrame is the plane through Corner spanned by U and V.
// Quads, triangles and infinite planes differ only in which planar coordinates count as inside.
type planarFrame struct {
	Corner core.Vec3 // Origin of the planar coordinates
	U      core.Vec3 // First edge vector
	V      core.Vec3 // Second edge vector
	Normal core.Vec3 // Unit normal (direction of U × V)
	D      float64   // Plane equation constant: normal · p = D
	W      core.Vec3 // n / (n · n) with n = U × V, for planar coordinates
}

// newPlanarFrame returns the frame and |U × V|, the area of the parallelogram spanned by U and V
func newPlanarFrame(corner, u, v core.Vec3) (planarFrame, float64) {
	n := u.Cross(v)
	normal := n.Normalize()

	var w core.Vec3
	if lenSq := n.LengthSquared(); lenSq > 0 {
		w = n.Divide(lenSq)
	}

	return planarFrame{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: normal,
		D:      normal.Dot(corner),
		W:      w,
	}, n.Length()
}

// intersect finds where the ray crosses the plane strictly inside (tMin, tMax).
// alpha and beta are the hit point's coordinates along U and V.
func (f *planarFrame) intersect(ray core.Ray, tMin, tMax float64) (t float64, point core.Vec3, alpha, beta float64, ok bool) {
	denominator := ray.Direction.Dot(f.Normal)

	// Ray parallel to the plane (or degenerate frame)
	if math.Abs(denominator) < 1e-8 {
		return 0, core.Vec3{}, 0, 0, false
	}

	t = (f.D - ray.Origin.Dot(f.Normal)) / denominator
	if !(t > tMin && t < tMax) {
		return 0, core.Vec3{}, 0, 0, false
	}

	point = ray.At(t)
	planar := point.Subtract(f.Corner)
	alpha = f.W.Dot(planar.Cross(f.V))
	beta = f.W.Dot(f.U.Cross(planar))
	return t, point, alpha, beta, true
}

func (f *planarFrame) hitRecord(ray core.Ray, t float64, point core.Vec3, uv core.Vec2, material core.Material) *core.HitRecord {
	hitRecord := &core.HitRecord{
		T:        t,
		Point:    point,
		UV:       uv,
		Material: material,
		Time:     ray.Time,
	}
	hitRecord.SetFaceNormal(ray, f.Normal)
	return hitRecord
}

// solidAngleDensity converts a uniform area density over area to solid angle for a hit at t along direction
func (f *planarFrame) solidAngleDensity(t float64, direction core.Vec3, area float64) float64 {
	distanceSquared := t * t * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(f.Normal)) / direction.Length()
	if cosine < 1e-8 || !(area > 0) {
		return 0
	}
	return distanceSquared / (cosine * area)
}

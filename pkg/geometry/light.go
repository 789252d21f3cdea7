package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// IsSamplable reports whether shape can stand in scene.Lights: every direction its Random
// returns must get a positive PDFValue. Planes, media, BVHs and point spheres fail.
// LightTarget implementations from other packages are trusted.
func IsSamplable(shape core.Shape) bool {
	switch s := shape.(type) {
	case nil:
		return false
	case *Sphere:
		return s.Radius > 0 && !math.IsInf(s.Radius, 0)
	case *Quad:
		return s.area > 0
	case *Tri:
		return s.area > 0
	case *Translate:
		return IsSamplable(s.Shape)
	case *Rotate:
		return IsSamplable(s.Shape)
	case *ShapeList:
		if len(s.Shapes) == 0 {
			return false
		}
		for _, member := range s.Shapes {
			if !IsSamplable(member) {
				return false
			}
		}
		return true
	case *Plane, *BVH, *ConstantMedium:
		return false
	default:
		_, ok := shape.(core.LightTarget)
		return ok
	}
}

// uniformSpherePDF is the density of uniformly distributed directions
const uniformSpherePDF = 1 / (4 * math.Pi)

// lightPDFValue is the LightTarget density of shape, or the uniform sphere density for shapes
// that cannot be sampled. It pairs with lightRandom.
func lightPDFValue(shape core.Shape, origin, direction core.Vec3) float64 {
	if target, ok := shape.(core.LightTarget); ok {
		return target.PDFValue(origin, direction)
	}
	return uniformSpherePDF
}

// lightRandom samples toward shape, or uniformly over all directions when it cannot be sampled
func lightRandom(shape core.Shape, origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if target, ok := shape.(core.LightTarget); ok {
		return target.Random(origin, sampler)
	}
	return core.SampleOnUnitSphere(sampler.Get2D())
}

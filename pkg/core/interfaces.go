package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always facing against the incoming ray
	T         float64  // Parameter t along the ray
	UV        Vec2     // Surface texture coordinates
	Material  Material // Material of the hit object
	FrontFace bool     // Whether ray hit the front (outward) face
	Time      float64  // Time of the ray that produced the hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape interface for objects that can be hit by rays.
// Only probabilistic shapes such as participating media draw from sampler;
// callers without a sampler at hand may pass nil when no such shape is involved.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)
	BoundingBox() AABB
}

// Validator is implemented by scene elements that can check their parameters before rendering
type Validator interface {
	Validate() error
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter generates an outgoing ray for rayIn, or reports absorption
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)

	// ScatteringPDF is the density of the material scattering rayIn into scattered
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(rayIn Ray, hit HitRecord) Vec3
}

// PDF is a probability density over directions on the unit sphere
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// LightTarget is a shape that can be sampled directly from a point in the scene
type LightTarget interface {
	Shape
	// PDFValue is the solid angle density of direction from origin toward the shape
	PDFValue(origin, direction Vec3) float64
	// Random returns a direction from origin toward a random point on the shape
	Random(origin Vec3, sampler Sampler) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation Vec3 // Color attenuation
	Scattered   Ray  // Scattered ray, set for specular scattering
	PDF         PDF  // Sampling density for diffuse scattering, nil when specular
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF == nil
}

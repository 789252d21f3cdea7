package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MockShape for testing BVH traversal order
type MockShape struct {
	bbox  core.AABB
	hitFn func(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
	calls int
}

func (m *MockShape) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	m.calls++
	return m.hitFn(ray, tMin, tMax)
}

func (m *MockShape) BoundingBox() core.AABB {
	return m.bbox
}

// randomScene builds n small spheres and quads scattered in a cube
func randomScene(random *rand.Rand, n int) []core.Shape {
	shapes := make([]core.Shape, 0, n)
	for i := 0; i < n; i++ {
		center := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		if i%3 == 0 {
			u := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
			v := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
			shapes = append(shapes, NewQuad(center, u, v, testMaterial))
		} else {
			shapes = append(shapes, NewSphere(center, 0.2+random.Float64(), testMaterial))
		}
	}
	return shapes
}

func TestBVH_MatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := core.NewRandomSampler(random)

	for _, n := range []int{1, 2, 3, 7, 50, 300} {
		shapes := randomScene(random, n)
		list := NewShapeList(shapes...)

		// Any ordering of the input must give the same answers
		shuffled := make([]core.Shape, len(shapes))
		copy(shuffled, shapes)
		random.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		for _, input := range [][]core.Shape{shapes, shuffled} {
			bvh := NewBVH(input)
			for i := 0; i < 500; i++ {
				origin := core.SampleOnUnitSphere(sampler.Get2D()).Multiply(30)
				target := sampler.Get3D().Multiply(20).Subtract(core.NewVec3(10, 10, 10))
				ray := core.NewRay(origin, target.Subtract(origin))

				expected, expectedOK := list.Hit(ray, 0.001, math.Inf(1), nil)
				got, gotOK := bvh.Hit(ray, 0.001, math.Inf(1), nil)
				if expectedOK != gotOK {
					t.Fatalf("n=%d: brute force hit=%v, BVH hit=%v", n, expectedOK, gotOK)
				}
				if expectedOK && math.Abs(expected.T-got.T) > 1e-9 {
					t.Fatalf("n=%d: brute force t=%f, BVH t=%f", n, expected.T, got.T)
				}

				// An empty slab interval on the root box must mean no hit
				if !bvh.BoundingBox().Hit(ray, 0.001, math.Inf(1)) && gotOK {
					t.Fatalf("n=%d: BVH reported a hit for a ray missing its bounds", n)
				}
			}
		}
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	shapes := randomScene(rand.New(rand.NewSource(1)), 20)
	original := make([]core.Shape, len(shapes))
	copy(original, shapes)

	NewBVH(shapes)

	for i := range shapes {
		if shapes[i] != original[i] {
			t.Fatal("NewBVH must not reorder the caller's slice")
		}
	}
}

func TestBVH_NodeBoxesContainChildren(t *testing.T) {
	bvh := NewBVH(randomScene(rand.New(rand.NewSource(7)), 200))

	var check func(node *BVHNode)
	check = func(node *BVHNode) {
		if node.Shapes != nil {
			if len(node.Shapes) > leafThreshold {
				t.Errorf("Leaf holds %d shapes, threshold is %d", len(node.Shapes), leafThreshold)
			}
			for _, shape := range node.Shapes {
				if !node.BoundingBox.Contains(shape.BoundingBox()) {
					t.Errorf("Leaf box %v does not contain shape box %v", node.BoundingBox, shape.BoundingBox())
				}
			}
			return
		}
		if !node.BoundingBox.Contains(node.Left.BoundingBox) || !node.BoundingBox.Contains(node.Right.BoundingBox) {
			t.Errorf("Node box %v does not contain its children", node.BoundingBox)
		}
		check(node.Left)
		check(node.Right)
	}
	check(bvh.Root)
}

func TestBVH_PrunesMissedBoxes(t *testing.T) {
	hitAt := func(tHit float64) func(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
		return func(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
			if tHit <= tMin || tHit >= tMax {
				return nil, false
			}
			return &core.HitRecord{T: tHit, Point: ray.At(tHit)}, true
		}
	}

	near := &MockShape{bbox: core.NewAABB(core.NewVec3(-1, -1, 4), core.NewVec3(1, 1, 6)), hitFn: hitAt(5)}
	far := &MockShape{bbox: core.NewAABB(core.NewVec3(-1, -1, 9), core.NewVec3(1, 1, 11)), hitFn: hitAt(10)}
	offAxis := &MockShape{bbox: core.NewAABB(core.NewVec3(-52, -1, 4), core.NewVec3(-50, 1, 6)), hitFn: hitAt(5)}

	bvh := NewBVH([]core.Shape{far, offAxis, near})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := bvh.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok || hit.T != 5 {
		t.Fatalf("Expected closest hit at t=5, got %v", hit)
	}
	if offAxis.calls != 0 {
		t.Errorf("Shape outside the ray's path should be pruned, got %d calls", offAxis.calls)
	}
}

func TestBVH_EmptyAndStats(t *testing.T) {
	empty := NewBVH(nil)
	if _, ok := empty.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), 0.001, math.Inf(1), nil); ok {
		t.Error("Empty BVH should never be hit")
	}
	if stats := empty.Stats(); stats.TotalNodes != 0 {
		t.Errorf("Expected no nodes, got %+v", stats)
	}

	const n = 64
	bvh := NewBVH(randomScene(rand.New(rand.NewSource(3)), n))
	stats := bvh.Stats()
	if stats.TotalShapes != n {
		t.Errorf("Expected %d shapes in leaves, got %d", n, stats.TotalShapes)
	}
	if stats.TotalNodes != 2*stats.LeafNodes-1 {
		t.Errorf("Binary tree should have 2L-1 nodes, got %d nodes and %d leaves", stats.TotalNodes, stats.LeafNodes)
	}
	// Median splits keep the tree balanced
	if stats.MaxDepth > int(math.Ceil(math.Log2(n)))+1 {
		t.Errorf("Tree too deep for median splits: %d", stats.MaxDepth)
	}
	if err := bvh.Validate(); err != nil {
		t.Errorf("Expected valid shapes, got %v", err)
	}
}

func TestBVH_Nested(t *testing.T) {
	inner := NewBVH([]core.Shape{
		NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial),
		NewSphere(core.NewVec3(3, 0, 0), 1, testMaterial),
		NewSphere(core.NewVec3(6, 0, 0), 1, testMaterial),
	})
	outer := NewBVH([]core.Shape{NewTranslate(inner, core.NewVec3(0, 10, 0))})

	hit, ok := outer.Hit(core.NewRay(core.NewVec3(3, 10, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil)
	if !ok || math.Abs(hit.T-4) > 1e-9 {
		t.Fatalf("Expected nested hit at t=4, got %v", hit)
	}
}

func TestBVH_UnboundedShapes(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	sampler := core.NewRandomSampler(random)

	floor := NewPlane(core.NewVec3(0, -12, 0), core.NewVec3(0, 1, 0), testMaterial)
	shapes := append(randomScene(random, 40), floor)
	list := NewShapeList(shapes...)
	bvh := NewBVH(shapes)

	stats := bvh.Stats()
	if stats.UnboundedShapes != 1 || stats.TotalShapes != 41 {
		t.Errorf("Expected 41 shapes with 1 unbounded, got %+v", stats)
	}
	if bvh.Root == nil || bvh.Root.BoundingBox.IsUnbounded() {
		t.Errorf("Expected a finite tree next to the plane, got root %+v", bvh.Root)
	}
	if !bvh.BoundingBox().IsUnbounded() {
		t.Error("A BVH holding a plane should report the universe box")
	}

	floorHits := 0
	for i := 0; i < 500; i++ {
		origin := core.SampleOnUnitSphere(sampler.Get2D()).Multiply(30)
		target := sampler.Get3D().Multiply(20).Subtract(core.NewVec3(10, 10, 10))
		ray := core.NewRay(origin, target.Subtract(origin))

		expected, expectedOK := list.Hit(ray, 0.001, math.Inf(1), nil)
		got, gotOK := bvh.Hit(ray, 0.001, math.Inf(1), nil)
		if expectedOK != gotOK {
			t.Fatalf("Brute force hit=%v, BVH hit=%v", expectedOK, gotOK)
		}
		if expectedOK && math.Abs(expected.T-got.T) > 1e-9 {
			t.Fatalf("Brute force t=%f, BVH t=%f", expected.T, got.T)
		}
		if gotOK && got.Point.Y < -11.99 {
			floorHits++
		}
	}
	if floorHits == 0 {
		t.Error("Expected some rays to reach the plane")
	}

	// A plane alone leaves the tree empty
	only := NewBVH([]core.Shape{floor})
	if only.Root != nil {
		t.Error("Expected no tree for a lone plane")
	}
	if _, ok := only.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), 0.001, math.Inf(1), nil); !ok {
		t.Error("Expected the lone plane to be hit")
	}
	if err := only.Validate(); err != nil {
		t.Errorf("Expected a valid plane, got %v", err)
	}
}

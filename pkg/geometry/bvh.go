package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []core.Shape // Shapes for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Shapes with an unbounded box (core.UniverseAABB, e.g. Plane) would give every ancestor node
// the universe box, so they are kept out of the tree and tested against every ray.
type BVH struct {
	Root      *BVHNode
	Unbounded []core.Shape
}

// Leaf threshold: if we have this many or fewer shapes, store them in a leaf node
const leafThreshold = 2

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []core.Shape) *BVH {
	bvh := &BVH{}

	// Copy into a fresh slice so the caller's order is left untouched
	bounded := make([]core.Shape, 0, len(shapes))
	for _, shape := range shapes {
		if shape.BoundingBox().IsUnbounded() {
			bvh.Unbounded = append(bvh.Unbounded, shape)
		} else {
			bounded = append(bounded, shape)
		}
	}

	if len(bounded) > 0 {
		bvh.Root = buildBVH(bounded)
	}
	return bvh
}

// buildBVH recursively splits shapes at the median along the longest axis of their bounds
func buildBVH(shapes []core.Shape) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	for i := 1; i < len(shapes); i++ {
		boundingBox = boundingBox.Union(shapes[i].BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Shapes:      shapes,
		}
	}

	axis := boundingBox.LongestAxis()
	sortShapesByAxis(shapes, axis)

	mid := len(shapes) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(shapes[:mid]),
		Right:       buildBVH(shapes[mid:]),
	}
}

// sortShapesByAxis sorts shapes by the minimum of their bounding box along the specified axis
func sortShapesByAxis(shapes []core.Shape, axis int) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Min.Axis(axis) < shapes[j].BoundingBox().Min.Axis(axis)
	})
}

// Hit tests if a ray intersects any shape in the BVH and returns the closest hit
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	if bvh.Root != nil {
		if hit := bvh.hitNode(bvh.Root, ray, tMin, tMax, sampler); hit != nil {
			closestSoFar = hit.T
			closestHit = hit
		}
	}
	for _, shape := range bvh.Unbounded {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar, sampler); ok {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64, sampler core.Sampler) *core.HitRecord {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil
	}

	var closestHit *core.HitRecord
	closestSoFar := tMax

	// Leaf node: linear search through its shapes
	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar, sampler); ok {
				closestSoFar = hit.T
				closestHit = hit
			}
		}
		return closestHit
	}

	// Internal node: the right child only needs to beat the left child's hit
	if hit := bvh.hitNode(node.Left, ray, tMin, closestSoFar, sampler); hit != nil {
		closestSoFar = hit.T
		closestHit = hit
	}
	if hit := bvh.hitNode(node.Right, ray, tMin, closestSoFar, sampler); hit != nil {
		closestHit = hit
	}

	return closestHit
}

// BoundingBox implements the Shape interface - returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if len(bvh.Unbounded) > 0 {
		return core.UniverseAABB
	}
	if bvh.Root == nil {
		return core.AABB{}
	}
	return bvh.Root.BoundingBox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes      int
	LeafNodes       int
	MaxDepth        int
	AvgDepth        float64 // Average depth of leaf nodes
	TotalShapes     int     // Shapes in the leaves plus unbounded shapes
	UnboundedShapes int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{
		TotalShapes:     len(bvh.Unbounded),
		UnboundedShapes: len(bvh.Unbounded),
	}
	if bvh.Root == nil {
		return stats
	}

	collectStats(bvh.Root, 0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Shapes != nil {
		stats.LeafNodes++
		stats.TotalShapes += len(node.Shapes)
		stats.AvgDepth += float64(depth) // Accumulated here, averaged in Stats
		return
	}

	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}

// Validate checks every shape stored in the leaves and the unbounded list
func (bvh *BVH) Validate() error {
	shapes := append([]core.Shape(nil), bvh.Unbounded...)
	if bvh.Root == nil {
		return NewShapeList(shapes...).Validate()
	}
	var walk func(node *BVHNode)
	walk = func(node *BVHNode) {
		if node.Shapes != nil {
			shapes = append(shapes, node.Shapes...)
			return
		}
		walk(node.Left)
		walk(node.Right)
	}
	walk(bvh.Root)
	return NewShapeList(shapes...).Validate()
}

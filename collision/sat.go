// Package collision implements separating-axis overlap tests for convex polygons.
package collision

import (
	"math"

	"github.com/pthm-cable/arcade/geom"
)

// Contact describes an overlap between two shapes.
type Contact struct {
	// Axis is a unit vector along the minimum-overlap axis, pointing from the
	// first shape toward the second.
	Axis geom.Vector
	// Depth is the projected overlap along Axis.
	Depth float64
}

// Detect reports whether convex polygons a and b overlap and, if so, the
// contact axis pointing from a toward b.
func Detect(a, b geom.Polygon) (geom.Vector, bool) {
	c, ok := DetectWithDepth(a, b)
	return c.Axis, ok
}

// DetectWithDepth is Detect that also returns the overlap depth.
// Candidate axes are the edge normals of both polygons; the first axis with
// disjoint projections ends the search.
func DetectWithDepth(a, b geom.Polygon) (Contact, bool) {
	best := Contact{Depth: math.MaxFloat64}

	if !minOverlapAxis(a, a, b, &best) {
		return Contact{}, false
	}
	if !minOverlapAxis(b, a, b, &best) {
		return Contact{}, false
	}
	if best.Depth == math.MaxFloat64 {
		// Every edge was degenerate.
		return Contact{}, false
	}

	// Orient the axis from a toward b.
	dir := b.Centroid().Sub(a.Centroid())
	if dir.Dot(best.Axis) < 0 {
		best.Axis = best.Axis.Negate()
	}
	return best, true
}

// minOverlapAxis tests the edge normals of edges against a and b, updating
// best with any smaller overlap. It returns false on a separating axis.
func minOverlapAxis(edges, a, b geom.Polygon, best *Contact) bool {
	j := len(edges) - 1
	for i := range edges {
		edge := edges[i].Sub(edges[j])
		j = i
		if edge.IsZero() {
			continue
		}
		axis := geom.Vec(-edge.Y, edge.X).Unit()

		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		depth := math.Min(maxA, maxB) - math.Max(minA, minB)
		if depth <= 0 {
			return false
		}
		if depth < best.Depth {
			best.Depth = depth
			best.Axis = axis
		}
	}
	return true
}

// project returns the interval covered by p along axis.
func project(p geom.Polygon, axis geom.Vector) (min, max float64) {
	min = p[0].Dot(axis)
	max = min
	for _, v := range p[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		} else if d > max {
			max = d
		}
	}
	return min, max
}

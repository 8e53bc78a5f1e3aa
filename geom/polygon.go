package geom

import (
	"errors"
	"math"
)

// Polygon validation errors.
var (
	ErrTooFewVertices  = errors.New("polygon needs at least 3 vertices")
	ErrDegenerateShape = errors.New("polygon has zero area")
	ErrNonFiniteVertex = errors.New("polygon has a non-finite vertex")
)

// Polygon is an ordered vertex list in counter-clockwise winding.
// Translate and Rotate mutate it in place.
type Polygon []Vector

// Clone returns an independent copy of p.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Validate checks the preconditions every body shape must satisfy.
func (p Polygon) Validate() error {
	if len(p) < 3 {
		return ErrTooFewVertices
	}
	for _, v := range p {
		if !v.IsFinite() {
			return ErrNonFiniteVertex
		}
	}
	if p.Area() == 0 {
		return ErrDegenerateShape
	}
	return nil
}

// signedArea2 returns twice the signed shoelace area (positive for CCW).
func (p Polygon) signedArea2() float64 {
	sum := 0.0
	j := len(p) - 1
	for i := range p {
		sum += p[j].Cross(p[i])
		j = i
	}
	return sum
}

// Area returns the unsigned shoelace area.
func (p Polygon) Area() float64 {
	return 0.5 * math.Abs(p.signedArea2())
}

// Centroid returns the area-weighted centre of p.
// Only meaningful for simple, consistently wound polygons.
func (p Polygon) Centroid() Vector {
	var cx, cy float64
	j := len(p) - 1
	for i := range p {
		cross := p[j].Cross(p[i])
		cx += (p[i].X + p[j].X) * cross
		cy += (p[i].Y + p[j].Y) * cross
		j = i
	}
	// Signed area keeps the result correct for either winding.
	k := 1 / (3 * p.signedArea2())
	return Vector{X: cx * k, Y: cy * k}
}

// Translate adds d to every vertex.
func (p Polygon) Translate(d Vector) {
	for i := range p {
		p[i] = p[i].Add(d)
	}
}

// Rotate rotates every vertex by angle radians about pivot.
func (p Polygon) Rotate(angle float64, pivot Vector) {
	for i := range p {
		p[i] = p[i].RotateAbout(angle, pivot)
	}
}

// Bounds returns the axis-aligned bounding box of p.
func (p Polygon) Bounds() (min, max Vector) {
	if len(p) == 0 {
		return Zero, Zero
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}

// Contains reports whether pt lies inside p, using an even-odd ray cast.
// Points exactly on an edge may fall either way.
func (p Polygon) Contains(pt Vector) bool {
	inside := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if pt.X < x {
			inside = !inside
		}
	}
	return inside
}

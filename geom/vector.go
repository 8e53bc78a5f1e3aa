// Package geom provides the 2D vector and polygon primitives used by the
// physics kernel, plus parametric shape factories for game content.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector is a 2D vector or point. It is a value type.
type Vector r2.Vec

// Zero is the zero vector.
var Zero = Vector{}

// Vec constructs a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) r2() r2.Vec { return r2.Vec(v) }

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector(r2.Add(v.r2(), w.r2()))
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector(r2.Sub(v.r2(), w.r2()))
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Scale returns f*v.
func (v Vector) Scale(f float64) Vector {
	return Vector(r2.Scale(f, v.r2()))
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return r2.Dot(v.r2(), w.r2())
}

// Cross returns the scalar 2D cross product v.X*w.Y - v.Y*w.X.
func (v Vector) Cross(w Vector) float64 {
	return r2.Cross(v.r2(), w.r2())
}

// Rotate rotates v by angle radians about the origin.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{X: cos*v.X - sin*v.Y, Y: sin*v.X + cos*v.Y}
}

// RotateAbout rotates v by angle radians about pivot.
func (v Vector) RotateAbout(angle float64, pivot Vector) Vector {
	return Vector(r2.Rotate(v.r2(), angle, pivot.r2()))
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return r2.Norm(v.r2())
}

// Unit returns v scaled to unit length.
// The zero vector has no direction; the result then has NaN components and
// callers must guard against it.
func (v Vector) Unit() Vector {
	return Vector(r2.Unit(v.r2()))
}

// Project returns the projection of v onto w.
func (v Vector) Project(w Vector) Vector {
	u := w.Unit()
	return u.Scale(v.Dot(u))
}

// Distance returns the Euclidean distance between v and w.
func (v Vector) Distance(w Vector) float64 {
	return w.Sub(v).Magnitude()
}

// Angle returns the polar angle of v in radians.
// Axis-aligned vectors map exactly onto 0, pi/2, pi and -pi/2.
func (v Vector) Angle() float64 {
	switch {
	case v.X == 0 && v.Y >= 0:
		return math.Pi / 2
	case v.X == 0:
		return -math.Pi / 2
	case v.Y == 0 && v.X > 0:
		return 0
	case v.Y == 0:
		return math.Pi
	}
	return math.Atan2(v.Y, v.X)
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsClose reports whether v and w differ by at most tol in each component.
func (v Vector) IsClose(w Vector, tol float64) bool {
	return math.Abs(v.X-w.X) <= tol && math.Abs(v.Y-w.Y) <= tol
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

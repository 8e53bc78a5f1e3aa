package geom

import (
	"errors"
	"math"
	"testing"
)

func unitSquare() Polygon {
	return Polygon{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name string
		p    Polygon
		want float64
	}{
		{"square", unitSquare(), 4},
		{"3-4-5 triangle", Polygon{{0, 0}, {4, 0}, {4, 3}}, 6},
		{"clockwise square", Polygon{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}, 4},
		{"rectangle factory", Rectangle(Vec(10, -3), 6, 2), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Area(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonCentroid(t *testing.T) {
	tests := []struct {
		name string
		p    Polygon
		want Vector
	}{
		{"square at origin", unitSquare(), Vec(0, 0)},
		{"3-4-5 triangle", Polygon{{0, 0}, {4, 0}, {4, 3}}, Vec(8.0/3, 1)},
		{"clockwise triangle", Polygon{{4, 3}, {4, 0}, {0, 0}}, Vec(8.0/3, 1)},
		{"offset rectangle", Rectangle(Vec(10, -3), 6, 2), Vec(10, -3)},
		{"oval", Oval(Vec(20, 20), 80, 80), Vec(20, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Centroid(); !got.IsClose(tt.want, 1e-9) {
				t.Errorf("Centroid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonTranslateRotate(t *testing.T) {
	p := unitSquare()
	p.Translate(Vec(5, -2))
	if c := p.Centroid(); !c.IsClose(Vec(5, -2), 1e-12) {
		t.Errorf("centroid after translate = %v, want (5, -2)", c)
	}

	p.Rotate(math.Pi/4, Vec(5, -2))
	if c := p.Centroid(); !c.IsClose(Vec(5, -2), 1e-12) {
		t.Errorf("centroid after rotate about centroid = %v, want (5, -2)", c)
	}
	if a := p.Area(); math.Abs(a-4) > 1e-12 {
		t.Errorf("area after rotate = %v, want 4", a)
	}
	// A square rotated by 45 degrees has a vertex on the +x axis at sqrt(2).
	_, max := p.Bounds()
	if math.Abs(max.X-(5+math.Sqrt2)) > 1e-12 {
		t.Errorf("max x = %v, want %v", max.X, 5+math.Sqrt2)
	}
}

func TestPolygonValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Polygon
		want error
	}{
		{"valid", unitSquare(), nil},
		{"empty", nil, ErrTooFewVertices},
		{"two vertices", Polygon{{0, 0}, {1, 1}}, ErrTooFewVertices},
		{"collinear", Polygon{{0, 0}, {1, 1}, {2, 2}}, ErrDegenerateShape},
		{"nan vertex", Polygon{{0, 0}, {1, 0}, {math.NaN(), 1}}, ErrNonFiniteVertex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPolygonClone(t *testing.T) {
	p := unitSquare()
	c := p.Clone()
	c.Translate(Vec(1, 1))
	if p[0] != Vec(-1, -1) {
		t.Errorf("clone shares storage with original: %v", p[0])
	}
}

func TestPolygonContains(t *testing.T) {
	tests := []struct {
		name string
		p    Polygon
		pt   Vector
		want bool
	}{
		{"square center", unitSquare(), Vec(0, 0), true},
		{"square near corner", unitSquare(), Vec(0.9, -0.9), true},
		{"square outside", unitSquare(), Vec(1.5, 0), false},
		{"square above", unitSquare(), Vec(0, 2), false},
		{"star center", Star(5, 10, Vec(3, 3)), Vec(3, 3), true},
		{"star arm tip", Star(5, 10, Vec(0, 0)), Vec(0, -9), true},
		{"star notch", Star(5, 10, Vec(0, 0)), Vec(4.7, -6.47), false},
		{"oval inside", Oval(Vec(0, 0), 20, 10), Vec(8, 0), true},
		{"oval outside", Oval(Vec(0, 0), 20, 10), Vec(0, 6), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

package geom

import "math"

// Vertex counts for the curved factories.
const (
	ovalVertices          = 52
	balloonVertices       = 104
	balloonKnotIndex      = 78
	partialCircleVertices = 50
	partialCircleSections = 12
)

// Rectangle returns an axis-aligned rectangle centred on center.
func Rectangle(center Vector, width, height float64) Polygon {
	hw, hh := width/2, height/2
	return Polygon{
		{X: center.X - hw, Y: center.Y + hh},
		{X: center.X - hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y + hh},
	}
}

// Star returns an n-pointed star inscribed in a circle of the given radius.
// Inner vertices sit at radius 2r/n, offset by pi/n from the outer ones.
func Star(points int, radius float64, center Vector) Polygon {
	star := make(Polygon, 0, points*2)
	angle := math.Pi / 2
	shift := math.Pi / float64(points)
	inner := 2 * radius / float64(points)
	for i := 0; i < points; i++ {
		outer := Vec(math.Cos(angle), math.Sin(angle)).Scale(radius)
		in := Vec(math.Cos(angle+shift), math.Sin(angle+shift)).Scale(inner)
		star = append(star, center.Sub(outer), center.Sub(in))
		angle += 2 * math.Pi / float64(points)
	}
	return star
}

// Oval returns an ellipse approximated by 52 vertices.
func Oval(center Vector, xSpan, ySpan float64) Polygon {
	step := 2 * math.Pi / ovalVertices
	w, h := xSpan/2, ySpan/2
	oval := make(Polygon, ovalVertices)
	for i := range oval {
		a := float64(i) * step
		oval[i] = Vector{X: center.X + w*math.Cos(a), Y: center.Y + h*math.Sin(a)}
	}
	return oval
}

// Circle returns an oval with equal spans.
func Circle(center Vector, radius float64) Polygon {
	return Oval(center, 2*radius, 2*radius)
}

// PartialCircle returns a pie slice of a circle: the centre followed by arc
// vertices. The circle is split into 12 sections; begin and end select the
// sections covered, so (1, 11) is a mouth-open pacman and (1, 5) an invader.
func PartialCircle(radius float64, begin, end int, center Vector) Polygon {
	step := 2 * math.Pi / partialCircleVertices
	first := begin * partialCircleVertices / partialCircleSections
	last := end * partialCircleVertices / partialCircleSections
	arc := Polygon{center}
	for i := first; i < last; i++ {
		a := float64(i) * step
		arc = append(arc, Vector{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
	}
	return arc
}

// Balloon returns an oval with a small knot at the bottom.
func Balloon(center Vector, xSpan, ySpan float64) Polygon {
	step := 2 * math.Pi / balloonVertices
	w, h := xSpan/2, ySpan/2
	balloon := make(Polygon, 0, balloonVertices+1)
	for i := 0; i < balloonVertices; i++ {
		a := float64(i) * step
		v := Vector{X: center.X + w*math.Cos(a), Y: center.Y + h*math.Sin(a)}
		if i != balloonKnotIndex {
			balloon = append(balloon, v)
			continue
		}
		balloon = append(balloon,
			Vector{X: v.X - xSpan/8, Y: v.Y - ySpan/10},
			Vector{X: v.X + xSpan/8, Y: v.Y - ySpan/10},
		)
	}
	return balloon
}

// Dart returns a horizontal dart pointing along +x with its tip at tip.
func Dart(tip Vector, length, thickness float64) Polygon {
	return Polygon{
		tip,
		{X: tip.X - length/6, Y: tip.Y + thickness/4},
		{X: tip.X - length/3, Y: tip.Y + thickness},
		{X: tip.X - 2*length/3, Y: tip.Y + thickness},
		{X: tip.X - 3*length/4, Y: tip.Y + thickness/2},
		{X: tip.X - length, Y: tip.Y + thickness*3},
		{X: tip.X - length, Y: tip.Y - thickness*3},
		{X: tip.X - 3*length/4, Y: tip.Y - thickness/2},
		{X: tip.X - 2*length/3, Y: tip.Y - thickness},
		{X: tip.X - length/3, Y: tip.Y - thickness},
		{X: tip.X - length/6, Y: tip.Y - thickness/4},
	}
}

// Arrow returns a horizontal arrow whose shaft starts at pivot.
func Arrow(pivot Vector, width, height, headLength float64) Polygon {
	return Polygon{
		{X: pivot.X, Y: pivot.Y + height/2},
		{X: pivot.X, Y: pivot.Y - height/2},
		{X: pivot.X + width, Y: pivot.Y - height/2},
		{X: pivot.X + width, Y: pivot.Y - height/2 - headLength/2},
		{X: pivot.X + width + headLength, Y: pivot.Y},
		{X: pivot.X + width, Y: pivot.Y + height/2 + headLength/2},
		{X: pivot.X + width, Y: pivot.Y + height/2},
	}
}

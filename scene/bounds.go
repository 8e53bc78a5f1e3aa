package scene

import (
	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/geom"
)

// Wall names an edge of a centred rectangular playfield.
type Wall uint8

const (
	WallNone Wall = iota
	WallRight
	WallLeft
	WallBottom
	WallTop
)

var wallNames = []string{"none", "right", "left", "bottom", "top"}

func (w Wall) String() string {
	if int(w) < len(wallNames) {
		return wallNames[w]
	}
	return "unknown"
}

// WhichWallHit reports which wall of a size.X by size.Y field centred on the
// origin b crosses. With allPointsOff false, the first vertex outside the
// field decides. With allPointsOff true, every vertex must be outside and the
// wall crossed by the most vertices is returned.
func WhichWallHit(b *body.Body, size geom.Vector, allPointsOff bool) Wall {
	hw, hh := size.X/2, size.Y/2
	var counts [5]int
	for _, v := range b.Vertices() {
		var w Wall
		switch {
		case v.X > hw:
			w = WallRight
		case v.X < -hw:
			w = WallLeft
		case v.Y < -hh:
			w = WallBottom
		case v.Y > hh:
			w = WallTop
		}
		if !allPointsOff {
			if w != WallNone {
				return w
			}
			continue
		}
		if w == WallNone {
			return WallNone
		}
		counts[w]++
	}
	if !allPointsOff {
		return WallNone
	}

	best := WallRight
	for w := WallLeft; w <= WallTop; w++ {
		if counts[w] > counts[best] {
			best = w
		}
	}
	return best
}

// BounceOffWall reflects b's velocity off wall when any vertex lies beyond it
// and b is still moving outward. The reflected component is scaled by the
// matching elasticity component. It reports whether b bounced.
func BounceOffWall(b *body.Body, wall Wall, size geom.Vector, elasticity geom.Vector) bool {
	hw, hh := size.X/2, size.Y/2
	v := b.Velocity()

	var beyond func(p geom.Vector) bool
	switch wall {
	case WallRight:
		if v.X <= 0 {
			return false
		}
		beyond = func(p geom.Vector) bool { return p.X > hw }
	case WallLeft:
		if v.X >= 0 {
			return false
		}
		beyond = func(p geom.Vector) bool { return p.X < -hw }
	case WallTop:
		if v.Y <= 0 {
			return false
		}
		beyond = func(p geom.Vector) bool { return p.Y > hh }
	case WallBottom:
		if v.Y >= 0 {
			return false
		}
		beyond = func(p geom.Vector) bool { return p.Y < -hh }
	default:
		return false
	}

	for _, p := range b.Vertices() {
		if !beyond(p) {
			continue
		}
		if wall == WallLeft || wall == WallRight {
			v.X *= -elasticity.X
		} else {
			v.Y *= -elasticity.Y
		}
		b.SetVelocity(v)
		return true
	}
	return false
}

// BounceOffWalls applies BounceOffWall for every wall using b's elasticity.
func BounceOffWalls(b *body.Body, size geom.Vector) {
	for w := WallRight; w <= WallTop; w++ {
		BounceOffWall(b, w, size, b.Elasticity())
	}
}

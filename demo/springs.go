package demo

import (
	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
)

// Springs lays out pairs of circles mirrored about the horizontal axis
// and joins each pair with a spring. The first half of the pairs is damped
// by drag on the lower circle.
type Springs struct {
	ctx   *Context
	pairs [][2]*body.Body
}

func (d *Springs) Name() string  { return "springs" }
func (d *Springs) Title() string { return "Springs and Damping" }

// Setup places one pair every circle diameter along the field's width. The
// lower circles climb a diagonal from the bottom-left corner while the upper
// ones mirror them from the top-left.
func (d *Springs) Setup(ctx *Context) error {
	d.ctx = ctx
	cfg := ctx.Cfg.Springs
	d.pairs = d.pairs[:0]

	n := ctx.World.Magnitude() / (2 * cfg.Radius)
	slope := ctx.World.Y / n
	x, y := -ctx.World.X/2, -ctx.World.Y/2

	for i := 0; float64(i) <= n; i++ {
		upper, err := body.New(geom.Circle(geom.Vec(x, -y), cfg.Radius), cfg.Mass, components.White, components.RoleNone)
		if err != nil {
			return err
		}
		lower, err := body.New(geom.Circle(geom.Vec(x, y), cfg.Radius), cfg.Mass, randomColor(ctx.RNG), components.RoleNone)
		if err != nil {
			return err
		}
		ctx.Scene.AddBody(upper)
		ctx.Scene.AddBody(lower)
		d.pairs = append(d.pairs, [2]*body.Body{upper, lower})

		x += 2 * cfg.Radius
		y += slope
	}

	for i, p := range d.pairs {
		ctx.Scene.AddSpring(cfg.K, p[0], p[1])
		if i < len(d.pairs)/2 {
			ctx.Scene.AddDrag(cfg.Drag, p[1])
		}
	}
	return nil
}

func (d *Springs) HandleKey(KeyEvent) {}
func (d *Springs) Update(float64)     {}
func (d *Springs) Kinematic() bool    { return false }
func (d *Springs) Over() bool         { return false }

package demo

import (
	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
)

// NBody scatters small stars that attract each other under Newtonian
// gravity. Each star's mass equals its radius.
type NBody struct {
	ctx   *Context
	stars []*body.Body
}

func (d *NBody) Name() string  { return "nbody" }
func (d *NBody) Title() string { return "N-Body Gravity" }

// Setup creates the stars and binds gravity between every pair once.
func (d *NBody) Setup(ctx *Context) error {
	d.ctx = ctx
	cfg := ctx.Cfg.NBody
	d.stars = d.stars[:0]

	for i := 0; i < cfg.Count; i++ {
		radius := randInt(ctx.RNG, cfg.MinRadius, cfg.MaxRadius)
		vel := geom.Vec(
			float64(randInt(ctx.RNG, -cfg.MaxSpeed, cfg.MaxSpeed)),
			float64(randInt(ctx.RNG, -cfg.MaxSpeed, cfg.MaxSpeed)),
		)
		shape := geom.Star(cfg.Points, float64(radius), randomPoint(ctx.RNG, ctx.World))
		b, err := body.New(shape, float64(radius), randomColor(ctx.RNG), components.RoleNone)
		if err != nil {
			return err
		}
		b.SetVelocity(vel)
		ctx.Scene.AddBody(b)
		d.stars = append(d.stars, b)
	}

	for i, a := range d.stars {
		for _, b := range d.stars[i+1:] {
			ctx.Scene.AddGravity(cfg.G, a, b)
		}
	}
	return nil
}

func (d *NBody) HandleKey(KeyEvent) {}
func (d *NBody) Update(float64)     {}
func (d *NBody) Kinematic() bool    { return false }
func (d *NBody) Over() bool         { return false }

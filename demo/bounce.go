package demo

import (
	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
	"github.com/pthm-cable/arcade/scene"
)

// Bounce drops a star from the top-left corner on an interval. Stars
// fall under a constant acceleration, bounce off the floor losing some
// vertical speed, and are removed once they leave past the right edge.
// Bodies move kinematically; no bindings are used.
type Bounce struct {
	ctx       *Context
	sinceDrop float64
}

func (d *Bounce) Name() string  { return "bounce" }
func (d *Bounce) Title() string { return "Bouncing Stars" }

func (d *Bounce) Setup(ctx *Context) error {
	d.ctx = ctx
	// Drop the first star on the first update
	d.sinceDrop = ctx.Cfg.Bounce.SpawnInterval + 1
	return nil
}

func (d *Bounce) HandleKey(KeyEvent) {}

func (d *Bounce) Update(dt float64) {
	cfg := d.ctx.Cfg.Bounce
	s := d.ctx.Scene

	d.sinceDrop += dt
	if d.sinceDrop > cfg.SpawnInterval {
		d.drop()
		d.sinceDrop = 0
	}

	// Walk backwards so removals do not shift unvisited bodies
	for i := s.NumBodies() - 1; i >= 0; i-- {
		b := s.BodyAt(i)
		if b.Centroid().X-cfg.Radius > d.ctx.World.X/2 {
			s.RemoveBodyAt(i)
			continue
		}
		scene.BounceOffWall(b, scene.WallBottom, d.ctx.World, cfg.Elasticity.Vector())
		b.SetRotation(b.Angle() + dt*cfg.Spin)
	}
}

func (d *Bounce) drop() {
	cfg := d.ctx.Cfg.Bounce
	at := geom.Vec(-d.ctx.World.X/2+cfg.Radius, d.ctx.World.Y/2-cfg.Radius)
	points := randInt(d.ctx.RNG, cfg.MinPoints, cfg.MaxPoints)

	b := body.MustNew(geom.Star(points, cfg.Radius, at), body.DefaultMass, randomColor(d.ctx.RNG), components.RoleNone)
	b.SetVelocity(cfg.LaunchVelocity.Vector())
	b.SetAcceleration(geom.Vec(0, cfg.Gravity))
	b.SetElasticity(cfg.Elasticity.Vector())
	d.ctx.Scene.AddBody(b)
}

func (d *Bounce) Kinematic() bool { return true }
func (d *Bounce) Over() bool      { return false }

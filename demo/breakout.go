package demo

import (
	"log/slog"

	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
	"github.com/pthm-cable/arcade/scene"
)

// rainbow colours the brick columns.
var rainbow = []components.Color{
	{R: 1, G: 0, B: 0},
	{R: 1, G: 127.0 / 255, B: 0},
	{R: 1, G: 1, B: 0},
	{R: 0, G: 1, B: 0},
	{R: 0, G: 0, B: 1},
	{R: 39.0 / 255, G: 0, B: 51.0 / 255},
	{R: 139.0 / 255, G: 0, B: 1},
}

// Breakout is a paddle, a ball and rows of bricks. The ball bounces off
// the side and top walls; letting it through the floor rebuilds the bricks.
// The round is over once every brick is gone.
//
// The paddle and bricks have infinite mass. The paddle is moved by hand
// because integration leaves static bodies in place.
type Breakout struct {
	ctx    *Context
	paddle *body.Body
	ball   *body.Body
	bricks []*body.Body

	lost int // Balls that fell through the floor
}

func (d *Breakout) Name() string  { return "breakout" }
func (d *Breakout) Title() string { return "Breakout" }

func (d *Breakout) Setup(ctx *Context) error {
	d.ctx = ctx
	cfg := ctx.Cfg.Breakout
	d.lost = 0

	d.paddle = body.MustNew(
		geom.Rectangle(d.paddleStart(), ctx.Cfg.Derived.BrickWidth, cfg.BlockHeight),
		body.Infinite, components.Red, components.RolePlayer,
	)
	ctx.Scene.AddBody(d.paddle)

	ballAt := geom.Vec(0, -ctx.World.Y/2+cfg.BlockHeight+cfg.BallRadius)
	d.ball = body.MustNew(geom.Oval(ballAt, cfg.BallRadius, cfg.BallRadius), cfg.BallMass, components.Red, cfg.BallRole)
	d.ball.SetVelocity(cfg.BallVelocity.Vector())
	ctx.Scene.AddBody(d.ball)

	ctx.Scene.AddPhysicsCollision(cfg.Elasticity, d.ball, d.paddle)
	d.spawnBricks()
	return nil
}

func (d *Breakout) paddleStart() geom.Vector {
	cfg := d.ctx.Cfg.Breakout
	return geom.Vec(0, -d.ctx.World.Y/2+cfg.Gap+cfg.BlockHeight/2)
}

// spawnBricks lays out the brick grid from the top-left corner and binds a
// physics collision between the ball and each brick. Every brick takes one
// of the configured roles at random.
func (d *Breakout) spawnBricks() {
	cfg := d.ctx.Cfg.Breakout
	width := d.ctx.Cfg.Derived.BrickWidth
	left, top := -d.ctx.World.X/2, d.ctx.World.Y/2

	d.bricks = d.bricks[:0]
	for i := 0; i < cfg.Rows; i++ {
		y := top - cfg.Gap - (cfg.BlockHeight+cfg.Gap)*float64(i) - cfg.BlockHeight/2
		for j := 0; j < cfg.Cols; j++ {
			x := left + cfg.Gap + (width+cfg.Gap)*float64(j) + width/2
			role := cfg.BrickRoles[d.ctx.RNG.Intn(len(cfg.BrickRoles))]
			brick := body.MustNew(geom.Rectangle(geom.Vec(x, y), width, cfg.BlockHeight), body.Infinite, rainbow[j%len(rainbow)], role)
			d.ctx.Scene.AddBody(brick)
			d.ctx.Scene.AddPhysicsCollision(cfg.Elasticity, d.ball, brick)
			d.bricks = append(d.bricks, brick)
		}
	}
}

// HandleKey steers the paddle. It stops on release and refuses to move
// further into a side wall it already crosses.
func (d *Breakout) HandleKey(ev KeyEvent) {
	if ev.Type == KeyReleased {
		d.paddle.SetVelocity(geom.Zero)
		return
	}
	speed := d.ctx.Cfg.Breakout.PaddleSpeed
	wall := scene.WhichWallHit(d.paddle, d.ctx.World, false)
	switch ev.Key {
	case KeyRight:
		if wall != scene.WallRight {
			d.paddle.SetVelocity(geom.Vec(speed, 0))
		}
	case KeyLeft:
		if wall != scene.WallLeft {
			d.paddle.SetVelocity(geom.Vec(-speed, 0))
		}
	}
}

func (d *Breakout) Update(dt float64) {
	d.paddle.Translate(d.paddle.Velocity().Scale(dt))
	if w := scene.WhichWallHit(d.paddle, d.ctx.World, false); w == scene.WallLeft || w == scene.WallRight {
		d.paddle.SetVelocity(geom.Zero)
	}

	walls := geom.Vec(1, 1)
	scene.BounceOffWall(d.ball, scene.WallLeft, d.ctx.World, walls)
	scene.BounceOffWall(d.ball, scene.WallRight, d.ctx.World, walls)
	scene.BounceOffWall(d.ball, scene.WallTop, d.ctx.World, walls)
	if scene.BounceOffWall(d.ball, scene.WallBottom, d.ctx.World, walls) {
		d.resetRound()
	}
}

// resetRound puts the paddle and ball back and replaces every brick.
func (d *Breakout) resetRound() {
	cfg := d.ctx.Cfg.Breakout
	d.lost++
	slog.Info("ball lost", "demo", d.Name(), "lost", d.lost)

	d.paddle.SetCentroid(d.paddleStart())
	d.paddle.SetVelocity(geom.Zero)
	d.ball.SetCentroid(geom.Vec(0, -d.ctx.World.Y/2+10*cfg.Gap+cfg.BlockHeight/2))
	d.ball.SetVelocity(cfg.BallVelocity.Vector())

	for _, b := range d.bricks {
		b.MarkRemoved()
	}
	d.spawnBricks()
}

func (d *Breakout) Kinematic() bool { return false }

// Over reports whether every brick has been knocked out.
func (d *Breakout) Over() bool {
	for _, b := range d.bricks {
		if !b.IsRemoved() {
			return false
		}
	}
	return true
}

// Lost returns how many balls fell through the floor.
func (d *Breakout) Lost() int { return d.lost }

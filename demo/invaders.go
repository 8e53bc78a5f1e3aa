package demo

import (
	"math"

	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
	"github.com/pthm-cable/arcade/scene"
)

var invaderGray = components.Color{R: 0.827, G: 0.827, B: 0.827}

// Invaders is a player ship under rows of invaders sweeping side to side.
// Invaders drop toward the player each time one reaches a side wall. The
// player shoots upward; the invader closest to the player fires back on an
// interval. The round is over when the player is hit, an invader reaches the
// floor, or no invaders are left.
type Invaders struct {
	ctx      *Context
	player   *body.Body
	invaders []*body.Body
	shots    []*body.Body

	sinceFire float64
}

func (d *Invaders) Name() string  { return "invaders" }
func (d *Invaders) Title() string { return "Space Invaders" }

func (d *Invaders) Setup(ctx *Context) error {
	d.ctx = ctx
	cfg := ctx.Cfg.Invaders
	d.invaders = d.invaders[:0]
	d.shots = d.shots[:0]
	d.sinceFire = 0

	d.player = body.MustNew(
		geom.Oval(geom.Vec(0, -ctx.World.Y/2+cfg.PlayerHeight/2), cfg.PlayerWidth, cfg.PlayerHeight),
		cfg.Mass, components.Green, components.RolePlayer,
	)
	ctx.Scene.AddBody(d.player)

	left, top := -ctx.World.X/2, ctx.World.Y/2
	for i := 0; i < cfg.Rows; i++ {
		for j := 0; j < cfg.Cols; j++ {
			at := geom.Vec(
				left+cfg.Radius+2*cfg.Radius*float64(j),
				top-(cfg.Radius+(cfg.Radius+cfg.Gap)*float64(i)),
			)
			inv := body.MustNew(geom.PartialCircle(cfg.Radius, 1, 5, at), cfg.Mass, invaderGray, components.RoleEnemy)
			inv.SetVelocity(geom.Vec(cfg.InvaderSpeed, 0))
			ctx.Scene.AddBody(inv)
			d.invaders = append(d.invaders, inv)
		}
	}
	return nil
}

// HandleKey steers the ship with the arrows and fires on a fresh press of
// space.
func (d *Invaders) HandleKey(ev KeyEvent) {
	if d.player.IsRemoved() {
		return
	}
	if ev.Type == KeyReleased {
		if ev.Key == KeyLeft || ev.Key == KeyRight {
			d.player.SetVelocity(geom.Zero)
		}
		return
	}
	speed := d.ctx.Cfg.Invaders.PlayerSpeed
	wall := scene.WhichWallHit(d.player, d.ctx.World, false)
	switch ev.Key {
	case KeyRight:
		if wall != scene.WallRight {
			d.player.SetVelocity(geom.Vec(speed, 0))
		}
	case KeyLeft:
		if wall != scene.WallLeft {
			d.player.SetVelocity(geom.Vec(-speed, 0))
		}
	case KeySpace:
		if ev.Held == 0 {
			d.playerShoot()
		}
	}
}

func (d *Invaders) Update(dt float64) {
	cfg := d.ctx.Cfg.Invaders

	d.sinceFire += dt
	if d.sinceFire > cfg.FireInterval {
		d.alienShoot()
		d.sinceFire = 0
	}

	// Shots leaving the field vertically
	live := d.shots[:0]
	for _, s := range d.shots {
		if s.IsRemoved() {
			continue
		}
		if math.Abs(s.Centroid().Y) > d.ctx.World.Y/2 {
			s.MarkRemoved()
			continue
		}
		live = append(live, s)
	}
	d.shots = live

	// Invaders reverse at a side wall and drop toward the player
	drop := geom.Vec(0, -(cfg.Radius+cfg.Gap)*float64(cfg.DropRows))
	for _, inv := range d.invaders {
		if inv.IsRemoved() {
			continue
		}
		if scene.BounceOffWall(inv, scene.WallRight, d.ctx.World, geom.Vec(1, 1)) ||
			scene.BounceOffWall(inv, scene.WallLeft, d.ctx.World, geom.Vec(1, 1)) {
			inv.Translate(drop)
		}
	}

	if w := scene.WhichWallHit(d.player, d.ctx.World, false); w == scene.WallLeft || w == scene.WallRight {
		d.player.SetVelocity(geom.Zero)
	}
}

// playerShoot fires from the ship's centroid with a destructive collision
// against every remaining invader.
func (d *Invaders) playerShoot() {
	cfg := d.ctx.Cfg.Invaders
	shot := d.newShot(d.player.Centroid(), components.Green, cfg.PlayerShotRole, cfg.BulletSpeed)
	for _, inv := range d.invaders {
		if !inv.IsRemoved() {
			d.ctx.Scene.AddDestructiveCollision(shot, inv)
		}
	}
}

// alienShoot fires from the invader horizontally closest to the player.
func (d *Invaders) alienShoot() {
	shooter := d.closestInvader()
	if shooter == nil || d.player.IsRemoved() {
		return
	}
	cfg := d.ctx.Cfg.Invaders
	shot := d.newShot(shooter.Centroid(), invaderGray, cfg.AlienShotRole, -cfg.BulletSpeed)
	d.ctx.Scene.AddDestructiveCollision(shot, d.player)
}

func (d *Invaders) newShot(at geom.Vector, col components.Color, role components.Role, vy float64) *body.Body {
	cfg := d.ctx.Cfg.Invaders
	shot := body.MustNew(geom.Oval(at, cfg.BulletWidth, cfg.BulletHeight), body.DefaultMass, col, role)
	shot.SetVelocity(geom.Vec(0, vy))
	d.ctx.Scene.AddBody(shot)
	d.shots = append(d.shots, shot)
	return shot
}

func (d *Invaders) closestInvader() *body.Body {
	var best *body.Body
	bestDist := math.Inf(1)
	px := d.player.Centroid().X
	for _, inv := range d.invaders {
		if inv.IsRemoved() {
			continue
		}
		if dist := math.Abs(inv.Centroid().X - px); dist < bestDist {
			best, bestDist = inv, dist
		}
	}
	return best
}

func (d *Invaders) Kinematic() bool { return false }

func (d *Invaders) Over() bool {
	if d.player.IsRemoved() || d.player.Role() != components.RolePlayer {
		return true
	}
	floor := -d.ctx.World.Y / 2
	remaining := 0
	for _, inv := range d.invaders {
		if inv.IsRemoved() {
			continue
		}
		if inv.Centroid().Y-d.ctx.Cfg.Invaders.Radius < floor {
			return true
		}
		remaining++
	}
	return remaining == 0
}

// Remaining returns the number of invaders still alive.
func (d *Invaders) Remaining() int {
	n := 0
	for _, inv := range d.invaders {
		if !inv.IsRemoved() {
			n++
		}
	}
	return n
}

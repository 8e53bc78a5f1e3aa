package scene

import (
	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/collision"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
)

// CollisionHandler responds to a detected overlap. axis is a unit vector
// pointing from a toward b.
type CollisionHandler func(a, b *body.Body, axis geom.Vector)

// AddCollision binds overlap detection between a and b. While they overlap,
// handler runs once per step unless a is a bullet still inside its debounce
// window.
func (s *Scene) AddCollision(a, b *body.Body, handler CollisionHandler) *Binding {
	if handler == nil {
		panic("scene: nil collision handler")
	}
	debounce := s.opts.Debounce
	return s.AddBinding(KindCollision, func() {
		axis, ok := collision.Detect(a.Vertices(), b.Vertices())
		if !ok {
			a.SetCollidingWith(Handle{})
			b.SetCollidingWith(Handle{})
			return
		}
		if a.Role() == components.RoleBullet && a.TimeSinceLastCollision() < debounce {
			s.stats.Suppressed++
			return
		}
		a.SetCollidingWith(b.Handle())
		b.SetCollidingWith(a.Handle())
		a.ResetCollisionTimer()
		s.stats.Collisions++
		handler(a, b, axis)
	}, a, b)
}

// AddPhysicsCollision binds an impulse-exchanging collision with the given
// elasticity, followed by role side effects.
func (s *Scene) AddPhysicsCollision(elasticity float64, a, b *body.Body) *Binding {
	return s.AddCollision(a, b, PhysicsResponse(elasticity))
}

// AddDestructiveCollision binds a collision that removes bodies by role
// without exchanging momentum.
func (s *Scene) AddDestructiveCollision(a, b *body.Body) *Binding {
	return s.AddCollision(a, b, DestructiveResponse)
}

// PhysicsResponse returns a handler applying equal and opposite impulses
// mu*(1+e)*(u2-u1) along the axis, where mu is the reduced mass and u1, u2 the
// velocity components along the axis. A body with infinite mass contributes
// the other body's mass as the reduced mass.
//
// After the exchange, a RemoveOnCollision body is removed and a
// TurnWhiteOnCollision body turns white and becomes RemoveOnCollision.
func PhysicsResponse(elasticity float64) CollisionHandler {
	return func(a, b *body.Body, axis geom.Vector) {
		u1 := a.Velocity().Project(axis)
		u2 := b.Velocity().Project(axis)
		j := u2.Sub(u1).Scale(reducedMass(a, b) * (1 + elasticity))
		a.AddImpulse(j)
		b.AddImpulse(j.Negate())

		applyHitRole(a)
		applyHitRole(b)
	}
}

func reducedMass(a, b *body.Body) float64 {
	switch {
	case a.IsStatic():
		return b.Mass()
	case b.IsStatic():
		return a.Mass()
	}
	m1, m2 := a.Mass(), b.Mass()
	return m1 * m2 / (m1 + m2)
}

func applyHitRole(b *body.Body) {
	switch b.Role() {
	case components.RoleRemoveOnCollision:
		b.MarkRemoved()
	case components.RoleTurnWhiteOnCollision:
		b.SetColor(components.White)
		b.SetRole(components.RoleRemoveOnCollision)
	}
}

// DestructiveResponse removes bodies by role. Against a player, a
// RemoveOnCollision body is removed and a NeverRemoveOnCollision body removes
// the player instead. Otherwise both bodies are removed except those tagged
// NeverRemoveOnCollision.
func DestructiveResponse(a, b *body.Body, _ geom.Vector) {
	if b.Role() == components.RolePlayer {
		switch a.Role() {
		case components.RoleRemoveOnCollision:
			a.MarkRemoved()
		case components.RoleNeverRemoveOnCollision:
			b.MarkRemoved()
		}
		return
	}
	if a.Role() != components.RoleNeverRemoveOnCollision {
		a.MarkRemoved()
	}
	if b.Role() != components.RoleNeverRemoveOnCollision {
		b.MarkRemoved()
	}
}

// Package body implements polygonal rigid bodies with force and impulse
// accumulation.
package body

import (
	"errors"
	"fmt"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
)

// Construction errors.
var (
	ErrNonPositiveMass = errors.New("mass must be positive")
	ErrTooFewVertices  = geom.ErrTooFewVertices
	ErrDegenerateShape = geom.ErrDegenerateShape
)

// Infinite is the mass of a static body.
var Infinite = math.Inf(1)

// DefaultMass is the mass of bodies whose mass does not matter to a demo.
const DefaultMass = 1.0

// initialTimeSinceCollision keeps a fresh body outside any debounce window.
const initialTimeSinceCollision = 1.0

// Body is a rigid polygon. The zero value is not usable; create bodies with New.
type Body struct {
	shape    geom.Polygon
	centroid geom.Vector // Cached at construction, moved with the shape afterwards
	mass     float64

	velocity     geom.Vector
	acceleration geom.Vector
	elasticity   geom.Vector
	force        geom.Vector // Accumulated since the last Tick
	impulse      geom.Vector // Accumulated since the last Tick
	angle        float64

	color components.Color
	role  components.Role

	removed                bool
	handle                 ecs.Entity // Set by the owning scene
	collidingWith          ecs.Entity // Weak; resolved through the scene
	timeSinceLastCollision float64
}

// New creates a body that takes ownership of shape.
func New(shape geom.Polygon, mass float64, color components.Color, role components.Role) (*Body, error) {
	if math.IsNaN(mass) || mass <= 0 {
		return nil, fmt.Errorf("body: mass %v: %w", mass, ErrNonPositiveMass)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}
	return &Body{
		shape:                  shape,
		centroid:               shape.Centroid(),
		mass:                   mass,
		color:                  color,
		role:                   role,
		timeSinceLastCollision: initialTimeSinceCollision,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(shape geom.Polygon, mass float64, color components.Color, role components.Role) *Body {
	b, err := New(shape, mass, color, role)
	if err != nil {
		panic(err.Error())
	}
	return b
}

// Shape returns a copy of the body's vertices.
func (b *Body) Shape() geom.Polygon { return b.shape.Clone() }

// Vertices returns the body's vertices without copying. Callers must not modify them.
func (b *Body) Vertices() geom.Polygon { return b.shape }

func (b *Body) Centroid() geom.Vector { return b.centroid }
func (b *Body) Mass() float64 { return b.mass }
func (b *Body) Velocity() geom.Vector { return b.velocity }
func (b *Body) Acceleration() geom.Vector { return b.acceleration }
func (b *Body) Elasticity() geom.Vector { return b.elasticity }
func (b *Body) Force() geom.Vector { return b.force }
func (b *Body) Impulse() geom.Vector { return b.impulse }
func (b *Body) Angle() float64 { return b.angle }
func (b *Body) Color() components.Color { return b.color }
func (b *Body) Role() components.Role { return b.role }

// IsStatic reports whether the body has infinite mass.
func (b *Body) IsStatic() bool { return math.IsInf(b.mass, 1) }

func (b *Body) SetVelocity(v geom.Vector) { b.velocity = v }
func (b *Body) SetAcceleration(a geom.Vector) { b.acceleration = a }
func (b *Body) SetElasticity(e geom.Vector) { b.elasticity = e }
func (b *Body) SetColor(c components.Color) { b.color = c }
func (b *Body) SetRole(r components.Role) { b.role = r }

// SetAngle overwrites the stored angle without moving any vertex.
func (b *Body) SetAngle(angle float64) { b.angle = angle }

// SetCentroid moves the body so its centroid lands on c.
func (b *Body) SetCentroid(c geom.Vector) {
	b.shape.Translate(c.Sub(b.centroid))
	b.centroid = c
}

// Translate moves the body by d.
func (b *Body) Translate(d geom.Vector) {
	b.SetCentroid(b.centroid.Add(d))
}

// SetRotation rotates the body about its centroid so its absolute angle
// becomes angle.
func (b *Body) SetRotation(angle float64) {
	b.SetRotationAbout(angle, b.centroid)
}

// SetRotationAbout rotates the body about pivot so its absolute angle becomes
// angle. It does nothing when the angle is unchanged.
func (b *Body) SetRotationAbout(angle float64, pivot geom.Vector) {
	diff := angle - b.angle
	if diff == 0 {
		return
	}
	b.shape.Rotate(diff, pivot)
	if b.centroid != pivot {
		b.centroid = b.centroid.RotateAbout(diff, pivot)
	}
	b.angle = angle
}

// AddForce adds f to the force accumulator.
func (b *Body) AddForce(f geom.Vector) { b.force = b.force.Add(f) }

// AddImpulse adds j to the impulse accumulator.
func (b *Body) AddImpulse(j geom.Vector) { b.impulse = b.impulse.Add(j) }

// Tick integrates accumulated forces and impulses over dt and clears the
// accumulators. Position advances by the average of the old and new velocity.
// Static bodies only advance their collision timer.
func (b *Body) Tick(dt float64) {
	b.timeSinceLastCollision += dt
	if b.IsStatic() {
		return
	}

	total := b.impulse.Add(b.force.Scale(dt))
	start := b.velocity
	end := start.Add(total.Scale(1 / b.mass))
	b.acceleration = b.force.Scale(1 / b.mass)

	b.Translate(start.Add(end).Scale(0.5 * dt))
	b.velocity = end

	b.force = geom.Zero
	b.impulse = geom.Zero
	b.rotateWithVelocity()
}

// TickKinematic advances the body under its own velocity and acceleration,
// ignoring the accumulators.
func (b *Body) TickKinematic(dt float64) {
	b.Translate(b.velocity.Scale(dt).Add(b.acceleration.Scale(0.5 * dt * dt)))
	b.velocity = b.velocity.Add(b.acceleration.Scale(dt))
	b.rotateWithVelocity()
}

// rotateWithVelocity aligns the body with its direction of travel.
func (b *Body) rotateWithVelocity() {
	if b.velocity.IsZero() {
		return
	}
	b.SetRotation(b.velocity.Angle())
}

// MarkRemoved flags the body for removal at the end of the current step.
func (b *Body) MarkRemoved() { b.removed = true }

// IsRemoved reports whether the body has been flagged for removal.
func (b *Body) IsRemoved() bool { return b.removed }

// Handle returns the entity assigned by the owning scene, or the zero entity.
func (b *Body) Handle() ecs.Entity { return b.handle }

// SetHandle records the entity assigned by the owning scene.
func (b *Body) SetHandle(e ecs.Entity) { b.handle = e }

// CollidingWith returns the weak handle of the last body this one touched.
// Resolve it through the scene; it goes stale once that body is removed.
func (b *Body) CollidingWith() ecs.Entity { return b.collidingWith }

// SetCollidingWith records the handle of the body currently in contact.
func (b *Body) SetCollidingWith(e ecs.Entity) { b.collidingWith = e }

// TimeSinceLastCollision returns the seconds of Tick time since the last
// detected collision.
func (b *Body) TimeSinceLastCollision() float64 { return b.timeSinceLastCollision }

// ResetCollisionTimer records a collision at the current time.
func (b *Body) ResetCollisionTimer() { b.timeSinceLastCollision = 0 }

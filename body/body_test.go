package body

import (
	"errors"
	"math"
	"testing"

	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
)

func square(center geom.Vector) geom.Polygon {
	return geom.Rectangle(center, 2, 2)
}

func TestNewRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		shape geom.Polygon
		mass  float64
		want  error
	}{
		{"zero mass", square(geom.Zero), 0, ErrNonPositiveMass},
		{"negative mass", square(geom.Zero), -1, ErrNonPositiveMass},
		{"nan mass", square(geom.Zero), math.NaN(), ErrNonPositiveMass},
		{"two vertices", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1, ErrTooFewVertices},
		{"no area", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, 1, ErrDegenerateShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.shape, tt.mass, components.White, components.RoleNone)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			if b != nil {
				t.Error("expected nil body on error")
			}
		})
	}
}

func TestNewInitialState(t *testing.T) {
	b := MustNew(square(geom.Vec(3, 4)), math.Inf(1), components.Red, components.RolePlayer)
	if !b.IsStatic() {
		t.Error("infinite mass body should be static")
	}
	if b.Centroid() != geom.Vec(3, 4) {
		t.Errorf("centroid = %v, want (3, 4)", b.Centroid())
	}
	if b.TimeSinceLastCollision() != 1 {
		t.Errorf("time since last collision = %v, want 1", b.TimeSinceLastCollision())
	}
	if b.Role() != components.RolePlayer || b.Color() != components.Red {
		t.Errorf("role/color = %v/%v", b.Role(), b.Color())
	}
	if !b.Handle().IsZero() || !b.CollidingWith().IsZero() {
		t.Error("new body should not carry entity handles")
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustNew(square(geom.Zero), 0, components.White, components.RoleNone)
}

func TestShapeReturnsCopy(t *testing.T) {
	b := MustNew(square(geom.Zero), 1, components.White, components.RoleNone)
	s := b.Shape()
	s.Translate(geom.Vec(10, 10))
	if c := b.Shape().Centroid(); !c.IsClose(geom.Zero, 1e-12) {
		t.Errorf("mutating Shape() moved the body to %v", c)
	}
}

func TestTick(t *testing.T) {
	b := MustNew(square(geom.Zero), 2, components.White, components.RoleNone)
	b.AddForce(geom.Vec(3, 0))
	b.AddForce(geom.Vec(1, 0))
	b.Tick(0.5)

	if !b.Velocity().IsClose(geom.Vec(1, 0), 1e-12) {
		t.Errorf("velocity = %v, want (1, 0)", b.Velocity())
	}
	if !b.Acceleration().IsClose(geom.Vec(2, 0), 1e-12) {
		t.Errorf("acceleration = %v, want (2, 0)", b.Acceleration())
	}
	// Trapezoidal: 0.5 * (0 + 1) * 0.5.
	if !b.Centroid().IsClose(geom.Vec(0.25, 0), 1e-12) {
		t.Errorf("centroid = %v, want (0.25, 0)", b.Centroid())
	}
	if !b.Force().IsZero() || !b.Impulse().IsZero() {
		t.Errorf("accumulators not reset: force %v impulse %v", b.Force(), b.Impulse())
	}
	if b.TimeSinceLastCollision() != 1.5 {
		t.Errorf("time since last collision = %v, want 1.5", b.TimeSinceLastCollision())
	}
}

func TestTickImpulse(t *testing.T) {
	b := MustNew(square(geom.Zero), 4, components.White, components.RoleNone)
	b.AddImpulse(geom.Vec(0, 8))
	b.Tick(1)

	if !b.Velocity().IsClose(geom.Vec(0, 2), 1e-12) {
		t.Errorf("velocity = %v, want (0, 2)", b.Velocity())
	}
	if !b.Centroid().IsClose(geom.Vec(0, 1), 1e-12) {
		t.Errorf("centroid = %v, want (0, 1)", b.Centroid())
	}
	if math.Abs(b.Angle()-math.Pi/2) > 1e-12 {
		t.Errorf("angle = %v, want pi/2", b.Angle())
	}
}

func TestTickStatic(t *testing.T) {
	b := MustNew(square(geom.Zero), math.Inf(1), components.White, components.RoleNone)
	b.SetVelocity(geom.Vec(5, 5))
	b.AddForce(geom.Vec(100, 0))
	b.Tick(0.25)

	if b.Centroid() != geom.Zero {
		t.Errorf("static body moved to %v", b.Centroid())
	}
	if b.TimeSinceLastCollision() != 1.25 {
		t.Errorf("time since last collision = %v, want 1.25", b.TimeSinceLastCollision())
	}
}

func TestTickKinematic(t *testing.T) {
	b := MustNew(square(geom.Zero), 1, components.White, components.RoleNone)
	b.SetAcceleration(geom.Vec(0, -10))
	b.AddForce(geom.Vec(7, 7))
	b.TickKinematic(1)

	if !b.Centroid().IsClose(geom.Vec(0, -5), 1e-12) {
		t.Errorf("centroid = %v, want (0, -5)", b.Centroid())
	}
	if !b.Velocity().IsClose(geom.Vec(0, -10), 1e-12) {
		t.Errorf("velocity = %v, want (0, -10)", b.Velocity())
	}
	if math.Abs(b.Angle()+math.Pi/2) > 1e-12 {
		t.Errorf("angle = %v, want -pi/2", b.Angle())
	}
	if b.Force() != geom.Vec(7, 7) {
		t.Errorf("kinematic tick touched the force accumulator: %v", b.Force())
	}
	if b.TimeSinceLastCollision() != 1 {
		t.Errorf("kinematic tick advanced the collision timer: %v", b.TimeSinceLastCollision())
	}
}

func TestTickZeroVelocityKeepsAngle(t *testing.T) {
	b := MustNew(square(geom.Zero), 1, components.White, components.RoleNone)
	b.SetRotation(0.3)
	b.Tick(1)
	if b.Angle() != 0.3 {
		t.Errorf("angle = %v, want 0.3", b.Angle())
	}
}

func TestSetRotationAbout(t *testing.T) {
	b := MustNew(square(geom.Vec(2, 0)), 1, components.White, components.RoleNone)
	before := b.Shape()

	b.SetRotationAbout(0, geom.Zero)
	for i, v := range b.Vertices() {
		if v != before[i] {
			t.Fatalf("rotation to the current angle moved vertex %d", i)
		}
	}

	b.SetRotationAbout(math.Pi, geom.Zero)
	if !b.Centroid().IsClose(geom.Vec(-2, 0), 1e-12) {
		t.Errorf("centroid = %v, want (-2, 0)", b.Centroid())
	}
	if b.Angle() != math.Pi {
		t.Errorf("angle = %v, want pi", b.Angle())
	}
}

func TestCentroidConsistency(t *testing.T) {
	shapes := map[string]geom.Polygon{
		"triangle": {{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}},
		"star":     geom.Star(5, 20, geom.Vec(-3, 8)),
		"oval":     geom.Oval(geom.Vec(10, 10), 30, 12),
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			b := MustNew(shape, 1, components.White, components.RoleNone)
			b.SetCentroid(geom.Vec(100, -50))
			b.Translate(geom.Vec(-3.5, 2.25))
			b.SetRotation(1.1)
			b.Translate(geom.Vec(0.1, 0.1))
			b.SetRotationAbout(-0.4, geom.Vec(7, 7))
			b.SetCentroid(geom.Vec(1, 2))
			b.SetRotationAbout(2.5, geom.Zero)

			want := b.Shape().Centroid()
			if !b.Centroid().IsClose(want, 1e-9) {
				t.Errorf("cached centroid %v differs from recomputed %v", b.Centroid(), want)
			}
		})
	}
}

func TestMarkRemovedIdempotent(t *testing.T) {
	b := MustNew(square(geom.Zero), 1, components.White, components.RoleNone)
	if b.IsRemoved() {
		t.Fatal("new body is removed")
	}
	b.MarkRemoved()
	b.MarkRemoved()
	if !b.IsRemoved() {
		t.Error("body not removed after MarkRemoved")
	}
}

package scene

import (
	"math"
	"testing"

	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
)

const longRunSteps = 1_000_000

func newSquare(t *testing.T, mass float64, center geom.Vector) *body.Body {
	t.Helper()
	b, err := body.New(geom.Rectangle(center, 2, 2), mass, components.Black, components.RoleNone)
	if err != nil {
		t.Fatalf("body.New: %v", err)
	}
	return b
}

func gravityPotential(g float64, a, b *body.Body) float64 {
	r := b.Centroid().Sub(a.Centroid())
	return -g * a.Mass() * b.Mass() / r.Magnitude()
}

func kineticEnergy(b *body.Body) float64 {
	v := b.Velocity()
	return b.Mass() * v.Dot(v) / 2
}

func skipLong(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping long integration run in short mode")
	}
}

// A mass on a spring anchored to a static body follows A*cos(sqrt(k/m)*t).
func TestSpringSinusoid(t *testing.T) {
	skipLong(t)
	const (
		m  = 10.0
		k  = 2.0
		a  = 3.0
		dt = 1e-6
	)
	s := New(DefaultOptions())
	mass := newSquare(t, m, geom.Vec(a, 0))
	anchor := newSquare(t, math.Inf(1), geom.Zero)
	s.AddBody(mass)
	s.AddBody(anchor)
	s.AddSpring(k, mass, anchor)

	omega := math.Sqrt(k / m)
	for i := 0; i < longRunSteps; i++ {
		want := geom.Vec(a*math.Cos(omega*float64(i)*dt), 0)
		if got := mass.Centroid(); !got.IsClose(want, 1e-5) {
			t.Fatalf("step %d: centroid = %v, want %v", i, got, want)
		}
		s.Step(dt)
	}
}

// Gravity alone conserves kinetic plus potential energy.
func TestGravityEnergyConservation(t *testing.T) {
	skipLong(t)
	const (
		m1 = 4.5
		m2 = 7.3
		g  = 1e3
		dt = 1e-6
	)
	s := New(DefaultOptions())
	b1 := newSquare(t, m1, geom.Zero)
	b2 := newSquare(t, m2, geom.Vec(10, 20))
	s.AddBody(b1)
	s.AddBody(b2)
	s.AddGravity(g, b1, b2)

	initial := gravityPotential(g, b1, b2)
	for i := 0; i < longRunSteps; i++ {
		if b1.Centroid().X >= b2.Centroid().X {
			t.Fatalf("step %d: bodies crossed", i)
		}
		energy := gravityPotential(g, b1, b2) + kineticEnergy(b1) + kineticEnergy(b2)
		if math.Abs(energy/initial-1) > 1e-5 {
			t.Fatalf("step %d: energy ratio %v drifted beyond 1e-5", i, energy/initial)
		}
		s.Step(dt)
	}
}

// With drag on one body, each step's energy loss matches the work done by drag.
func TestGravityEnergyWithDrag(t *testing.T) {
	skipLong(t)
	const (
		m1  = 4.5
		m2  = 7.3
		g   = 1e3
		dt  = 1e-6
		tau = 0.4
	)
	s := New(DefaultOptions())
	b1 := newSquare(t, m1, geom.Zero)
	b2 := newSquare(t, m2, geom.Vec(10, 20))
	s.AddBody(b1)
	s.AddBody(b2)
	s.AddGravity(g, b1, b2)
	s.AddDrag(tau, b1)

	lastEnergy := gravityPotential(g, b1, b2)
	lastCentroid := b1.Centroid()
	for i := 0; i < longRunSteps; i++ {
		s.Step(dt)
		c := b1.Centroid()
		work := b1.Velocity().Magnitude() * tau * c.Distance(lastCentroid)
		energy := gravityPotential(g, b1, b2) + kineticEnergy(b1) + kineticEnergy(b2)
		if diff := (lastEnergy - energy) - work; math.Abs(diff) > 1e-4 {
			t.Fatalf("step %d: energy loss differs from drag work by %v", i, diff)
		}
		lastEnergy = energy
		lastCentroid = c
	}
}

// Two bodies released from rest fall together, pass through each other once
// inside the closeness radius, then fly apart.
func TestNewtonianGravityApproachThenSeparate(t *testing.T) {
	skipLong(t)
	const (
		dt     = 1e-6
		steps1 = 1_000_000
		steps2 = 1_500_000
		steps3 = 2_000_000
	)
	s := New(DefaultOptions())
	b1 := newSquare(t, 4.5, geom.Zero)
	b2 := newSquare(t, 7.3, geom.Vec(10, 20))
	s.AddBody(b1)
	s.AddBody(b2)
	s.AddGravity(1e3, b1, b2)

	last := b1.Centroid().Distance(b2.Centroid())
	i := 0
	for ; i < steps1; i++ {
		s.Step(dt)
		d := b1.Centroid().Distance(b2.Centroid())
		if d >= last {
			t.Fatalf("step %d: distance %v did not decrease from %v", i, d, last)
		}
		last = d
	}
	for ; i < steps2; i++ {
		s.Step(dt)
	}
	last = b1.Centroid().Distance(b2.Centroid())
	for ; i < steps3; i++ {
		s.Step(dt)
		d := b1.Centroid().Distance(b2.Centroid())
		if d <= last {
			t.Fatalf("step %d: distance %v did not increase from %v", i, d, last)
		}
		last = d
	}
}

func TestDragDecay(t *testing.T) {
	tests := []struct {
		name  string
		gamma float64
		steps int
		long  bool
	}{
		{"nonzero drag", 0.4, 10_000, false},
		{"zero drag", 0, 10_000, false},
		{"nonzero drag long run", 0.4, longRunSteps, true},
		{"zero drag long run", 0, longRunSteps, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.long {
				skipLong(t)
			}
			s := New(DefaultOptions())
			b := newSquare(t, 10, geom.Vec(3, 0))
			b.SetVelocity(geom.Vec(10, 50))
			s.AddBody(b)
			s.AddDrag(tt.gamma, b)

			last := kineticEnergy(b)
			for i := 0; i < tt.steps; i++ {
				s.Step(1e-6)
				e := kineticEnergy(b)
				if tt.gamma == 0 && e != last {
					t.Fatalf("step %d: energy changed from %v to %v without drag", i, last, e)
				}
				if tt.gamma > 0 && e >= last {
					t.Fatalf("step %d: energy %v did not decrease from %v", i, e, last)
				}
				last = e
			}
		})
	}
}

func TestGravitySkippedWhenTooClose(t *testing.T) {
	s := New(DefaultOptions())
	a := newSquare(t, 1, geom.Zero)
	b := newSquare(t, 1, geom.Vec(5, 0))
	s.AddBody(a)
	s.AddBody(b)
	s.AddGravity(1e3, a, b)

	s.Step(0.01)
	if !a.Velocity().IsZero() || !b.Velocity().IsZero() {
		t.Errorf("bodies inside the closeness radius moved: %v, %v", a.Velocity(), b.Velocity())
	}

	wide := New(Options{Closeness: 4})
	c := newSquare(t, 1, geom.Zero)
	d := newSquare(t, 1, geom.Vec(5, 0))
	wide.AddBody(c)
	wide.AddBody(d)
	wide.AddGravity(1e3, c, d)
	wide.Step(0.01)
	if c.Velocity().X <= 0 || d.Velocity().X >= 0 {
		t.Errorf("expected attraction with a smaller closeness, got %v, %v", c.Velocity(), d.Velocity())
	}
}

func TestSpringIsAttractive(t *testing.T) {
	s := New(DefaultOptions())
	a := newSquare(t, 2, geom.Vec(-4, 0))
	b := newSquare(t, 2, geom.Vec(4, 0))
	s.AddBody(a)
	s.AddBody(b)
	s.AddSpring(3, a, b)
	s.Step(0.1)

	// F = k*r = 24, a = 12, v = 1.2.
	if !a.Velocity().IsClose(geom.Vec(1.2, 0), 1e-12) {
		t.Errorf("a velocity = %v, want (1.2, 0)", a.Velocity())
	}
	if !b.Velocity().IsClose(geom.Vec(-1.2, 0), 1e-12) {
		t.Errorf("b velocity = %v, want (-1.2, 0)", b.Velocity())
	}
}

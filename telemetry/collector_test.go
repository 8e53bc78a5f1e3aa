package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
	"github.com/pthm-cable/arcade/scene"
)

func newBox(t *testing.T, mass float64, center geom.Vector) *body.Body {
	t.Helper()
	b, err := body.New(geom.Rectangle(center, 1, 1), mass, components.White, components.RoleNone)
	if err != nil {
		t.Fatalf("body.New: %v", err)
	}
	return b
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1.0, 0.1)
	if c.WindowDurationTicks() != 10 {
		t.Fatalf("WindowDurationTicks = %d, want 10", c.WindowDurationTicks())
	}
	if c.ShouldFlush(9) || !c.ShouldFlush(10) {
		t.Error("flush boundary should be at tick 10")
	}

	if got := NewCollector(0.01, 0.1).WindowDurationTicks(); got != 1 {
		t.Errorf("short window = %d ticks, want 1", got)
	}
}

func TestCollectorFlush(t *testing.T) {
	s := scene.New(scene.DefaultOptions())
	fast := newBox(t, 2, geom.Zero)
	fast.SetVelocity(geom.Vec(3, 4))
	still := newBox(t, 2, geom.Vec(10, 0))
	wall := newBox(t, body.Infinite, geom.Vec(-10, 0))
	wall.SetVelocity(geom.Vec(100, 0))
	s.AddBody(fast)
	s.AddBody(still)
	s.AddBody(wall)

	c := NewCollector(1.0, 0.1)
	c.Reset(0, s)
	for i := 0; i < 10; i++ {
		s.StepKinematic(0.1)
	}
	stats := c.Flush(10, -1, s)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 10 {
		t.Errorf("window = [%d, %d]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 1e-12 {
		t.Errorf("sim time = %v, want 1", stats.SimTimeSec)
	}
	if stats.Bodies != 3 || stats.Moving != 2 || stats.Steps != 10 {
		t.Errorf("bodies %d moving %d steps %d", stats.Bodies, stats.Moving, stats.Steps)
	}
	// Static bodies carry no kinetic energy
	if stats.KineticTotal != 25 || stats.KineticMean != 12.5 {
		t.Errorf("kinetic total %v mean %v, want 25 and 12.5", stats.KineticTotal, stats.KineticMean)
	}
	if stats.SpeedMean != 2.5 || math.Abs(stats.SpeedStd-math.Sqrt(12.5)) > 1e-12 {
		t.Errorf("speed mean %v std %v", stats.SpeedMean, stats.SpeedStd)
	}

	// Second window only counts what happened since the first flush
	still.MarkRemoved()
	s.Step(0.1)
	stats = c.Flush(11, 1.1, s)
	if stats.WindowStartTick != 10 || stats.Steps != 1 || stats.BodiesRemoved != 1 {
		t.Errorf("second window = %+v", stats)
	}
	if stats.SimTimeSec != 1.1 {
		t.Errorf("explicit sim time not used: %v", stats.SimTimeSec)
	}
}

func TestCollectorResetAgainstNewScene(t *testing.T) {
	old := scene.New(scene.DefaultOptions())
	old.AddBody(newBox(t, 1, geom.Zero))
	for i := 0; i < 5; i++ {
		old.Step(0.1)
	}
	c := NewCollector(1.0, 0.1)
	c.Flush(5, -1, old)

	fresh := scene.New(scene.DefaultOptions())
	c.Reset(5, fresh)
	fresh.Step(0.1)
	if stats := c.Flush(6, -1, fresh); stats.Steps != 1 {
		t.Errorf("steps = %d, want 1", stats.Steps)
	}
}

func TestEnergyHelpers(t *testing.T) {
	a := newBox(t, 2, geom.Zero)
	b := newBox(t, 3, geom.Vec(4, 0))
	a.SetVelocity(geom.Vec(1, 1))
	b.SetVelocity(geom.Vec(0, 2))

	if got := KineticEnergy(a); got != 2 {
		t.Errorf("KineticEnergy(a) = %v, want 2", got)
	}
	if got := TotalKinetic([]*body.Body{a, b}); got != 8 {
		t.Errorf("TotalKinetic = %v, want 8", got)
	}
	if got := GravityPotential(10, a, b); math.Abs(got+15) > 1e-9 {
		t.Errorf("GravityPotential = %v, want -15", got)
	}
	if got := GravityPotential(10, a, a); got != 0 {
		t.Errorf("coincident potential = %v, want 0", got)
	}
}

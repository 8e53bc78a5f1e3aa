package telemetry

import "github.com/pthm-cable/arcade/scene"

// Collector accumulates scene counters within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Scene counters at the start of the window
	last scene.Stats
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec/dt + 0.5)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// Reset starts a new window at currentTick against a fresh scene, so counters
// of a replaced scene do not produce negative deltas.
func (c *Collector) Reset(currentTick int32, s *scene.Scene) {
	c.windowStartTick = currentTick
	c.last = s.Stats()
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the scene's counter deltas since the last
// flush and a sample of its finite-mass bodies. simTime is the elapsed
// simulated time; pass a negative value to derive it from the tick count.
func (c *Collector) Flush(currentTick int32, simTime float64, s *scene.Scene) WindowStats {
	if simTime < 0 {
		simTime = float64(currentTick) * c.dt
	}
	now := s.Stats()

	var speeds []float64
	var kinetic float64
	for _, b := range s.Bodies() {
		if b.IsStatic() {
			continue
		}
		speeds = append(speeds, b.Velocity().Magnitude())
		kinetic += KineticEnergy(b)
	}
	speedMean, speedStd, p10, p50, p90 := ComputeSpeedStats(speeds)

	var kineticMean float64
	if len(speeds) > 0 {
		kineticMean = kinetic / float64(len(speeds))
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      simTime,

		Bodies:   s.NumBodies(),
		Bindings: s.NumBindings(),

		Steps:          now.Steps - c.last.Steps,
		BodiesAdded:    now.BodiesAdded - c.last.BodiesAdded,
		BodiesRemoved:  now.BodiesRemoved - c.last.BodiesRemoved,
		BindingsPruned: now.BindingsPruned - c.last.BindingsPruned,
		Collisions:     now.Collisions - c.last.Collisions,
		Suppressed:     now.Suppressed - c.last.Suppressed,

		Moving:       len(speeds),
		KineticTotal: kinetic,
		KineticMean:  kineticMean,
		SpeedMean:    speedMean,
		SpeedStd:     speedStd,
		SpeedP10:     p10,
		SpeedP50:     p50,
		SpeedP90:     p90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.last = now

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/config"
	"github.com/pthm-cable/arcade/geom"
	"github.com/pthm-cable/arcade/scene"
)

// Targets are the behaviours the tuned parameters should produce.
type Targets struct {
	Period   float64 `yaml:"period"`    // Seconds per oscillation of a spring pair
	HalfLife float64 `yaml:"half_life"` // Seconds for drag to halve kinetic energy
}

// Measurement is what a parameter set actually produced.
type Measurement struct {
	Period   float64 `yaml:"period"`
	HalfLife float64 `yaml:"half_life"`
}

// penalty stands in for a measurement that never completed.
const penalty = 1e6

// FitnessEvaluator runs the kernel headless and scores parameter sets.
type FitnessEvaluator struct {
	params     *ParamVector
	targets    Targets
	baseConfig *config.Config
	horizon    float64 // Simulated seconds per measurement

	mu   sync.Mutex
	last Measurement
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, targets Targets, horizon float64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		targets:    targets,
		baseConfig: baseCfg,
		horizon:    horizon,
	}
}

// LastMeasurement returns what the most recent Evaluate call measured.
func (fe *FitnessEvaluator) LastMeasurement() Measurement {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Evaluate computes fitness for raw parameter values (lower = better): the
// sum of squared relative errors against the targets.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// The two measurements use separate scenes
	var m Measurement
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		m.Period = MeasurePeriod(cfg, fe.horizon)
	}()
	go func() {
		defer wg.Done()
		m.HalfLife = MeasureHalfLife(cfg, fe.horizon)
	}()
	wg.Wait()

	fe.mu.Lock()
	fe.last = m
	fe.mu.Unlock()

	return relErr2(m.Period, fe.targets.Period) + relErr2(m.HalfLife, fe.targets.HalfLife)
}

func relErr2(got, want float64) float64 {
	if math.IsInf(got, 0) || math.IsNaN(got) {
		return penalty
	}
	e := (got - want) / want
	return e * e
}

// copyConfig creates a copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

func newScene(cfg *config.Config) *scene.Scene {
	return scene.New(scene.Options{Closeness: cfg.Physics.Closeness, Debounce: cfg.Physics.Debounce})
}

// MeasurePeriod releases a springs pair from rest and times its oscillation
// from the crossings of the pair's separation through zero. It returns +Inf
// when fewer than two crossings happen within horizon seconds.
func MeasurePeriod(cfg *config.Config, horizon float64) float64 {
	s := newScene(cfg)
	sep := cfg.Derived.WorldSize.Y
	if sep <= 0 {
		sep = 100
	}
	a := body.MustNew(geom.Circle(geom.Vec(0, sep/2), cfg.Springs.Radius), cfg.Springs.Mass, components.White, components.RoleNone)
	b := body.MustNew(geom.Circle(geom.Vec(0, -sep/2), cfg.Springs.Radius), cfg.Springs.Mass, components.White, components.RoleNone)
	s.AddBody(a)
	s.AddBody(b)
	s.AddSpring(cfg.Springs.K, a, b)

	dt := cfg.Physics.DT
	var crossings []float64
	prev := a.Centroid().Y - b.Centroid().Y
	for t := 0.0; t < horizon; t += dt {
		s.Step(dt)
		d := a.Centroid().Y - b.Centroid().Y
		if (prev > 0) != (d > 0) {
			// Interpolate the crossing inside the step
			crossings = append(crossings, t+dt*prev/(prev-d))
		}
		prev = d
	}
	if len(crossings) < 2 {
		return math.Inf(1)
	}
	// Crossings are half a period apart
	n := float64(len(crossings) - 1)
	return 2 * (crossings[len(crossings)-1] - crossings[0]) / n
}

// MeasureHalfLife launches a body under drag alone and times how long its
// kinetic energy takes to halve. It returns +Inf when that takes longer than
// horizon seconds.
func MeasureHalfLife(cfg *config.Config, horizon float64) float64 {
	s := newScene(cfg)
	b := body.MustNew(geom.Circle(geom.Zero, cfg.Springs.Radius), cfg.Springs.Mass, components.White, components.RoleNone)
	b.SetVelocity(geom.Vec(100, 0))
	s.AddBody(b)
	s.AddDrag(cfg.Springs.Drag, b)

	dt := cfg.Physics.DT
	ke := func() float64 { return 0.5 * b.Mass() * b.Velocity().Dot(b.Velocity()) }
	half := ke() / 2
	prev := ke()
	for t := 0.0; t < horizon; t += dt {
		s.Step(dt)
		cur := ke()
		if cur <= half {
			return t + dt*(prev-half)/(prev-cur)
		}
		prev = cur
	}
	return math.Inf(1)
}

// AnalyticK returns the spring constant giving period for two equal masses.
// The pair oscillates about its centre with omega^2 = 2k/m.
func AnalyticK(mass, period float64) float64 {
	w := 2 * math.Pi / period
	return mass * w * w / 2
}

// AnalyticDrag returns the drag coefficient halving kinetic energy in
// halfLife for the given mass. Energy decays as exp(-2*gamma*t/m).
func AnalyticDrag(mass, halfLife float64) float64 {
	return mass * math.Ln2 / (2 * halfLife)
}

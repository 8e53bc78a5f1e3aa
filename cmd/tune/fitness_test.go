package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/arcade/config"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cfg
}

func TestMeasurePeriodMatchesAnalytic(t *testing.T) {
	tests := []struct {
		k, mass float64
	}{
		{2, 1},
		{8, 1},
		{2, 4},
	}
	for _, tt := range tests {
		cfg := loadConfig(t)
		cfg.Springs.K, cfg.Springs.Mass = tt.k, tt.mass
		want := 2 * math.Pi / math.Sqrt(2*tt.k/tt.mass)

		got := MeasurePeriod(cfg, 30)
		if math.Abs(got-want)/want > 0.01 {
			t.Errorf("k=%v m=%v: period = %v, want %v", tt.k, tt.mass, got, want)
		}
	}
}

func TestMeasureHalfLifeMatchesAnalytic(t *testing.T) {
	tests := []struct {
		drag, mass float64
	}{
		{0.3, 1},
		{1, 1},
		{0.3, 2},
	}
	for _, tt := range tests {
		cfg := loadConfig(t)
		cfg.Springs.Drag, cfg.Springs.Mass = tt.drag, tt.mass
		want := tt.mass * math.Ln2 / (2 * tt.drag)

		got := MeasureHalfLife(cfg, 30)
		if math.Abs(got-want)/want > 0.02 {
			t.Errorf("drag=%v m=%v: half-life = %v, want %v", tt.drag, tt.mass, got, want)
		}
	}
}

func TestMeasurementsPastHorizon(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Springs.K = 0.01
	cfg.Springs.Drag = 0.001
	if p := MeasurePeriod(cfg, 1); !math.IsInf(p, 1) {
		t.Errorf("period = %v, want +Inf", p)
	}
	if h := MeasureHalfLife(cfg, 1); !math.IsInf(h, 1) {
		t.Errorf("half-life = %v, want +Inf", h)
	}
}

func TestEvaluatePrefersAnalyticSolution(t *testing.T) {
	cfg := loadConfig(t)
	params := NewParamVector()
	targets := Targets{Period: 2, HalfLife: 1}
	fe := NewFitnessEvaluator(params, targets, 20, cfg)

	mass := cfg.Springs.Mass
	best := fe.Evaluate([]float64{AnalyticK(mass, targets.Period), AnalyticDrag(mass, targets.HalfLife)})
	if best > 1e-3 {
		t.Errorf("fitness at analytic solution = %v", best)
	}
	m := fe.LastMeasurement()
	if math.Abs(m.Period-2) > 0.02 || math.Abs(m.HalfLife-1) > 0.02 {
		t.Errorf("measured %+v", m)
	}

	worse := fe.Evaluate([]float64{AnalyticK(mass, targets.Period) * 4, AnalyticDrag(mass, targets.HalfLife) / 4})
	if worse <= best {
		t.Errorf("fitness off target %v not worse than %v", worse, best)
	}
	if cfg.Springs.K != loadConfig(t).Springs.K {
		t.Error("Evaluate modified the base config")
	}
}

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := []float64{2, 0.3}
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}

	clamped := pv.Clamp([]float64{-1, 1e9})
	if clamped[0] != pv.Specs[0].Min || clamped[1] != pv.Specs[1].Max {
		t.Errorf("Clamp = %v", clamped)
	}

	cfg := loadConfig(t)
	pv.ApplyToConfig(cfg, []float64{5, 0.5})
	if got := pv.ExtractFromConfig(cfg); got[0] != 5 || got[1] != 0.5 {
		t.Errorf("ExtractFromConfig = %v", got)
	}
}

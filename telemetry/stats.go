package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"window_start"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Scene size at window end
	Bodies   int `csv:"bodies"`
	Bindings int `csv:"bindings"`

	// Scene counters accumulated over the window
	Steps          int64 `csv:"steps"`
	BodiesAdded    int64 `csv:"bodies_added"`
	BodiesRemoved  int64 `csv:"bodies_removed"`
	BindingsPruned int64 `csv:"bindings_pruned"`
	Collisions     int64 `csv:"collisions"`
	Suppressed     int64 `csv:"suppressed"`

	// Finite-mass bodies sampled at window end
	Moving       int     `csv:"moving"`
	KineticTotal float64 `csv:"kinetic_total"`
	KineticMean  float64 `csv:"kinetic_mean"`
	SpeedMean    float64 `csv:"speed_mean"`
	SpeedStd     float64 `csv:"speed_std"`
	SpeedP10     float64 `csv:"speed_p10"`
	SpeedP50     float64 `csv:"speed_p50"`
	SpeedP90     float64 `csv:"speed_p90"`
}

// Percentile calculates the p-th percentile from a sorted slice.
// p should be in [0, 1].
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSpeedStats calculates mean, standard deviation and percentiles.
// The standard deviation is the unbiased sample estimate; it is zero for
// fewer than two values.
func ComputeSpeedStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}
	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("bodies", s.Bodies),
		slog.Int("bindings", s.Bindings),
		slog.Int64("steps", s.Steps),
		slog.Int64("bodies_added", s.BodiesAdded),
		slog.Int64("bodies_removed", s.BodiesRemoved),
		slog.Int64("bindings_pruned", s.BindingsPruned),
		slog.Int64("collisions", s.Collisions),
		slog.Int64("suppressed", s.Suppressed),
		slog.Int("moving", s.Moving),
		slog.Float64("kinetic_total", s.KineticTotal),
		slog.Float64("kinetic_mean", s.KineticMean),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"bodies", s.Bodies,
		"bindings", s.Bindings,
		"steps", s.Steps,
		"bodies_removed", s.BodiesRemoved,
		"bindings_pruned", s.BindingsPruned,
		"collisions", s.Collisions,
		"suppressed", s.Suppressed,
		"kinetic_total", s.KineticTotal,
		"speed_mean", s.SpeedMean,
		"speed_p90", s.SpeedP90,
	)
}

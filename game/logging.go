package game

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/pthm-cable/arcade/scene"
	"github.com/pthm-cable/arcade/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats logs the tick phase breakdown.
func (g *Game) logPerfStats(fps int32) {
	stats := g.perfCollector.Stats()
	Logf("=== Perf @ Tick %d (scale %.2fx) | FPS: %d ===", g.tick, g.timeScale, fps)
	Logf("Avg tick: %s (%.0f ticks/s)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond)
	for _, phase := range telemetry.Phases {
		Logf("  %-18s %10s  %5.1f%%", telemetry.PhaseName(phase), stats.PhaseAvg[phase].Round(time.Microsecond), stats.PhasePct[phase])
	}
	Logf("")
}

// LogSceneState logs body and binding counts for the current round.
func (g *Game) LogSceneState() {
	s := g.scene
	st := s.Stats()

	Logf("=== %s @ Tick %d (%.1fs) ===", g.demo.Title(), g.tick, g.simTime)
	Logf("Bodies: %d | Bindings: %d", s.NumBodies(), s.NumBindings())

	counts := s.CountBindings()
	kinds := make([]scene.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		Logf("  %-10s %d", k, counts[k])
	}

	Logf("Steps: %d | Added: %d | Removed: %d | Pruned: %d",
		st.Steps, st.BodiesAdded, st.BodiesRemoved, st.BindingsPruned)
	Logf("Collisions: %d (suppressed %d) | Kinetic: %.1f",
		st.Collisions, st.Suppressed, telemetry.TotalKinetic(s.Bodies()))
	Logf("")
}

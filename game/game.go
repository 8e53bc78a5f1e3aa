// Package game runs a demo on a scene: the fixed or frame-timed loop, input,
// telemetry and, in graphics mode, rendering and UI.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/arcade/camera"
	"github.com/pthm-cable/arcade/config"
	"github.com/pthm-cable/arcade/demo"
	"github.com/pthm-cable/arcade/renderer"
	"github.com/pthm-cable/arcade/scene"
	"github.com/pthm-cable/arcade/telemetry"
	"github.com/pthm-cable/arcade/ui"
)

// Options configures a game run.
type Options struct {
	Seed           int64
	DemoName       string // Empty = config demo.name
	Headless       bool
	LogStats       bool    // Log window stats and bookmarks via slog
	StatsWindowSec float64 // 0 = config telemetry.stats_window
	SnapshotDir    string  // Empty = no bookmark snapshots
	OutputDir      string  // Empty = no CSV output
	StepsPerUpdate int     // Headless ticks per UpdateHeadless call
}

// Game holds the complete run state.
type Game struct {
	cfg     *config.Config
	opts    Options
	rng     *rand.Rand
	rngSeed int64

	scene *scene.Scene
	demo  demo.Demo
	ctx   *demo.Context
	input *InputQueue

	// State
	tick      int32
	simTime   float64
	paused    bool
	stepOnce  bool
	timeScale float32
	gameOver  bool
	restarts  int

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	statsCallback    func(telemetry.WindowStats)

	// Graphics mode only
	camera        *camera.Camera
	sceneRenderer *renderer.SceneRenderer
	hud           *ui.HUD
	perfPanel     *ui.PerfPanel
	inspector     *ui.Inspector
	controls      *ui.ControlsPanel
	overlays      *ui.OverlayRegistry
	selected      scene.Handle

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game running the selected demo. The global
// configuration must be initialized.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	if opts.DemoName == "" {
		opts.DemoName = cfg.Demo.Name
	}
	if opts.StatsWindowSec <= 0 {
		opts.StatsWindowSec = cfg.Telemetry.StatsWindow
	}
	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}
	if _, err := demo.New(opts.DemoName); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:              cfg,
		opts:             opts,
		rng:              rand.New(rand.NewSource(opts.Seed)),
		rngSeed:          opts.Seed,
		timeScale:        1,
		collector:        telemetry.NewCollector(opts.StatsWindowSec, cfg.Physics.DT),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	if !opts.Headless {
		g.initGraphics()
	}

	if err := g.startRound(); err != nil {
		g.outputManager.Close()
		return nil, err
	}

	slog.Info("game created",
		"demo", opts.DemoName,
		"seed", opts.Seed,
		"headless", opts.Headless,
		"bodies", g.scene.NumBodies(),
		"bindings", g.scene.NumBindings(),
	)
	return g, nil
}

// startRound builds a fresh scene and sets the demo up on it.
func (g *Game) startRound() error {
	d, err := demo.New(g.opts.DemoName)
	if err != nil {
		return err
	}

	g.scene = scene.New(scene.Options{
		Closeness: g.cfg.Physics.Closeness,
		Debounce:  g.cfg.Physics.Debounce,
	})
	g.scene.SetPhaseObserver(g.perfCollector)

	g.ctx = &demo.Context{
		Scene: g.scene,
		RNG:   g.rng,
		Cfg:   g.cfg,
		World: g.cfg.Derived.WorldSize,
	}
	if err := d.Setup(g.ctx); err != nil {
		return fmt.Errorf("setting up %s: %w", d.Name(), err)
	}
	g.demo = d
	g.gameOver = false
	g.selected = scene.Handle{}
	if g.input != nil {
		g.input.Reset()
	}

	g.collector.Reset(g.tick, g.scene)
	g.bookmarkDetector.Reset()
	return nil
}

// Restart replaces the scene with a fresh round of the same demo. The tick
// counter keeps running so telemetry stays continuous.
func (g *Game) Restart() error {
	g.restarts++
	g.recordBookmark(telemetry.Bookmark{
		Type:        telemetry.BookmarkRestart,
		Tick:        g.tick,
		Description: fmt.Sprintf("%s round %d", g.demo.Name(), g.restarts+1),
	})
	return g.startRound()
}

// SetStatsCallback installs a function called with every flushed window.
func (g *Game) SetStatsCallback(f func(telemetry.WindowStats)) {
	g.statsCallback = f
}

// UpdateHeadless advances StepsPerUpdate fixed ticks without input. A round
// that ends is restarted immediately.
func (g *Game) UpdateHeadless() {
	dt := g.cfg.Physics.DT
	for i := 0; i < g.opts.StepsPerUpdate; i++ {
		g.step(dt, nil)
		if g.gameOver {
			if err := g.Restart(); err != nil {
				slog.Error("failed to restart", "error", err)
			}
		}
	}
}

// step runs one tick: key events, the demo's own logic, then the scene.
func (g *Game) step(dt float64, events []demo.KeyEvent) {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	for _, ev := range events {
		g.demo.HandleKey(ev)
	}

	g.perfCollector.StartPhase(telemetry.PhaseDemo)
	g.demo.Update(dt)
	if g.demo.Kinematic() {
		g.scene.StepKinematic(dt)
	} else {
		g.scene.Step(dt)
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.simTime += dt
	g.flushTelemetry()
	g.perfCollector.EndTick()

	if !g.gameOver && g.demo.Over() {
		g.endRound()
	}
}

// endRound records the end of a round. Graphics mode waits for a restart.
func (g *Game) endRound() {
	g.gameOver = true
	g.recordBookmark(telemetry.Bookmark{
		Type:        telemetry.BookmarkGameOver,
		Tick:        g.tick,
		Description: fmt.Sprintf("%s over with %d bodies left", g.demo.Name(), g.scene.NumBodies()),
	})
	slog.Info("round over", "demo", g.demo.Name(), "tick", g.tick, "sim_time", g.simTime)
}

// Unload releases resources.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the number of ticks run.
func (g *Game) Tick() int32 { return g.tick }

// SimTime returns the simulated seconds run.
func (g *Game) SimTime() float64 { return g.simTime }

// Scene returns the current round's scene.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Demo returns the current round's demo.
func (g *Game) Demo() demo.Demo { return g.demo }

// GameOver reports whether the current round has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// Restarts returns the number of restarts so far.
func (g *Game) Restarts() int { return g.restarts }

// OutputDir returns the output directory, or empty when output is disabled.
func (g *Game) OutputDir() string { return g.outputManager.Dir() }

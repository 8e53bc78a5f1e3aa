package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arcade/camera"
	"github.com/pthm-cable/arcade/renderer"
	"github.com/pthm-cable/arcade/ui"
)

// controlsLegend is shown along the bottom of the window.
const controlsLegend = "Arrows/Space: play | Enter: pause | N: step | R: restart | Tab: panel | WASD/wheel: camera | Home: reset view"

// initGraphics creates the camera, renderer and UI. The window must exist.
func (g *Game) initGraphics() {
	g.screenWidth = float32(rl.GetScreenWidth())
	g.screenHeight = float32(rl.GetScreenHeight())
	world := g.cfg.Derived.WorldSize

	g.camera = camera.New(g.screenWidth, g.screenHeight, float32(world.X), float32(world.Y))
	g.sceneRenderer = renderer.NewSceneRenderer(g.camera)
	g.input = NewInputQueue(nil)

	g.hud = ui.NewHUD()
	g.overlays = ui.NewOverlayRegistry()
	g.overlays.SetEnabled(ui.OverlayFieldBorder, true)
	g.overlays.SetEnabled(ui.OverlayBodyInspector, true)
	g.controls = ui.NewControlsPanel(10, 100, 220)
	g.perfPanel = ui.NewPerfPanel(0, 10)
	g.inspector = ui.NewInspector(0, 0)
	g.layoutPanels()
}

// layoutPanels anchors the right-hand panels to the window edge.
func (g *Game) layoutPanels() {
	right := int32(g.screenWidth) - 10
	g.perfPanel.SetPosition(right-260, 10)
	g.inspector.SetPosition(right-g.inspector.Width(), 200)
}

// Update polls input and advances the simulation by the frame time.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()
	g.handleInput()

	if g.gameOver {
		return
	}
	if g.paused && !g.stepOnce {
		return
	}

	dt := float64(rl.GetFrameTime())
	if g.stepOnce || dt <= 0 {
		dt = g.cfg.Physics.DT
	}
	if limit := g.cfg.Physics.MaxFrameDT; limit > 0 && dt > limit {
		dt = limit
	}
	dt *= float64(g.timeScale)
	g.stepOnce = false

	events := g.input.Poll(dt)
	sub := dt / float64(g.cfg.Physics.StepsPerFrame)
	for i := 0; i < g.cfg.Physics.StepsPerFrame && !g.gameOver; i++ {
		g.step(sub, events)
		events = nil
	}

	if g.opts.LogStats && g.cfg.Telemetry.PerfWindow > 0 && g.tick%int32(g.cfg.Telemetry.PerfWindow) == 0 {
		g.logPerfStats(rl.GetFPS())
	}
}

// handleInput processes keyboard and mouse input outside the demo.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyEnter) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyN) && g.paused {
		g.stepOnce = true
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.restart()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyL) {
		g.LogSceneState()
	}

	// Overlay toggles
	for _, desc := range g.overlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			g.overlays.Toggle(desc.ID)
		}
	}

	// Camera controls
	g.handleCameraInput()

	// Selection, unless the click lands on the controls panel
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		if !g.controls.Contains(mouse.X, mouse.Y) {
			wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
			g.selectAt(float64(wx), float64(wy))
		}
	}
}

func (g *Game) restart() {
	if err := g.Restart(); err != nil {
		slog.Error("failed to restart", "error", err)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(w, h)
	g.layoutPanels()
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / g.camera.Zoom

	if rl.IsKeyDown(rl.KeyD) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyA) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyS) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyW) {
		g.camera.Pan(0, -panSpeed)
	}

	// Right-drag pans
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		g.camera.Pan(-d.X, -d.Y)
	}

	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		g.camera.ZoomBy(1 + wheelMove*0.1)
	}

	// Keyboard zoom with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// Draw renders the frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r := g.sceneRenderer
	bodies := g.scene.Bodies()

	r.DrawField()
	r.DrawBodies(bodies)
	g.drawActiveOverlays()

	selected, hasSelection := g.scene.Lookup(g.selected)
	if hasSelection {
		r.DrawSelection(selected)
	}

	g.hud.Draw(ui.HUDData{
		Title:      g.demo.Title(),
		Bodies:     g.scene.NumBodies(),
		Bindings:   g.scene.NumBindings(),
		Collisions: g.scene.Stats().Collisions,
		Tick:       g.tick,
		SimTime:    g.simTime,
		TimeScale:  g.timeScale,
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
		GameOver:   g.gameOver,
	})
	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight), controlsLegend)

	if g.overlays.IsEnabled(ui.OverlayPerfPanel) {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}
	if hasSelection && g.overlays.IsEnabled(ui.OverlayBodyInspector) {
		g.inspector.Draw(selected)
	}

	state := ui.ControlsState{Paused: g.paused, TimeScale: g.timeScale}
	res := g.controls.Draw(&state, g.overlays)
	g.paused = state.Paused
	g.timeScale = state.TimeScale
	if res.StepOnce {
		g.paused = true
		g.stepOnce = true
	}
	if res.ResetCamera {
		g.camera.Reset()
	}

	rl.EndDrawing()

	// Restart after the frame so the old scene is not drawn half-replaced
	if res.Restart {
		g.restart()
	}
}

// drawActiveOverlays renders all currently enabled scene overlays.
func (g *Game) drawActiveOverlays() {
	r := g.sceneRenderer
	bodies := g.scene.Bodies()
	for _, id := range g.overlays.EnabledOverlays() {
		switch id {
		case ui.OverlayFieldBorder:
			r.DrawFieldBorder()
		case ui.OverlayCentroids:
			r.DrawCentroids(bodies)
		case ui.OverlayVelocities:
			r.DrawVelocities(bodies, 0.25)
		case ui.OverlayBounds:
			r.DrawBounds(bodies)
		case ui.OverlayContacts:
			r.DrawContacts(g.scene)
		// Perf panel and inspector are drawn with the UI
		}
	}
}

package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Time scale limits for the slider.
const (
	MinTimeScale = 0.1
	MaxTimeScale = 4.0
)

// ControlsState is the run state the panel edits.
type ControlsState struct {
	Paused    bool
	TimeScale float32
}

// ControlsResult reports one-shot actions from a frame of the panel.
type ControlsResult struct {
	Restart     bool
	StepOnce    bool
	ResetCamera bool
}

// ControlsPanel renders the left-side controls panel with run controls and
// overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	lastHeight int32 // Height drawn in the last frame
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  false,
	}
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether a screen point falls on the visible panel, so
// clicks on it are not treated as world clicks.
func (c *ControlsPanel) Contains(x, y float32) bool {
	if !c.visible {
		return false
	}
	return x >= float32(c.x) && x <= float32(c.x+c.width) && y >= float32(c.y) && y <= float32(c.y+c.lastHeight)
}

func (c *ControlsPanel) height(overlays *OverlayRegistry) int32 {
	r := c.renderer
	rows := int32(8)
	if overlays != nil {
		rows += int32(len(overlays.All()) + len(overlays.Categories()))
	}
	return rows*r.Theme.LineHeight + r.Theme.Padding*4 + 3*buttonHeight
}

const buttonHeight = 24

// Draw renders the controls panel, applies slider and toggle edits to state
// and overlays, and returns the buttons pressed this frame.
func (c *ControlsPanel) Draw(state *ControlsState, overlays *OverlayRegistry) ControlsResult {
	var res ControlsResult
	if !c.visible {
		return res
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	inner := float32(c.width - padding*2)

	c.lastHeight = c.height(overlays)
	r.DrawPanel(c.x, c.y, c.width, c.lastHeight)

	x := float32(c.x + padding)
	y := c.y + padding

	// Title
	rl.DrawText("Controls", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	// Run controls
	half := (inner - 6) / 2
	pauseLabel := "Pause"
	if state.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: half, Height: buttonHeight}, pauseLabel) {
		state.Paused = !state.Paused
	}
	if gui.Button(rl.Rectangle{X: x + half + 6, Y: float32(y), Width: half, Height: buttonHeight}, "Step") {
		res.StepOnce = true
	}
	y += buttonHeight + 6

	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: half, Height: buttonHeight}, "Restart") {
		res.Restart = true
	}
	if gui.Button(rl.Rectangle{X: x + half + 6, Y: float32(y), Width: half, Height: buttonHeight}, "Camera") {
		res.ResetCamera = true
	}
	y += buttonHeight + 8

	// Time scale
	rl.DrawText(fmt.Sprintf("Time scale: %.2fx", state.TimeScale), c.x+padding, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += lineHeight
	state.TimeScale = gui.SliderBar(
		rl.Rectangle{X: x + 24, Y: float32(y), Width: inner - 48, Height: 16},
		fmt.Sprintf("%.1f", MinTimeScale), fmt.Sprintf("%.0f", MaxTimeScale),
		state.TimeScale, MinTimeScale, MaxTimeScale,
	)
	y += lineHeight + 10

	if overlays == nil {
		return res
	}

	// Overlays by category
	for _, category := range overlays.Categories() {
		rl.DrawText(categoryLabel(category), c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		for _, desc := range overlays.ByCategory(category) {
			enabled := overlays.IsEnabled(desc.ID)
			if c.drawToggle(c.x+padding, y, desc, enabled, c.width-padding*2) {
				overlays.Toggle(desc.ID)
			}
			y += lineHeight
		}

		y += 4 // Gap between categories
	}

	return res
}

// drawToggle draws a single overlay toggle line and reports whether it was clicked.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) bool {
	r := c.renderer

	// Status indicator
	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	// Name
	nameColor := r.Theme.LabelColor
	if enabled {
		nameColor = rl.White
	}
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	// Key binding (right aligned)
	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}

	line := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(r.Theme.LineHeight)}
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(rl.GetMousePosition(), line)
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "physics":
		return "Physics"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}

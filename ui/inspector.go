package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arcade/body"
)

// bodyPanel describes the inspector layout for a *body.Body.
var bodyPanel = PanelDescriptor{
	ID:    "body",
	Title: "Body",
	Width: 240,
	Sections: []SectionDescriptor{
		{
			ID:    "identity",
			Title: "Identity",
			Fields: []FieldDescriptor{
				{ID: "role", Label: "Role", Widget: WidgetText, TextGetter: func(d any) string { return d.(*body.Body).Role().String() }},
				{ID: "color", Label: "Color", Widget: WidgetColorSwatch, ColorGetter: func(d any) rl.Color { return rlColor(d.(*body.Body)) }},
				{ID: "vertices", Label: "Vertices", Widget: WidgetText, TextGetter: func(d any) string { return fmt.Sprintf("%d", len(d.(*body.Body).Vertices())) }},
				{ID: "area", Label: "Area", Widget: WidgetText, TextGetter: func(d any) string { return fmt.Sprintf("%.1f", d.(*body.Body).Vertices().Area()) }},
			},
		},
		{
			ID:    "motion",
			Title: "Motion",
			Fields: []FieldDescriptor{
				{ID: "mass", Label: "Mass", Widget: WidgetText, TextGetter: func(d any) string {
					if b := d.(*body.Body); !b.IsStatic() {
						return fmt.Sprintf("%.2f", b.Mass())
					}
					return "static"
				}},
				{ID: "centroid", Label: "Centroid", Widget: WidgetText, TextGetter: func(d any) string { return vecText(d.(*body.Body).Centroid().X, d.(*body.Body).Centroid().Y) }},
				{ID: "velocity", Label: "Velocity", Widget: WidgetText, TextGetter: func(d any) string { return vecText(d.(*body.Body).Velocity().X, d.(*body.Body).Velocity().Y) }},
				{ID: "speed", Label: "Speed", Widget: WidgetText, Format: "%.1f", Getter: func(d any) float32 { return float32(d.(*body.Body).Velocity().Magnitude()) }},
				{ID: "angle", Label: "Angle", Widget: WidgetCenteredBar, Range: FieldRange{Min: -math.Pi, Max: math.Pi}, Getter: func(d any) float32 { return float32(d.(*body.Body).Angle()) }},
			},
		},
		{
			ID:    "collision",
			Title: "Collision",
			Fields: []FieldDescriptor{
				{ID: "elasticity", Label: "Elastic", Widget: WidgetText, TextGetter: func(d any) string { return vecText(d.(*body.Body).Elasticity().X, d.(*body.Body).Elasticity().Y) }},
				{ID: "contact", Label: "Contact", Widget: WidgetText, TextGetter: func(d any) string {
					if d.(*body.Body).CollidingWith().IsZero() {
						return "none"
					}
					return "touching"
				}},
				{ID: "since", Label: "Since hit", Widget: WidgetBar, Getter: func(d any) float32 { return float32(math.Min(d.(*body.Body).TimeSinceLastCollision(), 1)) }},
			},
		},
	},
}

func vecText(x, y float64) string {
	return fmt.Sprintf("(%.1f, %.1f)", x, y)
}

func rlColor(b *body.Body) rl.Color {
	r, g, bl, a := b.Color().RGBA8()
	return rl.Color{R: r, G: g, B: bl, A: a}
}

// Inspector renders the selected body's state.
type Inspector struct {
	renderer *Renderer
	x, y     int32
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Width returns the panel width.
func (ins *Inspector) Width() int32 { return bodyPanel.Width }

// Draw renders the inspector panel for b and returns the bottom Y.
func (ins *Inspector) Draw(b *body.Body) int32 {
	r := ins.renderer
	padding := r.Theme.Padding
	width := bodyPanel.Width

	rows := int32(1)
	for _, sd := range bodyPanel.Sections {
		rows += int32(len(sd.Fields)) + 1
	}
	r.DrawPanel(ins.x, ins.y, width, rows*(r.Theme.LineHeight+2)+padding*3)

	y := ins.y + padding
	rl.DrawText(bodyPanel.Title, ins.x+padding, y, 16, rl.White)
	y += r.Theme.LineHeight + 4

	for _, sd := range bodyPanel.Sections {
		y = r.DrawSection(ins.x+padding, y, sd, b, width-padding*2)
	}
	return y
}

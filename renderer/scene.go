// Package renderer draws scene bodies and debug overlays with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/camera"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
	"github.com/pthm-cable/arcade/scene"
)

// Overlay colours.
var (
	FieldColor     = rl.Color{R: 12, G: 14, B: 20, A: 255}
	BorderColor    = rl.Color{R: 70, G: 80, B: 100, A: 255}
	CentroidColor  = rl.Color{R: 255, G: 220, B: 80, A: 255}
	VelocityColor  = rl.Color{R: 80, G: 200, B: 255, A: 255}
	BoundsColor    = rl.Color{R: 120, G: 255, B: 120, A: 160}
	ContactColor   = rl.Color{R: 255, G: 80, B: 80, A: 255}
	SelectionColor = rl.Color{R: 255, G: 255, B: 255, A: 220}
)

// SceneRenderer draws bodies through a camera.
type SceneRenderer struct {
	cam *camera.Camera

	// Reused between bodies to avoid a per-body allocation
	points []rl.Vector2
}

// NewSceneRenderer creates a renderer drawing through cam.
func NewSceneRenderer(cam *camera.Camera) *SceneRenderer {
	return &SceneRenderer{cam: cam}
}

// ToScreen converts a world point to a raylib screen vector.
func (r *SceneRenderer) ToScreen(v geom.Vector) rl.Vector2 {
	x, y := r.cam.WorldToScreen(float32(v.X), float32(v.Y))
	return rl.Vector2{X: x, Y: y}
}

// ColorOf converts a body colour to a raylib colour.
func ColorOf(c components.Color) rl.Color {
	r, g, b, a := c.RGBA8()
	return rl.Color{R: r, G: g, B: b, A: a}
}

// DrawField fills the playfield rectangle.
func (r *SceneRenderer) DrawField() {
	x, y, w, h := r.cam.FieldRect()
	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, FieldColor)
}

// DrawFieldBorder outlines the playfield.
func (r *SceneRenderer) DrawFieldBorder() {
	x, y, w, h := r.cam.FieldRect()
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, 2, BorderColor)
}

// DrawBodies draws every body as a filled polygon in its own colour.
// Bodies outside the view are skipped.
func (r *SceneRenderer) DrawBodies(bodies []*body.Body) {
	for _, b := range bodies {
		if !r.visible(b) {
			continue
		}
		r.DrawBody(b, ColorOf(b.Color()))
	}
}

// DrawBody fills b as a triangle fan around its centroid.
func (r *SceneRenderer) DrawBody(b *body.Body, col rl.Color) {
	verts := b.Vertices()
	pts := r.points[:0]
	pts = append(pts, r.ToScreen(b.Centroid()))
	for _, v := range verts {
		pts = append(pts, r.ToScreen(v))
	}
	pts = append(pts, pts[1])

	// raylib culls fans wound clockwise on screen
	if screenArea2(pts[1:len(pts)-1]) > 0 {
		for i, j := 1, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	rl.DrawTriangleFan(pts, col)
	r.points = pts
}

// DrawOutline strokes the edges of b.
func (r *SceneRenderer) DrawOutline(b *body.Body, thick float32, col rl.Color) {
	verts := b.Vertices()
	for i := range verts {
		a := r.ToScreen(verts[i])
		c := r.ToScreen(verts[(i+1)%len(verts)])
		rl.DrawLineEx(a, c, thick, col)
	}
}

// DrawCentroids marks each body's cached centroid.
func (r *SceneRenderer) DrawCentroids(bodies []*body.Body) {
	for _, b := range bodies {
		rl.DrawCircleV(r.ToScreen(b.Centroid()), 2.5, CentroidColor)
	}
}

// DrawVelocities draws each body's velocity, scaled by seconds of travel.
func (r *SceneRenderer) DrawVelocities(bodies []*body.Body, seconds float64) {
	for _, b := range bodies {
		v := b.Velocity()
		if v.IsZero() {
			continue
		}
		c := b.Centroid()
		rl.DrawLineEx(r.ToScreen(c), r.ToScreen(c.Add(v.Scale(seconds))), 1.5, VelocityColor)
	}
}

// DrawBounds draws each body's axis-aligned bounding box.
func (r *SceneRenderer) DrawBounds(bodies []*body.Body) {
	for _, b := range bodies {
		min, max := b.Vertices().Bounds()
		tl := r.ToScreen(geom.Vec(min.X, max.Y))
		br := r.ToScreen(geom.Vec(max.X, min.Y))
		rl.DrawRectangleLinesEx(rl.Rectangle{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}, 1, BoundsColor)
	}
}

// DrawContacts links every body to the body it is currently touching.
// Handles that no longer resolve are ignored.
func (r *SceneRenderer) DrawContacts(s *scene.Scene) {
	for _, b := range s.Bodies() {
		other, ok := s.CollidingWith(b)
		if !ok {
			continue
		}
		a := r.ToScreen(b.Centroid())
		rl.DrawLineEx(a, r.ToScreen(other.Centroid()), 1, ContactColor)
		rl.DrawCircleV(a, 3, ContactColor)
	}
}

// DrawSelection highlights the selected body.
func (r *SceneRenderer) DrawSelection(b *body.Body) {
	if b == nil {
		return
	}
	r.DrawOutline(b, 2, SelectionColor)
}

// visible reports whether b's bounding circle overlaps the view.
func (r *SceneRenderer) visible(b *body.Body) bool {
	min, max := b.Vertices().Bounds()
	c := b.Centroid()
	radius := math.Max(max.Sub(c).Magnitude(), c.Sub(min).Magnitude())
	return r.cam.IsVisible(float32(c.X), float32(c.Y), float32(radius))
}

// screenArea2 returns twice the signed area of pts in screen coordinates.
func screenArea2(pts []rl.Vector2) float32 {
	var sum float32
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

package game

import (
	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/geom"
	"github.com/pthm-cable/arcade/scene"
)

// pickBody returns the topmost body containing pt. Later bodies are drawn
// over earlier ones, so the search runs backwards.
func pickBody(bodies []*body.Body, pt geom.Vector) (*body.Body, bool) {
	for i := len(bodies) - 1; i >= 0; i-- {
		b := bodies[i]
		if b.IsRemoved() {
			continue
		}
		if b.Vertices().Contains(pt) {
			return b, true
		}
	}
	return nil, false
}

// selectAt selects the body under a world point, or clears the selection
// when there is none.
func (g *Game) selectAt(wx, wy float64) {
	b, ok := pickBody(g.scene.Bodies(), geom.Vec(wx, wy))
	if !ok {
		g.selected = scene.Handle{}
		return
	}
	g.selected = b.Handle()
}

// Selected returns the selected body while it is still in the scene.
func (g *Game) Selected() (*body.Body, bool) {
	return g.scene.Lookup(g.selected)
}

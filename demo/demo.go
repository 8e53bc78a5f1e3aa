// Package demo holds the games built on the scene: an n-body system, coupled
// springs, bouncing stars, breakout and invaders.
package demo

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/config"
	"github.com/pthm-cable/arcade/geom"
	"github.com/pthm-cable/arcade/scene"
)

// Context is everything a demo may touch: the scene it populates, the
// run's random source, the configuration and the playfield size.
type Context struct {
	Scene *scene.Scene
	RNG   *rand.Rand
	Cfg   *config.Config
	World geom.Vector
}

// Demo is one game built on the scene.
//
// Each tick the game delivers key events to HandleKey, then calls Update,
// then advances the scene with StepKinematic when Kinematic reports true and
// Step otherwise. Over reports that the round has ended.
type Demo interface {
	Name() string
	Title() string
	Setup(ctx *Context) error
	HandleKey(ev KeyEvent)
	Update(dt float64)
	Kinematic() bool
	Over() bool
}

var factories = map[string]func() Demo{
	"nbody":    func() Demo { return &NBody{} },
	"springs":  func() Demo { return &Springs{} },
	"bounce":   func() Demo { return &Bounce{} },
	"breakout": func() Demo { return &Breakout{} },
	"invaders": func() Demo { return &Invaders{} },
}

// Names returns the registered demo names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New returns a fresh demo by name.
func New(name string) (Demo, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (have %v)", name, Names())
	}
	return f(), nil
}

// randomColor returns a colour with uniformly random channels.
func randomColor(rng *rand.Rand) components.Color {
	return components.Color{R: rng.Float32(), G: rng.Float32(), B: rng.Float32()}
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// randomPoint returns an integer-valued point inside a field of the given
// size centred on the origin.
func randomPoint(rng *rand.Rand, size geom.Vector) geom.Vector {
	hw, hh := int(size.X/2), int(size.Y/2)
	return geom.Vec(float64(randInt(rng, -hw, hw)), float64(randInt(rng, -hh, hh)))
}

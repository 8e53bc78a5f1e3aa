package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arcade/demo"
)

// demoKeys maps demo keys to raylib key codes, in demo.Key order.
var demoKeys = [demo.NumKeys]int32{rl.KeyLeft, rl.KeyRight, rl.KeyUp, rl.KeyDown, rl.KeySpace}

// KeySource reports whether a raylib key is down.
type KeySource interface {
	IsKeyDown(key int32) bool
}

// raylibKeys polls the window.
type raylibKeys struct{}

func (raylibKeys) IsKeyDown(key int32) bool { return rl.IsKeyDown(key) }

// InputQueue turns polled key state into press and release events.
type InputQueue struct {
	src    KeySource
	down   [demo.NumKeys]bool
	held   [demo.NumKeys]float64
	events []demo.KeyEvent
}

// NewInputQueue creates a queue polling src. A nil src polls raylib.
func NewInputQueue(src KeySource) *InputQueue {
	if src == nil {
		src = raylibKeys{}
	}
	return &InputQueue{src: src}
}

// Poll samples every key and returns this frame's events. A held key yields
// a KeyPressed event every frame; a key let go yields one KeyReleased. The
// returned slice is reused by the next call.
func (q *InputQueue) Poll(dt float64) []demo.KeyEvent {
	q.events = q.events[:0]
	for i, code := range demoKeys {
		k := demo.Key(i)
		if q.src.IsKeyDown(code) {
			if !q.down[i] {
				q.down[i] = true
				q.held[i] = 0
			}
			q.events = append(q.events, demo.KeyEvent{Key: k, Type: demo.KeyPressed, Held: q.held[i]})
			q.held[i] += dt
			continue
		}
		if q.down[i] {
			q.events = append(q.events, demo.KeyEvent{Key: k, Type: demo.KeyReleased, Held: q.held[i]})
			q.down[i] = false
			q.held[i] = 0
		}
	}
	return q.events
}

// Reset forgets held keys, so the next poll reports fresh presses.
func (q *InputQueue) Reset() {
	q.down = [demo.NumKeys]bool{}
	q.held = [demo.NumKeys]float64{}
}

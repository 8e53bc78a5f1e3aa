// Package scene owns bodies and the force and collision bindings between them,
// and advances them with a deferred-removal step protocol.
package scene

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arcade/body"
)

// Default tuning values.
const (
	DefaultCloseness = 6.0  // Gravity is skipped below this centroid separation
	DefaultDebounce  = 0.01 // Seconds a bullet ignores repeated contacts
)

// Handle identifies a body within its scene. Handles are generation-checked:
// once the body is removed the handle no longer resolves.
type Handle = ecs.Entity

// Options configures a Scene.
type Options struct {
	Closeness float64
	Debounce  float64
}

// DefaultOptions returns the standard scene options.
func DefaultOptions() Options {
	return Options{
		Closeness: DefaultCloseness,
		Debounce:  DefaultDebounce,
	}
}

// PhaseObserver is notified as Step enters each phase.
type PhaseObserver interface {
	StartPhase(phase string)
}

// Stats holds cumulative counters since the scene was created.
type Stats struct {
	Steps          int64
	BodiesAdded    int64
	BodiesRemoved  int64
	BindingsPruned int64
	Collisions     int64 // Collision responses invoked
	Suppressed     int64 // Responses skipped by the bullet debounce
}

// bodyRef is the single component stored per entity.
type bodyRef struct {
	body *body.Body
}

// Scene holds bodies in insertion order and the bindings that act on them.
type Scene struct {
	world *ecs.World
	refs  *ecs.Map1[bodyRef]

	bodies   []*body.Body
	bindings []*Binding

	opts     Options
	observer PhaseObserver
	stats    Stats
}

// New creates an empty scene. Zero option fields take their defaults.
func New(opts Options) *Scene {
	def := DefaultOptions()
	if opts.Closeness <= 0 {
		opts.Closeness = def.Closeness
	}
	if opts.Debounce <= 0 {
		opts.Debounce = def.Debounce
	}
	world := ecs.NewWorld()
	return &Scene{
		world: world,
		refs:  ecs.NewMap1[bodyRef](world),
		opts:  opts,
	}
}

// Options returns the scene's options.
func (s *Scene) Options() Options { return s.opts }

// SetPhaseObserver installs an observer for step phases. Pass nil to remove it.
func (s *Scene) SetPhaseObserver(o PhaseObserver) { s.observer = o }

// Stats returns the cumulative counters.
func (s *Scene) Stats() Stats { return s.stats }

// AddBody appends b to the scene and returns its handle.
func (s *Scene) AddBody(b *body.Body) Handle {
	if h := b.Handle(); s.alive(h) && s.refs.Get(h).body == b {
		panic("scene: body added twice")
	}
	h := s.refs.NewEntity(&bodyRef{body: b})
	b.SetHandle(h)
	s.bodies = append(s.bodies, b)
	s.stats.BodiesAdded++
	return h
}

// NumBodies returns the number of bodies in the scene.
func (s *Scene) NumBodies() int { return len(s.bodies) }

// NumBindings returns the number of active bindings.
func (s *Scene) NumBindings() int { return len(s.bindings) }

// Bodies returns the scene's bodies in insertion order. The slice is owned by
// the scene and is only valid until the next mutation.
func (s *Scene) Bodies() []*body.Body { return s.bodies }

// BodyAt returns the body at index i. It panics if i is out of range.
func (s *Scene) BodyAt(i int) *body.Body {
	s.checkIndex(i)
	return s.bodies[i]
}

// RemoveBodyAt removes the body at index i immediately, together with every
// binding that references it. It panics if i is out of range. Generators
// should call MarkRemoved instead.
func (s *Scene) RemoveBodyAt(i int) {
	s.checkIndex(i)
	b := s.bodies[i]
	s.bodies = slices.Delete(s.bodies, i, i+1)
	before := len(s.bindings)
	s.bindings = pruneBindings(s.bindings, func(bd *Binding) bool { return bd.references(b) })
	s.stats.BindingsPruned += int64(before - len(s.bindings))
	s.stats.BodiesRemoved++
	s.release(b)
}

// Lookup resolves a handle to its body.
func (s *Scene) Lookup(h Handle) (*body.Body, bool) {
	if !s.alive(h) {
		return nil, false
	}
	return s.refs.Get(h).body, true
}

// CollidingWith resolves the body b last collided with. It fails when there
// is no current contact or the other body has been removed.
func (s *Scene) CollidingWith(b *body.Body) (*body.Body, bool) {
	return s.Lookup(b.CollidingWith())
}

// Step advances the scene by dt. Generators run in registration order, then
// bindings that touch a removed body are dropped, then removed bodies are
// swept and every survivor is integrated.
func (s *Scene) Step(dt float64) {
	s.stats.Steps++

	s.startPhase(PhaseGenerators)
	for _, bd := range s.bindings {
		bd.generator()
	}

	s.startPhase(PhasePruneBindings)
	before := len(s.bindings)
	s.bindings = pruneBindings(s.bindings, (*Binding).referencesRemoved)
	if pruned := before - len(s.bindings); pruned > 0 {
		s.stats.BindingsPruned += int64(pruned)
		slog.Debug("bindings pruned", "count", pruned, "remaining", len(s.bindings))
	}

	s.startPhase(PhaseSweepBodies)
	live := s.bodies[:0]
	for _, b := range s.bodies {
		if b.IsRemoved() {
			s.release(b)
			s.stats.BodiesRemoved++
			continue
		}
		live = append(live, b)
	}
	clear(s.bodies[len(live):])
	s.bodies = live
	for _, b := range s.bodies {
		b.Tick(dt)
	}
}

// StepKinematic advances every body under its own velocity and acceleration.
// Bindings are not run and nothing is removed.
func (s *Scene) StepKinematic(dt float64) {
	s.stats.Steps++
	for _, b := range s.bodies {
		b.TickKinematic(dt)
	}
}

func (s *Scene) startPhase(phase string) {
	if s.observer != nil {
		s.observer.StartPhase(phase)
	}
}

func (s *Scene) alive(h Handle) bool {
	return !h.IsZero() && s.world.Alive(h)
}

// release frees the body's entity so stale handles stop resolving.
func (s *Scene) release(b *body.Body) {
	if s.alive(b.Handle()) {
		s.world.RemoveEntity(b.Handle())
	}
	slog.Debug("body removed", "role", b.Role().String())
}

func (s *Scene) checkIndex(i int) {
	if i < 0 || i >= len(s.bodies) {
		panic(fmt.Sprintf("scene: body index %d out of range [0, %d)", i, len(s.bodies)))
	}
}

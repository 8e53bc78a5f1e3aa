package scene

import (
	"slices"

	"github.com/pthm-cable/arcade/body"
)

// Kind identifies what a binding does.
type Kind uint8

const (
	KindCustom Kind = iota
	KindGravity
	KindSpring
	KindDrag
	KindCollision
)

var kindNames = []string{"custom", "gravity", "spring", "drag", "collision"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Generator adds forces or impulses to the bodies it captured. It must not
// integrate bodies itself.
type Generator func()

// Binding ties a generator to the bodies it reads and writes. The scene drops
// a binding as soon as any of its bodies is removed.
type Binding struct {
	kind      Kind
	generator Generator
	bodies    []*body.Body
}

// Kind returns the binding's kind.
func (bd *Binding) Kind() Kind { return bd.kind }

// Bodies returns the bodies the binding references.
func (bd *Binding) Bodies() []*body.Body { return bd.bodies }

func (bd *Binding) references(b *body.Body) bool {
	return slices.Contains(bd.bodies, b)
}

func (bd *Binding) referencesRemoved() bool {
	return slices.ContainsFunc(bd.bodies, (*body.Body).IsRemoved)
}

// AddBinding registers a generator acting on bodies. Generators run in
// registration order on every Step.
func (s *Scene) AddBinding(kind Kind, gen Generator, bodies ...*body.Body) *Binding {
	if gen == nil {
		panic("scene: nil generator")
	}
	bd := &Binding{
		kind:      kind,
		generator: gen,
		bodies:    bodies,
	}
	s.bindings = append(s.bindings, bd)
	return bd
}

// Bindings returns the active bindings in registration order. The slice is
// owned by the scene.
func (s *Scene) Bindings() []*Binding { return s.bindings }

// CountBindings returns the number of active bindings of each kind.
func (s *Scene) CountBindings() map[Kind]int {
	counts := make(map[Kind]int)
	for _, bd := range s.bindings {
		counts[bd.kind]++
	}
	return counts
}

// pruneBindings removes, in place, every binding for which drop returns true.
func pruneBindings(bindings []*Binding, drop func(*Binding) bool) []*Binding {
	return slices.DeleteFunc(bindings, drop)
}

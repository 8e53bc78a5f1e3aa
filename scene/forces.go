package scene

import (
	"github.com/pthm-cable/arcade/body"
)

// AddGravity binds Newtonian attraction F = G*m1*m2/r^2 between a and b.
// The force is skipped while the centroids are closer than the scene's
// closeness threshold.
func (s *Scene) AddGravity(g float64, a, b *body.Body) *Binding {
	closeness := s.opts.Closeness
	return s.AddBinding(KindGravity, func() {
		r := a.Centroid().Distance(b.Centroid())
		if r < closeness {
			return
		}
		attract(a, b, g*a.Mass()*b.Mass()/(r*r))
	}, a, b)
}

// AddSpring binds a pull of magnitude k*r drawing a and b together, where r
// is the distance between their centroids. There is no rest length.
func (s *Scene) AddSpring(k float64, a, b *body.Body) *Binding {
	return s.AddBinding(KindSpring, func() {
		r := a.Centroid().Distance(b.Centroid())
		attract(a, b, k*r)
	}, a, b)
}

// AddDrag binds a force -gamma*v opposing b's velocity.
func (s *Scene) AddDrag(gamma float64, b *body.Body) *Binding {
	return s.AddBinding(KindDrag, func() {
		b.AddForce(b.Velocity().Scale(-gamma))
	}, b)
}

// attract applies equal and opposite forces of the given magnitude pulling a
// and b toward each other. Coincident centroids have no direction and get no
// force.
func attract(a, b *body.Body, magnitude float64) {
	d := b.Centroid().Sub(a.Centroid())
	if d.IsZero() {
		return
	}
	f := d.Unit().Scale(magnitude)
	a.AddForce(f)
	b.AddForce(f.Negate())
}

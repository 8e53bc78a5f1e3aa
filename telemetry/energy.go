package telemetry

import "github.com/pthm-cable/arcade/body"

// KineticEnergy returns ½·m·|v|² for b. Static bodies carry none.
func KineticEnergy(b *body.Body) float64 {
	if b.IsStatic() {
		return 0
	}
	v := b.Velocity()
	return 0.5 * b.Mass() * v.Dot(v)
}

// TotalKinetic sums the kinetic energy of bodies.
func TotalKinetic(bodies []*body.Body) float64 {
	var total float64
	for _, b := range bodies {
		total += KineticEnergy(b)
	}
	return total
}

// GravityPotential returns the Newtonian potential -G·m₁·m₂/r between a and b.
// Coincident centroids yield zero.
func GravityPotential(g float64, a, b *body.Body) float64 {
	r := a.Centroid().Distance(b.Centroid())
	if r == 0 {
		return 0
	}
	return -g * a.Mass() * b.Mass() / r
}

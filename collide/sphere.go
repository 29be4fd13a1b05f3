package collide

import (
	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/constraint"
)

// resolveSphere handles every pair whose outer shape is a sphere. The
// Minkowski sum of a sphere and any center shape is that shape's rounded box
// grown by the sphere radius, so a single query of the outer center against
// it is exact.
func resolveSphere(outer, center *actor.ShapeState) constraint.Manifold {
	radius := center.Radius + outer.Radius
	binding := center.Transform.Frame().ProbePoint(outer.Transform.Position, center.HalfExtents, radius)

	c := constraint.ContactConstraint{Outer: outer, Binding: binding}
	c.SolvePosition()

	position := outer.Transform.Position
	centerContact := position.Sub(binding.Normal.Mul(binding.Distance + outer.Radius))
	outerContact := position.Sub(binding.Normal.Mul(outer.Radius))

	m := constraint.NewManifold(position, centerContact, outerContact)
	m.MinkowskiHalfExtents = center.HalfExtents
	m.MinkowskiRadius = radius
	m.Distance = binding.Distance
	m.Normal = binding.Normal

	return m
}

package constraint

import (
	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/sdf"
	"github.com/akmonengine/minkowski/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxContacts is the fixed size of a manifold.
const MaxContacts = 4

// Contact roles. The indices are semantic; renderers colour-code by index.
const (
	// ContactSum is the corrected outer position, the point realized by the
	// Minkowski-sum test.
	ContactSum = iota
	// ContactAverage is the midpoint of ContactCenter and ContactOuter.
	ContactAverage
	// ContactCenter lies on the center shape's surface.
	ContactCenter
	// ContactOuter lies on the outer shape's surface.
	ContactOuter
)

// Manifold is the per-frame collision output. It is fully recomputed every
// frame.
type Manifold struct {
	Contacts [MaxContacts]mgl64.Vec3

	// MinkowskiHalfExtents and MinkowskiRadius describe the rounded box used
	// as the Minkowski sum of the current dominant test.
	MinkowskiHalfExtents mgl64.Vec3
	MinkowskiRadius      float64

	// Distance and Normal come from the binding constraint. Distance <= 0
	// means the shapes were touching or overlapping before correction.
	Distance float64
	Normal   mgl64.Vec3
}

// NewManifold fills the four contact roles from the corrected outer position
// and the two surface contacts.
func NewManifold(outerPosition, centerContact, outerContact mgl64.Vec3) Manifold {
	var m Manifold
	m.Contacts[ContactSum] = outerPosition
	m.Contacts[ContactAverage] = vmath.Midpoint(centerContact, outerContact)
	m.Contacts[ContactCenter] = centerContact
	m.Contacts[ContactOuter] = outerContact

	return m
}

// Colliding reports whether the binding constraint was penetrating.
func (m Manifold) Colliding() bool {
	return m.Distance <= 0
}

// ContactConstraint pushes the outer shape out along the binding normal.
// The correction is positional only: velocities are left untouched and no
// restitution is applied.
type ContactConstraint struct {
	Outer   *actor.ShapeState
	Binding sdf.Gradient
}

// SolvePosition removes the penetration in a single, non-iterative step.
// A separated pair (Distance > 0) is left unchanged.
func (c *ContactConstraint) SolvePosition() {
	if !c.Binding.Penetrating() {
		return
	}

	correction := c.Binding.Normal.Mul(c.Binding.Distance)
	c.Outer.Transform.Position = c.Outer.Transform.Position.Sub(correction)
}

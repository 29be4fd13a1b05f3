package collide

import (
	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/constraint"
	"github.com/akmonengine/minkowski/sdf"
	"github.com/akmonengine/minkowski/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

// reduction holds the two tentative surface contacts of an oriented pair.
type reduction struct {
	centerContact mgl64.Vec3
	outerContact  mgl64.Vec3
}

// reduce runs the one-sided test in both directions. First the outer shape
// is treated as a sphere of its reach against the center shape inflated by
// that reach, then the roles are swapped. The inflation cancels when the
// contact is placed, so both contacts lie on the actual surfaces.
func reduce(outer, center *actor.ShapeState) reduction {
	offset := outer.Transform.Position.Sub(center.Transform.Position)
	outerReach := outer.Reach()
	centerReach := center.Reach()

	onCenter := center.Transform.Frame().Probe(offset, center.HalfExtents, center.Radius+outerReach)
	onOuter := outer.Transform.Frame().Probe(offset, outer.HalfExtents, outer.Radius+centerReach)

	return reduction{
		centerContact: outer.Transform.Position.Sub(onCenter.Normal.Mul(onCenter.Distance + outerReach)),
		outerContact:  center.Transform.Position.Add(onOuter.Normal.Mul(onOuter.Distance + centerReach)),
	}
}

// probeCenterContact measures the center contact against the outer shape.
// The offset runs from the contact to the outer origin, so the resulting
// normal points the way the outer shape has to move.
func (r reduction) probeCenterContact(outer *actor.ShapeState) sdf.Gradient {
	offset := outer.Transform.Position.Sub(r.centerContact)
	return outer.Transform.Frame().Probe(offset, outer.HalfExtents, outer.Radius)
}

// probeOuterContact measures the outer contact against the center shape.
func (r reduction) probeOuterContact(center *actor.ShapeState) sdf.Gradient {
	offset := r.outerContact.Sub(center.Transform.Position)
	return center.Transform.Frame().Probe(offset, center.HalfExtents, center.Radius)
}

func (r reduction) midpoint() mgl64.Vec3 {
	return vmath.Midpoint(r.centerContact, r.outerContact)
}

// apply corrects outer along the binding candidate and builds the manifold.
// The surface contacts are reported as found before the correction.
func (r reduction) apply(outer, center *actor.ShapeState, binding sdf.Gradient) constraint.Manifold {
	c := constraint.ContactConstraint{Outer: outer, Binding: binding}
	c.SolvePosition()

	position := outer.Transform.Position

	m := constraint.NewManifold(position, r.centerContact, r.outerContact)
	m.MinkowskiHalfExtents = center.HalfExtents
	m.MinkowskiRadius = binding.Normal.Dot(position.Sub(r.outerContact)) + center.Radius
	m.Distance = binding.Distance
	m.Normal = binding.Normal

	return m
}

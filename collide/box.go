package collide

import (
	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/constraint"
)

// resolveBoxBox handles two oriented boxes. Besides re-probing each
// tentative contact against the opposite box, the midpoint of the contacts
// is probed against both boxes without rounding, which catches edge-to-edge
// configurations that the corner reductions miss.
func resolveBoxBox(outer, center *actor.ShapeState) constraint.Manifold {
	r := reduce(outer, center)
	avg := r.midpoint()

	binding := constraint.Deepest(
		r.probeCenterContact(outer),
		r.probeOuterContact(center),
		outer.Transform.Frame().Probe(outer.Transform.Position.Sub(avg), outer.HalfExtents, 0),
		center.Transform.Frame().Probe(avg.Sub(center.Transform.Position), center.HalfExtents, 0),
	)

	return r.apply(outer, center, binding)
}

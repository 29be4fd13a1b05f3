package collide

import (
	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/constraint"
)

// resolveCapsuleCapsule handles two oriented capsules.
func resolveCapsuleCapsule(outer, center *actor.ShapeState) constraint.Manifold {
	return resolveCapsule(outer, center)
}

// resolveCapsuleBox handles an outer capsule against an oriented box.
func resolveCapsuleBox(outer, center *actor.ShapeState) constraint.Manifold {
	return resolveCapsule(outer, center)
}

// resolveCapsule keeps the deeper of the two contact re-probes. The outer
// contact probe is listed first so it wins a tie.
func resolveCapsule(outer, center *actor.ShapeState) constraint.Manifold {
	r := reduce(outer, center)

	binding := constraint.Deepest(
		r.probeOuterContact(center),
		r.probeCenterContact(outer),
	)

	return r.apply(outer, center, binding)
}

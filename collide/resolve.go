package collide

import (
	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/constraint"
)

type resolver func(outer, center *actor.ShapeState) constraint.Manifold

var resolvers = [pairCount]resolver{
	SphereSphere:   resolveSphere,
	SphereBox:      resolveSphere,
	SphereCapsule:  resolveSphere,
	BoxBox:         resolveBoxBox,
	CapsuleCapsule: resolveCapsuleCapsule,
	CapsuleBox:     resolveCapsuleBox,
}

// Resolve selects the resolver for (outer.Kind, center.Kind), moves outer out
// of center and returns the frame's manifold. Only the outer position is
// mutated. A kind combination outside the six pairs yields ErrInvalidPair
// and leaves both shapes untouched.
func Resolve(outer, center *actor.ShapeState) (constraint.Manifold, error) {
	pair, err := PairOf(outer.Kind, center.Kind)
	if err != nil {
		return constraint.Manifold{}, err
	}

	return resolvers[pair](outer, center), nil
}

// Step integrates both shapes by dt, then resolves the pair.
func Step(outer, center *actor.ShapeState, dt float64) (constraint.Manifold, error) {
	if _, err := PairOf(outer.Kind, center.Kind); err != nil {
		return constraint.Manifold{}, err
	}

	outer.Integrate(dt)
	center.Integrate(dt)

	return Resolve(outer, center)
}

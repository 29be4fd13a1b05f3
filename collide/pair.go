// Package collide resolves the collision between an outer and a center shape.
//
// Each supported pair reduces one shape to an effective sphere and the other
// to a rounded box inflated by that sphere, queries the rounded-box distance
// field in the box's local frame, and pushes the outer shape out along the
// gradient. Pairs without a symmetric Minkowski sum (two oriented boxes or
// capsules) run the reduction both ways and re-probe the tentative contact
// points to find the binding constraint.
package collide

import (
	"errors"
	"fmt"

	"github.com/akmonengine/minkowski/actor"
)

// ErrInvalidPair is returned for a combination of shape kinds that has no
// resolver.
var ErrInvalidPair = errors.New("invalid shape pair")

// Pair is one of the six supported (outer, center) kind combinations. The
// zero value PairNone is not a valid pair.
type Pair uint8

const (
	PairNone Pair = iota
	SphereSphere
	SphereBox
	SphereCapsule
	BoxBox
	CapsuleCapsule
	CapsuleBox

	pairCount
)

// Pairs lists the supported pairs in cycling order.
var Pairs = [...]Pair{SphereSphere, SphereBox, SphereCapsule, BoxBox, CapsuleCapsule, CapsuleBox}

var pairNames = [pairCount]string{
	PairNone:       "none",
	SphereSphere:   "sphere-sphere",
	SphereBox:      "sphere-box",
	SphereCapsule:  "sphere-capsule",
	BoxBox:         "box-box",
	CapsuleCapsule: "capsule-capsule",
	CapsuleBox:     "capsule-box",
}

func (p Pair) String() string {
	if p >= pairCount {
		return fmt.Sprintf("pair(%d)", uint8(p))
	}
	return pairNames[p]
}

// Valid reports whether p is one of the six supported pairs.
func (p Pair) Valid() bool {
	return p > PairNone && p < pairCount
}

// Kinds returns the outer and center kinds of the pair.
func (p Pair) Kinds() (outer, center actor.Kind) {
	switch p {
	case SphereSphere:
		return actor.KindSphere, actor.KindSphere
	case SphereBox:
		return actor.KindSphere, actor.KindBox
	case SphereCapsule:
		return actor.KindSphere, actor.KindCapsule
	case BoxBox:
		return actor.KindBox, actor.KindBox
	case CapsuleCapsule:
		return actor.KindCapsule, actor.KindCapsule
	case CapsuleBox:
		return actor.KindCapsule, actor.KindBox
	default:
		return actor.KindNone, actor.KindNone
	}
}

// Next returns the pair following p in the cycle
// sphere-sphere, sphere-box, sphere-capsule, box-box, capsule-capsule,
// capsule-box, back to sphere-sphere. An invalid pair restarts the cycle.
func (p Pair) Next() Pair {
	if !p.Valid() || p == CapsuleBox {
		return SphereSphere
	}
	return p + 1
}

// PairOf maps an (outer, center) kind combination to its pair.
func PairOf(outer, center actor.Kind) (Pair, error) {
	switch outer {
	case actor.KindSphere:
		switch center {
		case actor.KindSphere:
			return SphereSphere, nil
		case actor.KindBox:
			return SphereBox, nil
		case actor.KindCapsule:
			return SphereCapsule, nil
		}
	case actor.KindBox:
		if center == actor.KindBox {
			return BoxBox, nil
		}
	case actor.KindCapsule:
		switch center {
		case actor.KindCapsule:
			return CapsuleCapsule, nil
		case actor.KindBox:
			return CapsuleBox, nil
		}
	}

	return PairNone, fmt.Errorf("outer %s, center %s: %w", outer, center, ErrInvalidPair)
}

// ParsePair is the inverse of Pair.String.
func ParsePair(s string) (Pair, error) {
	for _, p := range Pairs {
		if pairNames[p] == s {
			return p, nil
		}
	}
	return PairNone, fmt.Errorf("unknown pair %q: %w", s, ErrInvalidPair)
}

// MarshalText implements encoding.TextMarshaler.
func (p Pair) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pair) UnmarshalText(text []byte) error {
	parsed, err := ParsePair(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

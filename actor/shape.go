package actor

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidShape is returned when half-extents and radius do not describe
// the declared kind.
var ErrInvalidShape = errors.New("invalid shape")

// Kind identifies one of the convex primitives. The zero value KindNone only
// exists before a pair of shapes has been chosen.
type Kind uint8

const (
	KindNone Kind = iota
	KindSphere
	KindBox
	KindCapsule
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindCapsule:
		return "capsule"
	default:
		return "none"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "sphere":
		return KindSphere, nil
	case "box":
		return KindBox, nil
	case "capsule":
		return KindCapsule, nil
	default:
		return KindNone, fmt.Errorf("unknown shape kind %q: %w", s, ErrInvalidShape)
	}
}

// Geometry is the parametrization shared by every kind: a core box of
// HalfExtents grown outward by Radius.
//   - Sphere: HalfExtents = 0, Radius > 0
//   - Box: HalfExtents > 0 on every axis, Radius >= 0 (rounding)
//   - Capsule: HalfExtents = (0, h, 0) with h the segment half-length, Radius > 0
type Geometry struct {
	HalfExtents mgl64.Vec3
	Radius      float64
}

// Sphere returns the geometry of a sphere.
func Sphere(radius float64) Geometry {
	return Geometry{Radius: radius}
}

// Box returns the geometry of a sharp box.
func Box(halfExtents mgl64.Vec3) Geometry {
	return Geometry{HalfExtents: halfExtents}
}

// Capsule returns the geometry of a capsule aligned with its local Y axis.
func Capsule(halfLength, radius float64) Geometry {
	return Geometry{HalfExtents: mgl64.Vec3{0, halfLength, 0}, Radius: radius}
}

// Validate checks the geometry against the parametrization of kind.
func (g Geometry) Validate(kind Kind) error {
	he := g.HalfExtents
	if he.X() < 0 || he.Y() < 0 || he.Z() < 0 || g.Radius < 0 {
		return fmt.Errorf("%s: negative dimension %v r=%v: %w", kind, he, g.Radius, ErrInvalidShape)
	}

	switch kind {
	case KindSphere:
		if he != (mgl64.Vec3{}) || g.Radius <= 0 {
			return fmt.Errorf("sphere needs zero half-extents and a positive radius: %w", ErrInvalidShape)
		}
	case KindBox:
		if he.X() <= 0 || he.Y() <= 0 || he.Z() <= 0 {
			return fmt.Errorf("box needs positive half-extents on every axis: %w", ErrInvalidShape)
		}
	case KindCapsule:
		if he.X() != 0 || he.Z() != 0 || he.Y() <= 0 || g.Radius <= 0 {
			return fmt.Errorf("capsule needs half-extents only on Y and a positive radius: %w", ErrInvalidShape)
		}
	default:
		return fmt.Errorf("kind %s has no geometry: %w", kind, ErrInvalidShape)
	}

	return nil
}

// Reach is the radius of the effective sphere standing in for a shape when
// the opposite shape is tested against it: the distance from the center to
// the farthest corner for a box, and half-length plus cap radius for a
// capsule.
func (g Geometry) Reach(kind Kind) float64 {
	switch kind {
	case KindBox:
		return g.HalfExtents.Len() + g.Radius
	case KindCapsule:
		return g.HalfExtents.Y() + g.Radius
	default:
		return g.Radius
	}
}

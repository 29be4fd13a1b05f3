package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3 `json:"min"`
	Max mgl64.Vec3 `json:"max"`
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Union returns the smallest AABB enclosing both boxes.
func (a AABB) Union(other AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{math.Min(a.Min[0], other.Min[0]), math.Min(a.Min[1], other.Min[1]), math.Min(a.Min[2], other.Min[2])},
		Max: mgl64.Vec3{math.Max(a.Max[0], other.Max[0]), math.Max(a.Max[1], other.Max[1]), math.Max(a.Max[2], other.Max[2])},
	}
}

// Center returns the midpoint of the box.
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the full extent along each axis.
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// AABB computes the world-space bounds of the shape: the rotated core box
// corners, grown by the radius on every axis.
func (s *ShapeState) AABB() AABB {
	he := s.HalfExtents
	rotation := s.Transform.Rotation()

	corners := [8]mgl64.Vec3{
		{-he.X(), -he.Y(), -he.Z()},
		{+he.X(), -he.Y(), -he.Z()},
		{-he.X(), +he.Y(), -he.Z()},
		{+he.X(), +he.Y(), -he.Z()},
		{-he.X(), -he.Y(), +he.Z()},
		{+he.X(), -he.Y(), +he.Z()},
		{-he.X(), +he.Y(), +he.Z()},
		{+he.X(), +he.Y(), +he.Z()},
	}

	first := rotation.Mul3x1(corners[0])
	min, max := first, first
	for _, corner := range corners[1:] {
		world := rotation.Mul3x1(corner)
		for i := range 3 {
			min[i] = math.Min(min[i], world[i])
			max[i] = math.Max(max[i], world[i])
		}
	}

	grow := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	position := s.Transform.Position

	return AABB{
		Min: position.Add(min).Sub(grow),
		Max: position.Add(max).Add(grow),
	}
}

package actor

import (
	"github.com/akmonengine/minkowski/sdf"
	"github.com/akmonengine/minkowski/vmath"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform represents a pose in 3D space.
// Angles are Euler angles in degrees, applied about X, then Y, then Z.
type Transform struct {
	Position mgl64.Vec3
	Angles   mgl64.Vec3
}

// NewTransform creates a transform at position with the given angles.
func NewTransform(position, angles mgl64.Vec3) Transform {
	return Transform{Position: position, Angles: angles}
}

// Rotation returns the local-to-world rotation matrix.
func (t Transform) Rotation() mgl64.Mat3 {
	return vmath.Euler(t.Angles)
}

// Frame returns the distance-query frame anchored at the transform.
func (t Transform) Frame() sdf.Frame {
	return sdf.Frame{Origin: t.Position, Rotation: t.Rotation()}
}

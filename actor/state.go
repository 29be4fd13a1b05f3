package actor

import (
	"github.com/akmonengine/minkowski/sdf"
	"github.com/go-gl/mathgl/mgl64"
)

// ShapeState is the rigid record of one primitive taking part in a pair.
type ShapeState struct {
	Kind      Kind
	Transform Transform

	// Velocity is expressed in the shape's local frame and rotated by the
	// current orientation when integrated.
	Velocity mgl64.Vec3
	// AngularVelocity is a per-axis rate in degrees per second added to
	// Transform.Angles; it is not a rotation vector.
	AngularVelocity mgl64.Vec3

	Geometry
}

// NewShapeState creates a shape at rest. The geometry is validated against
// kind.
func NewShapeState(kind Kind, transform Transform, geometry Geometry) (*ShapeState, error) {
	if err := geometry.Validate(kind); err != nil {
		return nil, err
	}

	return &ShapeState{
		Kind:      kind,
		Transform: transform,
		Geometry:  geometry,
	}, nil
}

// Integrate advances orientation, then position, by dt seconds. The linear
// velocity is rotated by the updated orientation. dt == 0 leaves the pose
// untouched.
func (s *ShapeState) Integrate(dt float64) {
	if dt == 0 {
		return
	}

	s.Transform.Angles = s.Transform.Angles.Add(s.AngularVelocity.Mul(dt))
	s.Transform.Position = s.Transform.Position.Add(s.WorldVelocity().Mul(dt))
}

// WorldVelocity returns the linear velocity rotated into world space.
func (s *ShapeState) WorldVelocity() mgl64.Vec3 {
	return s.Transform.Rotation().Mul3x1(s.Velocity)
}

// Stop zeroes both velocities.
func (s *ShapeState) Stop() {
	s.Velocity = mgl64.Vec3{}
	s.AngularVelocity = mgl64.Vec3{}
}

// Reach returns the effective sphere radius of the shape.
func (s *ShapeState) Reach() float64 {
	return s.Geometry.Reach(s.Kind)
}

// Distance returns the signed distance and world-space gradient from point
// to the shape's surface.
func (s *ShapeState) Distance(point mgl64.Vec3) sdf.Gradient {
	return s.Transform.Frame().ProbePoint(point, s.HalfExtents, s.Radius)
}

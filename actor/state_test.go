package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestShape(t *testing.T, kind Kind, geometry Geometry) *ShapeState {
	t.Helper()

	s, err := NewShapeState(kind, NewTransform(mgl64.Vec3{-2, 0, 0}, mgl64.Vec3{}), geometry)
	if err != nil {
		t.Fatalf("NewShapeState: %v", err)
	}
	return s
}

// =============================================================================
// NewShapeState Tests
// =============================================================================

func TestNewShapeState_AtRest(t *testing.T) {
	s := newTestShape(t, KindCapsule, Capsule(0.5, 0.5))

	if s.Kind != KindCapsule {
		t.Errorf("Kind = %v, want capsule", s.Kind)
	}
	if s.Velocity != (mgl64.Vec3{}) || s.AngularVelocity != (mgl64.Vec3{}) {
		t.Errorf("new shape should be at rest, got v=%v w=%v", s.Velocity, s.AngularVelocity)
	}
	if s.HalfExtents != (mgl64.Vec3{0, 0.5, 0}) || s.Radius != 0.5 {
		t.Errorf("geometry not set: %+v", s.Geometry)
	}
}

func TestNewShapeState_RejectsInvalidGeometry(t *testing.T) {
	if _, err := NewShapeState(KindBox, Transform{}, Sphere(1)); err == nil {
		t.Error("expected an error for a box with sphere geometry")
	}
}

// =============================================================================
// Integrate Tests
// =============================================================================

func TestIntegrate_ZeroTimeStep(t *testing.T) {
	s := newTestShape(t, KindSphere, Sphere(0.5))
	s.Transform.Angles = mgl64.Vec3{10, 20, 30}
	s.Velocity = mgl64.Vec3{5, -3, 2}
	s.AngularVelocity = mgl64.Vec3{80, 0, -80}

	before := s.Transform
	s.Integrate(0)

	if s.Transform != before {
		t.Errorf("Integrate(0) changed the pose: %+v -> %+v", before, s.Transform)
	}
}

func TestIntegrate_LinearNoRotation(t *testing.T) {
	s := newTestShape(t, KindSphere, Sphere(0.5))
	s.Velocity = mgl64.Vec3{0, 1, 0}

	s.Integrate(0.5)

	want := mgl64.Vec3{-2, 0.5, 0}
	if !vec3Equal(s.Transform.Position, want, 1e-12) {
		t.Errorf("Position = %v, want %v", s.Transform.Position, want)
	}
}

func TestIntegrate_AnglesPerAxis(t *testing.T) {
	s := newTestShape(t, KindBox, Box(mgl64.Vec3{0.5, 1, 0.5}))
	s.AngularVelocity = mgl64.Vec3{10, -20, 80}

	s.Integrate(0.25)

	want := mgl64.Vec3{2.5, -5, 20}
	if !vec3Equal(s.Transform.Angles, want, 1e-12) {
		t.Errorf("Angles = %v, want %v", s.Transform.Angles, want)
	}
}

// The local velocity is rotated by the orientation reached at the end of
// the step, not the one it started from.
func TestIntegrate_VelocityUsesUpdatedOrientation(t *testing.T) {
	s := newTestShape(t, KindCapsule, Capsule(0.5, 0.5))
	s.Velocity = mgl64.Vec3{0, 1, 0}
	s.AngularVelocity = mgl64.Vec3{0, 0, 90}

	s.Integrate(1)

	// Local +Y turned 90 degrees about Z points along world -X.
	want := mgl64.Vec3{-3, 0, 0}
	if !vec3Equal(s.Transform.Position, want, 1e-12) {
		t.Errorf("Position = %v, want %v", s.Transform.Position, want)
	}
}

func TestIntegrate_MultipleSteps(t *testing.T) {
	s := newTestShape(t, KindSphere, Sphere(0.5))
	s.Velocity = mgl64.Vec3{1, 0, 0}

	for range 10 {
		s.Integrate(0.1)
	}

	want := mgl64.Vec3{-1, 0, 0}
	if !vec3Equal(s.Transform.Position, want, 1e-9) {
		t.Errorf("Position = %v, want %v", s.Transform.Position, want)
	}
}

func TestShapeState_WorldVelocityAndStop(t *testing.T) {
	s := newTestShape(t, KindBox, Box(mgl64.Vec3{1, 1, 1}))
	s.Transform.Angles = mgl64.Vec3{0, 0, -90}
	s.Velocity = mgl64.Vec3{0, 1, 0}
	s.AngularVelocity = mgl64.Vec3{0, 0, 80}

	if got := s.WorldVelocity(); !vec3Equal(got, mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("WorldVelocity = %v, want (1,0,0)", got)
	}

	s.Stop()
	if s.Velocity != (mgl64.Vec3{}) || s.AngularVelocity != (mgl64.Vec3{}) {
		t.Errorf("Stop left v=%v w=%v", s.Velocity, s.AngularVelocity)
	}
}

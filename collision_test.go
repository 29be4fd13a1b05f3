package minkowski

import (
	"encoding/json"
	"testing"

	"github.com/akmonengine/minkowski/collide"
	"github.com/akmonengine/minkowski/constraint"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_Frame(t *testing.T) {
	w := newTestWorld(t, collide.SphereSphere)
	aimRight(w)
	require.NoError(t, w.Apply(Press(ActionOuterForward)))
	w.Step(1)

	f := w.Frame()

	assert.Equal(t, collide.SphereSphere, f.Pair)
	assert.Equal(t, "sphere", f.Outer.Kind)
	assert.Equal(t, 0.5, f.Outer.Radius)
	assert.Equal(t, 0.7, f.Center.Radius)
	assert.Equal(t, w.Outer.Transform.Position, f.Outer.Position)
	assert.Equal(t, w.Outer.AABB(), f.Outer.Bounds)
	assert.True(t, f.Center.Bounds.ContainsPoint(mgl64.Vec3{0.7, 0, 0}))
	assert.Equal(t, w.Manifold.Contacts, f.Contacts)
	assert.InDelta(t, 1.2, f.Minkowski.Radius, delta)
	assert.True(t, f.Colliding)
	assert.Equal(t, 1.0, f.Time)
	assert.Equal(t, 1.0, f.DeltaTime)
}

func TestWorld_FrameIsACopy(t *testing.T) {
	w := newTestWorld(t, collide.BoxBox)
	f := w.Frame()

	w.Outer.Transform.Position = mgl64.Vec3{9, 9, 9}
	w.Manifold.Contacts[constraint.ContactSum] = mgl64.Vec3{9, 9, 9}

	assert.Equal(t, mgl64.Vec3{-2, 0, 0}, f.Outer.Position)
	assert.Equal(t, mgl64.Vec3{-2, 0, 0}, f.Contacts[constraint.ContactSum])
}

func TestFrame_JSON(t *testing.T) {
	w := newTestWorld(t, collide.CapsuleBox)
	w.Step(0.5)

	out, err := json.Marshal(w.Frame())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "capsule-box", decoded["pair"])
	assert.Equal(t, 0.5, decoded["dt"])
	assert.Len(t, decoded["contacts"], constraint.MaxContacts)

	outer := decoded["outer"].(map[string]any)
	assert.Equal(t, "capsule", outer["kind"])
	assert.Contains(t, outer["bounds"], "min")
	assert.Equal(t, []any{-2.0, 0.0, 0.0}, outer["position"])
}

func TestFrame_DigestIgnoresClock(t *testing.T) {
	w := newTestWorld(t, collide.SphereBox)

	w.Step(0.1)
	first := w.Frame()
	w.Step(0.3)
	second := w.Frame()

	assert.NotEqual(t, first.Time, second.Time)
	assert.Equal(t, first.Digest(), second.Digest())
}

func TestFrame_DigestTracksGeometry(t *testing.T) {
	w := newTestWorld(t, collide.SphereBox)
	w.Step(0.1)
	before := w.Frame().Digest()

	require.NoError(t, w.Apply(Press(ActionOuterForward)))
	w.Step(0.1)
	assert.NotEqual(t, before, w.Frame().Digest())

	other := newTestWorld(t, collide.SphereCapsule)
	other.Step(0.1)
	assert.NotEqual(t, before, other.Frame().Digest())
}

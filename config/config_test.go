package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/collide"
	"github.com/akmonengine/minkowski/internal/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	assert.Equal(t, collide.SphereSphere, c.Pair)
	assert.Equal(t, log.LevelInfo, c.Level())
}

func TestDefault_StockPoses(t *testing.T) {
	c := Default()

	outer, err := c.Outer.Build(actor.KindBox)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{-2, 0, 0}, outer.Transform.Position)
	assert.Equal(t, mgl64.Vec3{0.5, 1, 0.5}, outer.HalfExtents)

	center, err := c.Center.Build(actor.KindCapsule)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{}, center.Transform.Position)
	assert.Equal(t, mgl64.Vec3{45, 0, 40}, center.Transform.Angles)
	assert.Equal(t, 0.7, center.Radius)

	sphere, err := c.Center.Build(actor.KindSphere)
	require.NoError(t, err)
	assert.Equal(t, 0.7, sphere.Radius)

	assert.Equal(t, 1.0, c.Controls.LinearSpeed)
	assert.Equal(t, 80.0, c.Controls.AngularSpeed)
}

func TestLoadYAML_Overrides(t *testing.T) {
	doc := `
pair: capsule-box
center:
  box:
    half_extents: [1, 2, 3]
    angles: [0, 0, 30]
controls:
  angular_speed: 45
log_level: debug
`
	c, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, collide.CapsuleBox, c.Pair)
	assert.Equal(t, Vec3{1, 2, 3}, c.Center.Box.HalfExtents)
	assert.Equal(t, Vec3{0, 0, 30}, c.Center.Box.Angles)
	assert.Equal(t, 45.0, c.Controls.AngularSpeed)
	assert.Equal(t, log.LevelDebug, c.Level())

	// Untouched keys keep their defaults.
	assert.Equal(t, 1.0, c.Controls.LinearSpeed)
	assert.Equal(t, 0.5, c.Outer.Sphere.Radius)
	assert.Equal(t, 60, c.Server.FrameRate)
}

func TestLoadYAML_Empty(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadYAML_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown pair":     "pair: box-sphere\n",
		"unknown key":      "gravity: 9.81\n",
		"flat sphere":      "outer:\n  sphere:\n    half_extents: [1, 0, 0]\n",
		"bent capsule":     "center:\n  capsule:\n    half_extents: [0.1, 0.5, 0]\n",
		"zero frame rate":  "server:\n  frame_rate: 0\n",
		"negative speed":   "controls:\n  linear_speed: -1\n",
		"no workers":       "workers: 0\n",
		"bad log level":    "log_level: loud\n",
		"short vector":     "outer:\n  box:\n    position: [1, 2]\n",
		"malformed yaml":   "pair: [\n",
		"negative radius":  "center:\n  sphere:\n    radius: -0.7\n",
		"box without size": "outer:\n  box:\n    half_extents: [0, 1, 1]\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pair: box-box\nworkers: 2\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, collide.BoxBox, c.Pair)
	assert.Equal(t, 2, c.Workers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_RoundTrip(t *testing.T) {
	c := Default()
	c.Pair = collide.SphereCapsule
	c.Center.Sphere.Radius = 1.5

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), "pair: sphere-capsule")

	back, err := LoadYAML(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestPresets_ForUnknownKind(t *testing.T) {
	_, err := Default().Outer.For(actor.KindNone)
	assert.ErrorIs(t, err, actor.ErrInvalidShape)
}

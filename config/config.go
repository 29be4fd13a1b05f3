// Package config loads the scene presets, controls and server settings from
// YAML. Default reproduces the stock scene; a file only needs the keys it
// overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/collide"
	"github.com/akmonengine/minkowski/internal/log"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Vec3 is written as a [x, y, z] sequence.
type Vec3 [3]float64

func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

// Shape is the initial state of one shape.
type Shape struct {
	HalfExtents Vec3    `json:"half_extents" yaml:"half_extents"`
	Radius      float64 `json:"radius" yaml:"radius"`
	Position    Vec3    `json:"position" yaml:"position"`
	// Angles in degrees.
	Angles Vec3 `json:"angles" yaml:"angles"`
}

func (s Shape) Geometry() actor.Geometry {
	return actor.Geometry{HalfExtents: s.HalfExtents.Vec(), Radius: s.Radius}
}

func (s Shape) Transform() actor.Transform {
	return actor.NewTransform(s.Position.Vec(), s.Angles.Vec())
}

// Build creates a shape of the given kind at rest.
func (s Shape) Build(kind actor.Kind) (*actor.ShapeState, error) {
	return actor.NewShapeState(kind, s.Transform(), s.Geometry())
}

// Presets holds one initial state per kind for a role (outer or center).
type Presets struct {
	Sphere  Shape `json:"sphere" yaml:"sphere"`
	Box     Shape `json:"box" yaml:"box"`
	Capsule Shape `json:"capsule" yaml:"capsule"`
}

// For returns the preset of kind.
func (p Presets) For(kind actor.Kind) (Shape, error) {
	switch kind {
	case actor.KindSphere:
		return p.Sphere, nil
	case actor.KindBox:
		return p.Box, nil
	case actor.KindCapsule:
		return p.Capsule, nil
	default:
		return Shape{}, fmt.Errorf("no preset for %s: %w", kind, actor.ErrInvalidShape)
	}
}

// Build creates the shape of kind from its preset.
func (p Presets) Build(kind actor.Kind) (*actor.ShapeState, error) {
	shape, err := p.For(kind)
	if err != nil {
		return nil, err
	}
	return shape.Build(kind)
}

// Controls are the magnitudes written by velocity commands.
type Controls struct {
	// LinearSpeed in units per second along the outer shape's local Y.
	LinearSpeed float64 `json:"linear_speed" yaml:"linear_speed"`
	// AngularSpeed in degrees per second about Z.
	AngularSpeed float64 `json:"angular_speed" yaml:"angular_speed"`
}

type Server struct {
	Addr      string `json:"addr" yaml:"addr"`
	FrameRate int    `json:"frame_rate" yaml:"frame_rate"`
	// SkipUnchanged suppresses frames whose geometry matches the last one
	// sent.
	SkipUnchanged bool `json:"skip_unchanged" yaml:"skip_unchanged"`
}

type Config struct {
	// Pair selected at startup.
	Pair     collide.Pair `json:"pair" yaml:"pair"`
	Outer    Presets      `json:"outer" yaml:"outer"`
	Center   Presets      `json:"center" yaml:"center"`
	Controls Controls     `json:"controls" yaml:"controls"`
	Server   Server       `json:"server" yaml:"server"`
	// Workers bounds the goroutines stepping a gallery.
	Workers  int    `json:"workers" yaml:"workers"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Default returns the stock scene: every outer shape starts two units to
// the left of a center shape at the origin.
func Default() *Config {
	start := Vec3{-2, 0, 0}

	return &Config{
		Pair: collide.SphereSphere,
		Outer: Presets{
			Sphere:  Shape{Radius: 0.5, Position: start},
			Box:     Shape{HalfExtents: Vec3{0.5, 1, 0.5}, Position: start},
			Capsule: Shape{HalfExtents: Vec3{0, 0.5, 0}, Radius: 0.5, Position: start},
		},
		Center: Presets{
			Sphere:  Shape{Radius: 0.7},
			Box:     Shape{HalfExtents: Vec3{0.7, 1, 0.5}, Angles: Vec3{45, 0, 90}},
			Capsule: Shape{HalfExtents: Vec3{0, 0.5, 0}, Radius: 0.7, Angles: Vec3{45, 0, 40}},
		},
		Controls: Controls{LinearSpeed: 1, AngularSpeed: 80},
		Server: Server{
			Addr:          ":8080",
			FrameRate:     60,
			SkipUnchanged: true,
		},
		Workers:  len(collide.Pairs),
		LogLevel: "info",
	}
}

// Load reads a YAML file over Default and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// LoadYAML is Load for an already opened document. An empty document yields
// Default.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w: %w", ErrInvalidConfig, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every preset against its kind and the scalar settings.
func (c *Config) Validate() error {
	if !c.Pair.Valid() {
		return fmt.Errorf("pair %s: %w", c.Pair, ErrInvalidConfig)
	}

	roles := []struct {
		name    string
		presets Presets
	}{
		{"outer", c.Outer},
		{"center", c.Center},
	}
	for _, role := range roles {
		for _, kind := range []actor.Kind{actor.KindSphere, actor.KindBox, actor.KindCapsule} {
			shape, _ := role.presets.For(kind)
			if err := shape.Geometry().Validate(kind); err != nil {
				return fmt.Errorf("%s %s: %w: %w", role.name, kind, ErrInvalidConfig, err)
			}
		}
	}

	if c.Controls.LinearSpeed < 0 || c.Controls.AngularSpeed < 0 {
		return fmt.Errorf("controls must not be negative: %w", ErrInvalidConfig)
	}
	if c.Server.FrameRate <= 0 {
		return fmt.Errorf("frame rate %d: %w", c.Server.FrameRate, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Level returns the parsed log level. It assumes Validate succeeded.
func (c *Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// Package minkowski drives a two-shape collision scene: an outer shape the
// user moves and a center shape it is pushed out of. Each Step integrates
// both shapes, resolves the pair with a rounded-box distance field and
// publishes the resulting contact manifold.
package minkowski

import (
	"fmt"

	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/collide"
	"github.com/akmonengine/minkowski/config"
	"github.com/akmonengine/minkowski/constraint"
	"github.com/akmonengine/minkowski/internal/log"
	"github.com/akmonengine/minkowski/vmath"
)

type World struct {
	// Outer is moved by commands and corrected by the resolver.
	Outer *actor.ShapeState
	// Center only moves through its own velocities.
	Center *actor.ShapeState
	Pair   collide.Pair

	// Manifold of the last Step.
	Manifold constraint.Manifold
	// Time is the sum of every dt passed to Step; LastDT the latest one.
	Time   float64
	LastDT float64
	Frames uint64

	Events Events

	outerPresets  config.Presets
	centerPresets config.Presets
	controls      config.Controls
	logger        log.Log
}

type Option func(*World)

// WithLogger sets the logger used for pair changes, resets and contacts.
func WithLogger(logger log.Log) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// NewWorld creates the scene of cfg.Pair with shapes built from cfg's
// presets.
func NewWorld(cfg *config.Config, opts ...Option) (*World, error) {
	w := &World{
		Events:        NewEvents(),
		outerPresets:  cfg.Outer,
		centerPresets: cfg.Center,
		controls:      cfg.Controls,
		logger:        log.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.build(cfg.Pair); err != nil {
		return nil, err
	}
	return w, nil
}

// Step advances the scene by dt seconds: integrate, resolve, then flush
// events. dt is used as given.
func (w *World) Step(dt float64) {
	w.Time += dt
	w.LastDT = dt
	w.Frames++

	// Phase 1: Integrate both shapes
	// Phase 2: Resolve the pair, correcting the outer shape
	m, err := collide.Step(w.Outer, w.Center, dt)
	if err != nil {
		// Pairs are validated on selection; a failure means the shapes
		// were swapped out from under the world.
		w.logger.Error("resolve failed", log.Stringer("pair", w.Pair), log.Error(err))
		return
	}
	w.Manifold = m
	if !vmath.IsFinite(w.Outer.Transform.Position) {
		// Degenerate geometry or a non-finite dt; the world keeps running.
		w.logger.Warn("outer position is not finite", log.Stringer("pair", w.Pair), log.Float64("dt", dt))
	}

	// Phase 3: Events
	w.trackContact(m)
	w.Events.recordContact(w.Pair, m)
	w.Events.flush()
}

func (w *World) trackContact(m constraint.Manifold) {
	if m.Colliding() == w.Events.previousColliding {
		return
	}

	if m.Colliding() {
		w.logger.Debug("collision enter",
			log.Stringer("pair", w.Pair),
			log.Float64("distance", m.Distance),
			log.Float64("time", w.Time),
		)
	} else {
		w.logger.Debug("collision exit", log.Stringer("pair", w.Pair), log.Float64("time", w.Time))
	}
}

// SelectPair replaces both shapes with the presets of p. The clock keeps
// running.
func (w *World) SelectPair(p collide.Pair) error {
	from := w.Pair
	if err := w.build(p); err != nil {
		return err
	}

	w.Events.emitPairChanged(from, p)
	w.logger.Info("pair changed", log.Stringer("from", from), log.Stringer("to", p))

	return nil
}

// CyclePair selects the pair following the current one.
func (w *World) CyclePair() error {
	return w.SelectPair(w.Pair.Next())
}

// Reset rebuilds the current pair from its presets, at rest.
func (w *World) Reset() error {
	if err := w.build(w.Pair); err != nil {
		return err
	}

	w.Events.emitReset(w.Pair)
	w.logger.Info("reset", log.Stringer("pair", w.Pair))

	return nil
}

func (w *World) build(p collide.Pair) error {
	if !p.Valid() {
		return fmt.Errorf("select %s: %w", p, collide.ErrInvalidPair)
	}

	outerKind, centerKind := p.Kinds()

	outer, err := w.outerPresets.Build(outerKind)
	if err != nil {
		return fmt.Errorf("outer %s: %w", outerKind, err)
	}
	center, err := w.centerPresets.Build(centerKind)
	if err != nil {
		return fmt.Errorf("center %s: %w", centerKind, err)
	}

	// Resolve the fresh pose once, as a step of zero length would, so the
	// manifold describes the new scene before the first Step.
	m, err := collide.Resolve(outer, center)
	if err != nil {
		return fmt.Errorf("select %s: %w", p, err)
	}

	w.Outer, w.Center, w.Pair = outer, center, p
	w.Manifold = m

	return nil
}

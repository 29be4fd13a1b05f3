package minkowski

import (
	"github.com/akmonengine/minkowski/collide"
	"github.com/akmonengine/minkowski/config"
)

const DEFAULT_WORKERS = 1

// Gallery runs one independent world per pair. Worlds never interact, so
// they are stepped concurrently; each world is only ever touched by one
// goroutine at a time.
type Gallery struct {
	Worlds  []*World
	Workers int
}

// NewGallery builds a world for every pair, in cycling order.
func NewGallery(cfg *config.Config, opts ...Option) (*Gallery, error) {
	g := &Gallery{
		Worlds:  make([]*World, 0, len(collide.Pairs)),
		Workers: cfg.Workers,
	}

	for _, p := range collide.Pairs {
		pairCfg := *cfg
		pairCfg.Pair = p

		w, err := NewWorld(&pairCfg, opts...)
		if err != nil {
			return nil, err
		}
		g.Worlds = append(g.Worlds, w)
	}

	return g, nil
}

// Step advances every world by dt.
func (g *Gallery) Step(dt float64) {
	_ = task(g.Workers, g.Worlds, func(w *World) error {
		w.Step(dt)
		return nil
	})
}

// Apply sends cmd to every world. Every world receives the command even
// when some of them reject it.
func (g *Gallery) Apply(cmd Command) error {
	return task(g.Workers, g.Worlds, func(w *World) error {
		return w.Apply(cmd)
	})
}

// Frames snapshots every world.
func (g *Gallery) Frames() []Frame {
	frames := make([]Frame, len(g.Worlds))
	for i, w := range g.Worlds {
		frames[i] = w.Frame()
	}
	return frames
}

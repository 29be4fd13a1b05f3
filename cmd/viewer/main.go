// Command viewer draws a collision scene in the terminal and lets the
// keyboard drive it.
//
//	arrows   move and turn the outer shape
//	q / e    turn the center shape
//	space    next pair
//	r        reset the pair
//	esc      quit
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/akmonengine/minkowski"
	"github.com/akmonengine/minkowski/collide"
	"github.com/akmonengine/minkowski/config"
	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond
	// Terminals report presses only. A held key repeats its press faster
	// than this, so a key is released once it stops repeating.
	holdTimeout = 150 * time.Millisecond
)

type Viewer struct {
	screen tcell.Screen
	world  *minkowski.World
	audio  *beeper

	held     map[minkowski.Action]time.Time
	lastTick time.Time
	status   string
}

func NewViewer(cfg *config.Config) (*Viewer, error) {
	world, err := minkowski.NewWorld(cfg)
	if err != nil {
		return nil, err
	}

	audio := newBeeper()
	if err := audio.init(); err != nil {
		// Non-fatal, the scene runs without sound.
		fmt.Fprintf(os.Stderr, "audio initialization failed: %v\n", err)
	}
	world.Events.Subscribe(minkowski.COLLISION_ENTER, func(minkowski.Event) {
		audio.hit()
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		audio.close()
		return nil, err
	}
	if err := screen.Init(); err != nil {
		audio.close()
		return nil, err
	}

	return &Viewer{
		screen: screen,
		world:  world,
		audio:  audio,
		held:   make(map[minkowski.Action]time.Time),
	}, nil
}

var keyActions = map[tcell.Key]minkowski.Action{
	tcell.KeyUp:    minkowski.ActionOuterForward,
	tcell.KeyDown:  minkowski.ActionOuterBackward,
	tcell.KeyLeft:  minkowski.ActionOuterTurnLeft,
	tcell.KeyRight: minkowski.ActionOuterTurnRight,
}

var runeActions = map[rune]minkowski.Action{
	'q': minkowski.ActionCenterTurnLeft,
	'e': minkowski.ActionCenterTurnRight,
}

// handleInput returns false when the viewer should quit.
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		if action, ok := keyActions[ev.Key()]; ok {
			v.hold(action)
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		if action, ok := runeActions[ev.Rune()]; ok {
			v.hold(action)
			return true
		}

		switch ev.Rune() {
		case ' ':
			v.apply(minkowski.Release(minkowski.ActionCyclePair))
		case 'r':
			v.apply(minkowski.Release(minkowski.ActionReset))
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

// hold presses action, or extends the hold while the key repeats.
func (v *Viewer) hold(action minkowski.Action) {
	if _, ok := v.held[action]; !ok {
		v.apply(minkowski.Press(action))
	}
	v.held[action] = time.Now().Add(holdTimeout)
}

func (v *Viewer) releaseExpired(now time.Time) {
	for action, deadline := range v.held {
		if now.After(deadline) {
			delete(v.held, action)
			v.apply(minkowski.Release(action))
		}
	}
}

func (v *Viewer) apply(cmd minkowski.Command) {
	if err := v.world.Apply(cmd); err != nil {
		v.status = err.Error()
		return
	}
	v.status = ""
}

func (v *Viewer) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	v.lastTick = time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			v.releaseExpired(now)
			v.world.Step(now.Sub(v.lastTick).Seconds())
			v.lastTick = now
			v.draw()
		}
	}
}

func (v *Viewer) cleanup() {
	v.audio.close()
	v.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	pair := flag.String("pair", "", "starting pair, overrides the config")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *pair)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewer: %v\n", err)
		os.Exit(1)
	}

	viewer, err := NewViewer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}

func loadConfig(path, pair string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if pair != "" {
		p, err := collide.ParsePair(pair)
		if err != nil {
			return nil, err
		}
		cfg.Pair = p
	}
	return cfg, nil
}

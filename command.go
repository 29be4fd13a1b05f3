package minkowski

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned for an action name or value with no binding.
var ErrUnknownAction = errors.New("unknown action")

// Action is a discrete control. Velocity actions hold while pressed and
// zero their component on release; Reset and CyclePair fire on release.
type Action uint8

const (
	ActionNone Action = iota
	// ActionOuterForward and ActionOuterBackward drive the outer shape along
	// its local Y axis.
	ActionOuterForward
	ActionOuterBackward
	// Turn actions spin about Z, left being counter-clockwise.
	ActionOuterTurnLeft
	ActionOuterTurnRight
	ActionCenterTurnLeft
	ActionCenterTurnRight
	ActionReset
	ActionCyclePair

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:            "none",
	ActionOuterForward:    "outer-forward",
	ActionOuterBackward:   "outer-backward",
	ActionOuterTurnLeft:   "outer-turn-left",
	ActionOuterTurnRight:  "outer-turn-right",
	ActionCenterTurnLeft:  "center-turn-left",
	ActionCenterTurnRight: "center-turn-right",
	ActionReset:           "reset",
	ActionCyclePair:       "cycle-pair",
}

func (a Action) String() string {
	if a >= actionCount {
		return fmt.Sprintf("action(%d)", uint8(a))
	}
	return actionNames[a]
}

func ParseAction(s string) (Action, error) {
	for a := ActionOuterForward; a < actionCount; a++ {
		if actionNames[a] == s {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("%q: %w", s, ErrUnknownAction)
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Command is a press or a release of an action.
type Command struct {
	Action  Action `json:"action"`
	Pressed bool   `json:"pressed"`
}

// Press and Release build commands.
func Press(a Action) Command   { return Command{Action: a, Pressed: true} }
func Release(a Action) Command { return Command{Action: a} }

// Apply executes cmd against the world. Velocity changes take effect at the
// next Step.
func (w *World) Apply(cmd Command) error {
	linear := w.controls.LinearSpeed
	angular := w.controls.AngularSpeed

	switch cmd.Action {
	case ActionOuterForward:
		w.Outer.Velocity[1] = held(cmd, linear)
	case ActionOuterBackward:
		w.Outer.Velocity[1] = held(cmd, -linear)
	case ActionOuterTurnLeft:
		w.Outer.AngularVelocity[2] = held(cmd, angular)
	case ActionOuterTurnRight:
		w.Outer.AngularVelocity[2] = held(cmd, -angular)
	case ActionCenterTurnLeft:
		w.Center.AngularVelocity[2] = held(cmd, angular)
	case ActionCenterTurnRight:
		w.Center.AngularVelocity[2] = held(cmd, -angular)
	case ActionReset:
		if !cmd.Pressed {
			return w.Reset()
		}
	case ActionCyclePair:
		if !cmd.Pressed {
			return w.CyclePair()
		}
	default:
		return fmt.Errorf("%s: %w", cmd.Action, ErrUnknownAction)
	}

	return nil
}

// held returns v while the command is pressed. A release zeroes the
// component whichever direction was held.
func held(cmd Command, v float64) float64 {
	if cmd.Pressed {
		return v
	}
	return 0
}

package server

import (
	"encoding/json"
	"fmt"

	"github.com/akmonengine/minkowski"
)

// Message types sent to clients.
const (
	TypeHello = "hello"
	TypeFrame = "frame"
	TypeEvent = "event"
	TypeError = "error"
)

// Message is the envelope of everything written to a client.
type Message struct {
	Type   string           `json:"type"`
	Client string           `json:"client,omitempty"`
	Frame  *minkowski.Frame `json:"frame,omitempty"`
	Event  string           `json:"event,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// decodeCommand parses a client message. A command must name an action.
func decodeCommand(data []byte) (minkowski.Command, error) {
	var cmd minkowski.Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return cmd, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	if cmd.Action == minkowski.ActionNone {
		return cmd, fmt.Errorf("%w: missing action", ErrInvalidMessage)
	}
	return cmd, nil
}

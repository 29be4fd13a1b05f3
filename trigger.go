package minkowski

import (
	"github.com/akmonengine/minkowski/collide"
	"github.com/akmonengine/minkowski/constraint"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
	PAIR_CHANGED
	RESET
)

type EventType uint8

func (t EventType) String() string {
	switch t {
	case COLLISION_ENTER:
		return "collision_enter"
	case COLLISION_STAY:
		return "collision_stay"
	case COLLISION_EXIT:
		return "collision_exit"
	case PAIR_CHANGED:
		return "pair_changed"
	case RESET:
		return "reset"
	default:
		return "unknown"
	}
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Collision events carry the manifold of the frame that raised them.
type CollisionEnterEvent struct {
	Pair     collide.Pair
	Manifold constraint.Manifold
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	Pair     collide.Pair
	Manifold constraint.Manifold
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	Pair     collide.Pair
	Manifold constraint.Manifold
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

type PairChangedEvent struct {
	From collide.Pair
	To   collide.Pair
}

func (e PairChangedEvent) Type() EventType { return PAIR_CHANGED }

type ResetEvent struct {
	Pair collide.Pair
}

func (e ResetEvent) Type() EventType { return RESET }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Contact tracking for Enter/Stay/Exit detection
	previousColliding bool
	currentColliding  bool
	pair              collide.Pair
	manifold          constraint.Manifold
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 8),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordContact is called once per step with the resolved manifold.
func (e *Events) recordContact(pair collide.Pair, m constraint.Manifold) {
	e.currentColliding = m.Colliding()
	e.pair = pair
	e.manifold = m
}

func (e *Events) emitPairChanged(from, to collide.Pair) {
	e.buffer = append(e.buffer, PairChangedEvent{From: from, To: to})
	e.forgetContact()
}

func (e *Events) emitReset(pair collide.Pair) {
	e.buffer = append(e.buffer, ResetEvent{Pair: pair})
	e.forgetContact()
}

// forgetContact drops the tracked state: fresh shapes start separated and
// raise no exit for the contact they replaced.
func (e *Events) forgetContact() {
	e.previousColliding = false
	e.currentColliding = false
}

// processCollisionEvents compares current and previous contact to detect
// Enter/Stay/Exit. Should be called once per step.
func (e *Events) processCollisionEvents() {
	switch {
	case e.currentColliding && e.previousColliding:
		e.buffer = append(e.buffer, CollisionStayEvent{Pair: e.pair, Manifold: e.manifold})
	case e.currentColliding:
		e.buffer = append(e.buffer, CollisionEnterEvent{Pair: e.pair, Manifold: e.manifold})
	case e.previousColliding:
		e.buffer = append(e.buffer, CollisionExitEvent{Pair: e.pair, Manifold: e.manifold})
	}

	e.previousColliding = e.currentColliding
	e.currentColliding = false
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processCollisionEvents()

	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}

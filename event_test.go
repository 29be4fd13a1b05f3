package minkowski

import (
	"testing"

	"github.com/akmonengine/minkowski/collide"
	"github.com/akmonengine/minkowski/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

func touching() constraint.Manifold {
	return constraint.Manifold{Distance: -0.1, Normal: mgl64.Vec3{-1, 0, 0}}
}

func apart() constraint.Manifold {
	return constraint.Manifold{Distance: 0.4, Normal: mgl64.Vec3{-1, 0, 0}}
}

type eventCapture struct {
	events []Event
}

func (ec *eventCapture) capture(event Event) {
	ec.events = append(ec.events, event)
}

func (ec *eventCapture) reset() {
	ec.events = ec.events[:0]
}

func (ec *eventCapture) count() int {
	return len(ec.events)
}

func (ec *eventCapture) types() []EventType {
	types := make([]EventType, len(ec.events))
	for i, e := range ec.events {
		types[i] = e.Type()
	}
	return types
}

func (ec *eventCapture) hasEventType(eventType EventType) bool {
	for _, e := range ec.events {
		if e.Type() == eventType {
			return true
		}
	}
	return false
}

func subscribeAll(events *Events, capture *eventCapture) {
	for _, t := range []EventType{COLLISION_ENTER, COLLISION_STAY, COLLISION_EXIT, PAIR_CHANGED, RESET} {
		events.Subscribe(t, capture.capture)
	}
}

// =============================================================================
// Subscribe and Listeners Tests
// =============================================================================

func TestEvents_Subscribe(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}

	events.Subscribe(COLLISION_ENTER, capture.capture)

	if len(events.listeners[COLLISION_ENTER]) != 1 {
		t.Errorf("Expected 1 listener for COLLISION_ENTER, got %d", len(events.listeners[COLLISION_ENTER]))
	}
}

func TestEvents_SubscribeOnZeroValue(t *testing.T) {
	var events Events
	capture := &eventCapture{}

	events.Subscribe(RESET, capture.capture)
	events.emitReset(collide.BoxBox)
	events.flush()

	if capture.count() != 1 {
		t.Fatalf("Expected 1 event, got %d", capture.count())
	}
}

func TestEvents_MultipleListeners(t *testing.T) {
	events := NewEvents()
	first := &eventCapture{}
	second := &eventCapture{}

	events.Subscribe(COLLISION_ENTER, first.capture)
	events.Subscribe(COLLISION_ENTER, second.capture)

	events.recordContact(collide.SphereSphere, touching())
	events.flush()

	if first.count() != 1 || second.count() != 1 {
		t.Errorf("Expected both listeners called once, got %d and %d", first.count(), second.count())
	}
}

func TestEvents_OnlySubscribedTypes(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(COLLISION_EXIT, capture.capture)

	events.recordContact(collide.SphereSphere, touching())
	events.flush()

	if capture.count() != 0 {
		t.Errorf("Expected no events, got %v", capture.types())
	}
}

// =============================================================================
// Enter / Stay / Exit Tests
// =============================================================================

func TestEvents_EnterStayExit(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	steps := []struct {
		manifold constraint.Manifold
		want     []EventType
	}{
		{apart(), []EventType{}},
		{touching(), []EventType{COLLISION_ENTER}},
		{touching(), []EventType{COLLISION_STAY}},
		{touching(), []EventType{COLLISION_STAY}},
		{apart(), []EventType{COLLISION_EXIT}},
		{apart(), []EventType{}},
	}

	for i, step := range steps {
		capture.reset()
		events.recordContact(collide.SphereBox, step.manifold)
		events.flush()

		got := capture.types()
		if len(got) != len(step.want) {
			t.Fatalf("step %d: got %v, want %v", i, got, step.want)
		}
		for j := range got {
			if got[j] != step.want[j] {
				t.Fatalf("step %d: got %v, want %v", i, got, step.want)
			}
		}
	}
}

func TestEvents_EnterCarriesManifold(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(COLLISION_ENTER, capture.capture)

	m := touching()
	m.Contacts[constraint.ContactSum] = mgl64.Vec3{-1.2, 0, 0}
	events.recordContact(collide.CapsuleBox, m)
	events.flush()

	if capture.count() != 1 {
		t.Fatalf("Expected 1 event, got %d", capture.count())
	}
	enter, ok := capture.events[0].(CollisionEnterEvent)
	if !ok {
		t.Fatalf("Expected CollisionEnterEvent, got %T", capture.events[0])
	}
	if enter.Pair != collide.CapsuleBox {
		t.Errorf("Pair = %v, want capsule-box", enter.Pair)
	}
	if enter.Manifold != m {
		t.Errorf("Manifold = %+v, want %+v", enter.Manifold, m)
	}
}

func TestEvents_TouchingCountsAsContact(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(COLLISION_ENTER, capture.capture)

	events.recordContact(collide.SphereSphere, constraint.Manifold{Distance: 0})
	events.flush()

	if !capture.hasEventType(COLLISION_ENTER) {
		t.Error("Expected COLLISION_ENTER for zero distance")
	}
}

// =============================================================================
// Pair change / Reset Tests
// =============================================================================

func TestEvents_PairChangedForgetsContact(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	events.recordContact(collide.SphereSphere, touching())
	events.flush()
	capture.reset()

	events.emitPairChanged(collide.SphereSphere, collide.SphereBox)
	events.recordContact(collide.SphereBox, apart())
	events.flush()

	if capture.hasEventType(COLLISION_EXIT) {
		t.Errorf("Expected no exit after a pair change, got %v", capture.types())
	}
	if capture.count() != 1 {
		t.Fatalf("Expected only PAIR_CHANGED, got %v", capture.types())
	}

	changed := capture.events[0].(PairChangedEvent)
	if changed.From != collide.SphereSphere || changed.To != collide.SphereBox {
		t.Errorf("PairChangedEvent = %+v", changed)
	}
}

func TestEvents_ResetThenContactIsEnter(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	events.recordContact(collide.BoxBox, touching())
	events.flush()
	capture.reset()

	events.emitReset(collide.BoxBox)
	events.recordContact(collide.BoxBox, touching())
	events.flush()

	got := capture.types()
	if len(got) != 2 || got[0] != RESET || got[1] != COLLISION_ENTER {
		t.Errorf("got %v, want [RESET COLLISION_ENTER]", got)
	}
}

func TestEvents_FlushClearsBuffer(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(RESET, capture.capture)

	events.emitReset(collide.SphereSphere)
	events.flush()
	events.flush()

	if capture.count() != 1 {
		t.Errorf("Expected 1 event over two flushes, got %d", capture.count())
	}
	if len(events.buffer) != 0 {
		t.Errorf("Expected empty buffer, got %d", len(events.buffer))
	}
}

func TestEventType_String(t *testing.T) {
	if COLLISION_STAY.String() != "collision_stay" {
		t.Errorf("COLLISION_STAY.String() = %q", COLLISION_STAY.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("EventType(99).String() = %q", EventType(99).String())
	}
}

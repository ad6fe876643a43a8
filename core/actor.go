package core

import "fmt"

// Behavior is the reaction strategy currently installed on an actor. React
// consumes one event and either returns the staged Effect describing every
// side effect the reaction wants (possibly none), or a non-nil error marking
// the whole reaction as failed.
//
// React must be a pure function of the event and the behavior's own captured
// state: it must not mutate other actors, block, or perform I/O beyond
// staging. A returned Effect has no observable impact until the scheduler
// commits it; on error the Effect (even if non-nil) is discarded wholesale.
type Behavior interface {
	React(event Event) (*Effect, error)
}

// BehaviorFunc adapts an ordinary function to the Behavior interface.
type BehaviorFunc func(event Event) (*Effect, error)

// React implements Behavior.
func (f BehaviorFunc) React(event Event) (*Effect, error) { return f(event) }

// Actor is a unit of identity owning one replaceable Behavior. Equality is by
// reference, never by structural content: two actors created from identical
// behavior values are distinct. The identifier exists for diagnostics only.
//
// Actors are shared by every event, message and other actor that holds a
// reference to them; the registry never removes an actor (a documented
// simplification of this design).
type Actor struct {
	id       string
	behavior Behavior
}

// NewActor constructs an actor running the given behavior. Behaviors normally
// create actors through Effect.Create (staged until commit) or receive the
// root actor from Scheduler.Boot; direct construction is intended for the
// scheduler and for tests.
func NewActor(behavior Behavior) *Actor {
	return &Actor{id: NewID(), behavior: behavior}
}

// ID returns the diagnostic identifier assigned at creation.
func (a *Actor) ID() string { return a.id }

// React invokes the actor's current behavior with the event.
func (a *Actor) React(event Event) (*Effect, error) {
	return a.behavior.React(event)
}

// Update replaces the installed behavior. Only the scheduler's commit step
// may call it; behaviors stage replacements via Effect.Update instead. The
// actor's identity is unaffected.
func (a *Actor) Update(behavior Behavior) {
	a.behavior = behavior
}

// String renders a short diagnostic form, e.g. "^f47ac10b".
func (a *Actor) String() string {
	if len(a.id) >= 8 {
		return fmt.Sprintf("^%s", a.id[:8])
	}
	return fmt.Sprintf("^%s", a.id)
}

// Event is the unit of scheduling: exactly one target actor paired with one
// message. Events are immutable once constructed; equivalent events enqueued
// twice remain distinct scheduling units (each carries its own ID).
type Event struct {
	ID      string
	Target  *Actor
	Message Message
}

// NewEvent constructs an event addressed to target.
func NewEvent(target *Actor, message Message) Event {
	return Event{ID: NewID(), Target: target, Message: message}
}

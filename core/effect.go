package core

// Effect is the write-ahead transaction draft produced by one reaction. It
// accumulates actor creations, outgoing sends and an optional behavior
// replacement for the reacting actor. Nothing staged here touches the
// scheduler's registry or queue until the scheduler explicitly commits the
// effect; a failed reaction discards the draft in its entirety.
//
// All fields are exported so the scheduler's commit step can apply them;
// behaviors should stage through the methods rather than mutating the slices
// directly.
type Effect struct {
	// Creates lists newly created actors in creation order. Each already has
	// an identity and is usable as a send target within the same reaction,
	// but becomes globally reachable only at successful commit.
	Creates []*Actor

	// Sends lists staged events in call order. The scheduler appends them to
	// the back of its queue, preserving their relative order.
	Sends []Event

	// Replacement, when non-nil, is the behavior installed on the reacting
	// actor at commit time.
	Replacement Behavior
}

// NewEffect returns an empty effect draft.
func NewEffect() *Effect {
	return &Effect{}
}

// Create allocates a fresh actor running behavior, stages it for registry
// insertion and returns its reference immediately so later operations within
// the same reaction may target it.
func (e *Effect) Create(behavior Behavior) *Actor {
	actor := NewActor(behavior)
	e.Creates = append(e.Creates, actor)
	return actor
}

// Send stages one event addressed to target. Staged events are delivered in
// call order after the reaction commits.
func (e *Effect) Send(target *Actor, message Message) {
	e.Sends = append(e.Sends, NewEvent(target, message))
}

// Update stages a behavior replacement for the reacting actor. If called more
// than once within a reaction, the last call wins.
func (e *Effect) Update(behavior Behavior) {
	e.Replacement = behavior
}

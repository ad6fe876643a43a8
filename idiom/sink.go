package idiom

import "github.com/hupe1980/actorkit/core"

// Sink throws away every message it receives. When making a request without
// caring about the reply, a Sink serves as the customer.
type Sink struct{}

// NewSink constructs a Sink behavior.
func NewSink() Sink { return Sink{} }

// React implements core.Behavior.
func (Sink) React(core.Event) (*core.Effect, error) {
	return core.NewEffect(), nil
}

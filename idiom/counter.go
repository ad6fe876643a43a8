package idiom

import "github.com/hupe1980/actorkit/core"

// Counter accumulates every Nat it receives by replacing itself with a
// Counter carrying the new total. State lives entirely in the behavior value;
// the actor's identity is untouched by each replacement.
type Counter struct {
	Count uint64
}

// NewCounter constructs a counter starting at zero.
func NewCounter() Counter { return Counter{} }

// React implements core.Behavior. Messages other than Nat fail the reaction.
func (c Counter) React(event core.Event) (*core.Effect, error) {
	n, ok := event.Message.(core.Nat)
	if !ok {
		return nil, core.Throwf(core.FailureUnknownMessage, "counter expects Nat, got %T", event.Message)
	}
	effect := core.NewEffect()
	effect.Update(Counter{Count: c.Count + uint64(n)})
	return effect, nil
}

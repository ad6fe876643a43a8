package idiom

import "github.com/hupe1980/actorkit/core"

// Label forwards each message paired with a fixed label: the customer
// receives Pair(label, message). It acts as a decorator for messages, and
// sometimes as an adaptor structuring messages to meet the expectations of
// the subject.
type Label struct {
	Cust  *core.Actor
	Label core.Message
}

// NewLabel constructs a decorator delivering Pair(label, message) to cust.
func NewLabel(cust *core.Actor, label core.Message) Label {
	return Label{Cust: cust, Label: label}
}

// React implements core.Behavior.
func (l Label) React(event core.Event) (*core.Effect, error) {
	effect := core.NewEffect()
	effect.Send(l.Cust, core.Pair{Left: l.Label, Right: event.Message})
	return effect, nil
}

package idiom

import "github.com/hupe1980/actorkit/core"

// Once forwards exactly the first message to its customer, then replaces
// itself with a Sink so every later delivery is silently absorbed. Race uses
// it to keep only the first reply.
type Once struct {
	Cust *core.Actor
}

// NewOnce constructs a one-shot forwarder for cust.
func NewOnce(cust *core.Actor) Once {
	return Once{Cust: cust}
}

// React implements core.Behavior.
func (o Once) React(event core.Event) (*core.Effect, error) {
	effect := core.NewEffect()
	effect.Send(o.Cust, event.Message)
	effect.Update(Sink{})
	return effect, nil
}

package idiom

import "github.com/hupe1980/actorkit/core"

// Forward is an alias or proxy for another actor: every message sent to the
// forwarding actor is passed on to the subject unchanged.
type Forward struct {
	Subject *core.Actor
}

// NewForward constructs a proxy for subject.
func NewForward(subject *core.Actor) Forward {
	return Forward{Subject: subject}
}

// React implements core.Behavior.
func (f Forward) React(event core.Event) (*core.Effect, error) {
	effect := core.NewEffect()
	effect.Send(f.Subject, event.Message)
	return effect, nil
}

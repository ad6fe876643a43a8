package idiom

import "github.com/hupe1980/actorkit/core"

// EmptyEnv terminates an environment chain: every Get receives an empty Maybe
// and every other message fails the reaction.
type EmptyEnv struct{}

// NewEmptyEnv constructs the empty environment.
func NewEmptyEnv() EmptyEnv { return EmptyEnv{} }

// React implements core.Behavior.
func (EmptyEnv) React(event core.Event) (*core.Effect, error) {
	get, ok := event.Message.(core.Get)
	if !ok {
		return nil, core.Throwf(core.FailureUnknownMessage, "empty env expects Get, got %T", event.Message)
	}
	effect := core.NewEffect()
	effect.Send(get.Cust, core.Maybe{})
	return effect, nil
}

// Env binds one name to one value and delegates everything else to the next
// link in the chain. A chain of Env actors forms an immutable scope.
type Env struct {
	Name  string
	Value core.Message
	Next  *core.Actor
}

// NewEnv constructs one immutable binding in front of next.
func NewEnv(name string, value core.Message, next *core.Actor) Env {
	return Env{Name: name, Value: value, Next: next}
}

// React implements core.Behavior.
func (e Env) React(event core.Event) (*core.Effect, error) {
	effect := core.NewEffect()
	if get, ok := event.Message.(core.Get); ok && get.Name == e.Name {
		effect.Send(get.Cust, core.Maybe{Value: e.Value})
		return effect, nil
	}
	effect.Send(e.Next, event.Message)
	return effect, nil
}

// MutableEnv grows an environment chain: each Set prepends a new binding and
// acknowledges the requestor with the environment's own address; Get requests
// are delegated to the current chain.
type MutableEnv struct {
	Next *core.Actor
}

// NewMutableEnv constructs a mutable scope delegating to next.
func NewMutableEnv(next *core.Actor) MutableEnv {
	return MutableEnv{Next: next}
}

// React implements core.Behavior.
func (m MutableEnv) React(event core.Event) (*core.Effect, error) {
	effect := core.NewEffect()
	if set, ok := event.Message.(core.Set); ok {
		next := effect.Create(Env{Name: set.Name, Value: set.Value, Next: m.Next})
		effect.Update(MutableEnv{Next: next})
		effect.Send(set.Cust, core.Addr{Actor: event.Target})
		return effect, nil
	}
	effect.Send(m.Next, event.Message)
	return effect, nil
}

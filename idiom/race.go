package idiom

import "github.com/hupe1980/actorkit/core"

// Race broadcasts one request to a list of entrant services and delivers only
// the first reply to the customer. Its single message is
// Pair(Addr(cust), req): Race creates a Once guarding cust and sends
// Pair(Addr(once), req) to every entrant; the once forwards the winning reply
// and absorbs the rest.
type Race struct {
	Entrants []*core.Actor
}

// NewRace constructs a race over the given entrant services.
func NewRace(entrants ...*core.Actor) Race {
	return Race{Entrants: entrants}
}

// React implements core.Behavior.
func (r Race) React(event core.Event) (*core.Effect, error) {
	pair, ok := event.Message.(core.Pair)
	if !ok {
		return nil, core.Throwf(core.FailureUnknownMessage, "race expects Pair(Addr, request), got %T", event.Message)
	}
	cust, ok := pair.Left.(core.Addr)
	if !ok {
		return nil, core.Throwf(core.FailureInvalidMessage, "race expects Addr customer, got %T", pair.Left)
	}

	effect := core.NewEffect()
	once := effect.Create(Once{Cust: cust.Actor})
	for _, entrant := range r.Entrants {
		effect.Send(entrant, core.Pair{Left: core.Addr{Actor: once}, Right: pair.Right})
	}
	return effect, nil
}

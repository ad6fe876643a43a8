package idiom

import (
	"testing"

	"github.com/hupe1980/actorkit/core"
	"github.com/hupe1980/actorkit/internal/testutil"
	"github.com/hupe1980/actorkit/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// namedService replies to Pair(Addr(cust), req) with its own fixed name.
func namedService(name string) core.Behavior {
	return core.BehaviorFunc(func(event core.Event) (*core.Effect, error) {
		pair, ok := event.Message.(core.Pair)
		if !ok {
			return nil, core.Throwf(core.FailureUnknownMessage, "service expects Pair, got %T", event.Message)
		}
		cust, ok := pair.Left.(core.Addr)
		if !ok {
			return nil, core.Throwf(core.FailureInvalidMessage, "service expects Addr customer, got %T", pair.Left)
		}
		effect := core.NewEffect()
		effect.Send(cust.Actor, core.Sym(name))
		return effect, nil
	})
}

func TestRace_FirstReplyWins(t *testing.T) {
	var log []testutil.Observation

	s := scheduler.New()
	s.Boot(core.BehaviorFunc(func(core.Event) (*core.Effect, error) {
		effect := core.NewEffect()
		cust := effect.Create(testutil.Recorder{Name: "cust", Log: &log})
		fast := effect.Create(namedService("fast"))
		slow := effect.Create(namedService("slow"))
		race := effect.Create(NewRace(fast, slow))
		effect.Send(race, core.Pair{Left: core.Addr{Actor: cust}, Right: core.Sym("req")})
		return effect, nil
	}))

	assert.Equal(t, 0, s.Dispatch(100))

	// Both entrants reply; only the first reply reaches the customer.
	require.Len(t, log, 1)
	assert.Equal(t, core.Sym("fast"), log[0].Message)
}

func TestRace_RejectsMalformedRequest(t *testing.T) {
	race := core.NewActor(NewRace())

	_, err := race.React(core.NewEvent(race, core.Sym("no customer")))
	require.Error(t, err)
	assert.Equal(t, core.FailureUnknownMessage, core.Classify(err).Code)

	_, err = race.React(core.NewEvent(race, core.Pair{Left: core.Sym("not an addr"), Right: core.Empty{}}))
	require.Error(t, err)
	assert.Equal(t, core.FailureInvalidMessage, core.Classify(err).Code)
}

package idiom

import (
	"testing"

	"github.com/hupe1980/actorkit/core"
	"github.com/hupe1980/actorkit/internal/testutil"
	"github.com/hupe1980/actorkit/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoService replies to Pair(Addr(cust), req) by sending req back to cust.
func echoService(event core.Event) (*core.Effect, error) {
	pair, ok := event.Message.(core.Pair)
	if !ok {
		return nil, core.Throwf(core.FailureUnknownMessage, "echo expects Pair, got %T", event.Message)
	}
	cust, ok := pair.Left.(core.Addr)
	if !ok {
		return nil, core.Throwf(core.FailureInvalidMessage, "echo expects Addr customer, got %T", pair.Left)
	}
	effect := core.NewEffect()
	effect.Send(cust.Actor, pair.Right)
	return effect, nil
}

func TestFork_JoinsRepliesHeadFirst(t *testing.T) {
	var log []testutil.Observation

	s := scheduler.New()
	s.Boot(core.BehaviorFunc(func(core.Event) (*core.Effect, error) {
		effect := core.NewEffect()
		cust := effect.Create(testutil.Recorder{Name: "cust", Log: &log})
		head := effect.Create(core.BehaviorFunc(echoService))
		tail := effect.Create(core.BehaviorFunc(echoService))
		fork := effect.Create(NewFork(cust, head, tail))
		effect.Send(fork, core.Pair{Left: core.Sym("left"), Right: core.Sym("right")})
		return effect, nil
	}))

	assert.Equal(t, 0, s.Dispatch(100))
	require.Len(t, log, 1)
	assert.Equal(t, core.Pair{Left: core.Sym("left"), Right: core.Sym("right")}, log[0].Message)
}

func TestFork_JoinsRepliesTailFirst(t *testing.T) {
	var log []testutil.Observation

	s := scheduler.New()
	s.Boot(core.BehaviorFunc(func(core.Event) (*core.Effect, error) {
		effect := core.NewEffect()
		cust := effect.Create(testutil.Recorder{Name: "cust", Log: &log})
		head := effect.Create(core.BehaviorFunc(echoService))
		// Route the head request through an extra hop so the tail reply
		// arrives at the join first.
		slowHead := effect.Create(NewForward(head))
		tail := effect.Create(core.BehaviorFunc(echoService))
		fork := effect.Create(NewFork(cust, slowHead, tail))
		effect.Send(fork, core.Pair{Left: core.Sym("left"), Right: core.Sym("right")})
		return effect, nil
	}))

	assert.Equal(t, 0, s.Dispatch(100))
	require.Len(t, log, 1)
	assert.Equal(t, core.Pair{Left: core.Sym("left"), Right: core.Sym("right")}, log[0].Message,
		"head reply stays on the left even when the tail replies first")
}

func TestFork_RejectsNonPairRequest(t *testing.T) {
	cust := core.NewActor(NewSink())
	head := core.NewActor(NewSink())
	tail := core.NewActor(NewSink())
	fork := core.NewActor(NewFork(cust, head, tail))

	_, err := fork.React(core.NewEvent(fork, core.Empty{}))

	require.Error(t, err)
	assert.Equal(t, core.FailureUnknownMessage, core.Classify(err).Code)
}

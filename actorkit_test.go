package actorkit

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/actorkit/config"
	"github.com/hupe1980/actorkit/core"
	"github.com/hupe1980/actorkit/idiom"
	"github.com/hupe1980/actorkit/internal/testutil"
	"github.com/hupe1980/actorkit/logging"
)

func TestNew_Defaults(t *testing.T) {
	kernel := New(WithLogger(logging.NoOpLogger{}))

	assert.Equal(t, 0, kernel.Pending())
	assert.Equal(t, 0, kernel.Registered())
}

func TestKernel_BootAndDispatch(t *testing.T) {
	var log []testutil.Observation
	kernel := New(WithLogger(logging.NoOpLogger{}))

	pending := kernel.Boot(core.BehaviorFunc(func(event core.Event) (*core.Effect, error) {
		effect := core.NewEffect()
		sink := effect.Create(testutil.Recorder{Name: "sink", Log: &log})
		effect.Send(sink, core.Sym("one"))
		effect.Send(sink, core.Sym("two"))
		return effect, nil
	}))

	assert.Equal(t, 2, pending)
	assert.Equal(t, 2, kernel.Registered())

	assert.Equal(t, 0, kernel.Dispatch(2))
	require.Len(t, log, 2)
	assert.Equal(t, core.Sym("one"), log[0].Message)
	assert.Equal(t, core.Sym("two"), log[1].Message)
}

func TestKernel_RunDrainsQueue(t *testing.T) {
	var log []testutil.Observation
	kernel := New(WithLogger(logging.NoOpLogger{}))

	kernel.Boot(core.BehaviorFunc(func(event core.Event) (*core.Effect, error) {
		effect := core.NewEffect()
		sink := effect.Create(testutil.Recorder{Name: "sink", Log: &log})
		label := effect.Create(idiom.Label{Cust: sink, Label: core.Sym("greeting")})
		effect.Send(label, core.Sym("hello"))
		return effect, nil
	}))

	pending, err := kernel.Run(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 0, pending)
	require.Len(t, log, 1)
	assert.Equal(t, core.Pair{Left: core.Sym("greeting"), Right: core.Sym("hello")}, log[0].Message)
}

func TestKernel_RunHonorsCancellation(t *testing.T) {
	kernel := New(WithLogger(logging.NoOpLogger{}))

	// Self-perpetuating system: every delivery stages another send.
	kernel.Boot(core.BehaviorFunc(func(event core.Event) (*core.Effect, error) {
		effect := core.NewEffect()
		effect.Send(event.Target, core.Empty{})
		return effect, nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pending, err := kernel.Run(ctx, 1)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, pending)
}

func TestKernel_FailureHandlerReceivesFailures(t *testing.T) {
	var failures []*core.ReactionError
	kernel := New(
		WithLogger(logging.NoOpLogger{}),
		WithFailureHandler(func(event core.Event, err *core.ReactionError) {
			failures = append(failures, err)
		}),
	)

	pending := kernel.Boot(core.BehaviorFunc(func(event core.Event) (*core.Effect, error) {
		return nil, core.Throw(core.FailureUnknownMessage, "boot message not understood")
	}))

	assert.Equal(t, 0, pending)
	require.Len(t, failures, 1)
	assert.Equal(t, core.FailureUnknownMessage, failures[0].Code)
}

func TestKernel_ConfigQuantumUsedByRun(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Scheduler.DefaultQuantum = 1
	kernel := New(WithConfig(cfg), WithLogger(logging.NoOpLogger{}))

	var deliveries int
	kernel.Boot(core.BehaviorFunc(func(event core.Event) (*core.Effect, error) {
		deliveries++
		if deliveries >= 5 {
			return nil, nil
		}
		effect := core.NewEffect()
		effect.Send(event.Target, core.Empty{})
		return effect, nil
	}))

	pending, err := kernel.Run(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 0, pending)
	assert.Equal(t, 5, deliveries)
}

func TestKernel_RunMakesProgressWithZeroValueConfig(t *testing.T) {
	var log []testutil.Observation

	// A hand-built config carries a zero default quantum; Run must still
	// drain instead of spinning on Dispatch(0).
	kernel := New(WithConfig(&config.Config{}), WithLogger(logging.NoOpLogger{}))

	kernel.Boot(core.BehaviorFunc(func(event core.Event) (*core.Effect, error) {
		effect := core.NewEffect()
		sink := effect.Create(testutil.Recorder{Name: "sink", Log: &log})
		effect.Send(sink, core.Sym("delivered"))
		return effect, nil
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	pending, err := kernel.Run(ctx, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, pending)
	require.Len(t, log, 1)
	assert.Equal(t, core.Sym("delivered"), log[0].Message)
}

func TestKernel_FailureReportIsStructured(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultLoggerConfig()
	cfg.Format = "text"
	cfg.Output = &buf

	kernel := New(WithLogger(logging.NewLogger(cfg)))

	kernel.Boot(core.BehaviorFunc(func(event core.Event) (*core.Effect, error) {
		return nil, core.Throw(core.FailureInvalidMessage, "bad bootstrap")
	}))

	out := buf.String()
	assert.Contains(t, out, "code=invalid_message")
	assert.Contains(t, out, "reason=")
	assert.Contains(t, out, "event_id=")
	assert.NotContains(t, out, "EXTRA")
}

func TestNewLoggerFromConfig_Levels(t *testing.T) {
	logger := NewLoggerFromConfig(config.LogConfig{Level: config.LogLevelDebug, Format: "text"})

	require.NotNil(t, logger)
	logger.Debug("kernel logger constructed")
}

// Package actorkit provides a high-level façade over the scheduler and
// configuration packages enabling rapid construction of actor-based programs.
// Most applications interact with this package by:
//  1. Creating a Kernel via New() (optionally overriding config and logging)
//  2. Booting a root behavior that spawns the rest of the system
//  3. Driving execution with Dispatch (manual quanta) or Run (drain loop)
//
// The façade delegates execution to scheduler.Scheduler while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production hosts typically supply a loaded configuration and a
// structured logger.
package actorkit

import (
	"context"

	"github.com/hupe1980/actorkit/config"
	"github.com/hupe1980/actorkit/core"
	"github.com/hupe1980/actorkit/logging"
	"github.com/hupe1980/actorkit/scheduler"
)

// Options configures the Kernel instance.
type Options struct {
	// Config holds scheduler tuning and logging settings. Defaults to
	// config.DefaultConfig() when nil.
	Config *config.Config

	// Logger used for reaction failures and queue diagnostics. When nil, a
	// logger is built from Config.Log.
	Logger logging.Logger

	// FailureHandler, when non-nil, receives every failed reaction after it
	// has been logged and its staged effect discarded.
	FailureHandler scheduler.FailureHandler
}

// WithConfig overrides the default configuration.
func WithConfig(cfg *config.Config) func(o *Options) {
	return func(o *Options) { o.Config = cfg }
}

// WithLogger overrides the logger built from the configuration.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// WithFailureHandler sets the failure extension hook.
func WithFailureHandler(h scheduler.FailureHandler) func(o *Options) {
	return func(o *Options) { o.FailureHandler = h }
}

// Kernel is the high-level façade aggregating the scheduler and its
// configuration. It is single-threaded: all methods must be called from one
// goroutine.
type Kernel struct {
	opts  Options
	sched *scheduler.Scheduler
}

// New creates a new Kernel with optional overrides.
func New(optFns ...func(o *Options)) *Kernel {
	opts := Options{
		Config: config.DefaultConfig(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = NewLoggerFromConfig(opts.Config.Log)
	}

	sched := scheduler.New(
		scheduler.WithLogger(opts.Logger),
		scheduler.WithFailureHandler(opts.FailureHandler),
		scheduler.WithQueueWarnDepth(opts.Config.Scheduler.QueueWarnDepth),
		scheduler.WithActorWarnCount(opts.Config.Scheduler.ActorWarnCount),
	)

	return &Kernel{opts: opts, sched: sched}
}

// NewLoggerFromConfig builds a structured logger from a logging configuration
// section.
func NewLoggerFromConfig(cfg config.LogConfig) logging.Logger {
	return logging.NewSlogLogger(logLevel(cfg.Level), cfg.Format, cfg.AddSource)
}

func logLevel(l config.LogLevel) logging.LogLevel {
	switch l {
	case config.LogLevelDebug:
		return logging.LogLevelDebug
	case config.LogLevelWarn:
		return logging.LogLevelWarn
	case config.LogLevelError:
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}

// Boot creates the root actor running behavior, delivers the initial Empty
// message to it and returns the number of events pending afterwards.
func (k *Kernel) Boot(behavior core.Behavior) int {
	return k.sched.Boot(behavior)
}

// Dispatch processes up to limit pending events and returns the number still
// pending.
func (k *Kernel) Dispatch(limit int) int {
	return k.sched.Dispatch(limit)
}

// Pending returns the number of events currently queued.
func (k *Kernel) Pending() int { return k.sched.Pending() }

// Registered returns the number of actors known to the scheduler.
func (k *Kernel) Registered() int { return k.sched.Registered() }

// Run drains the pending queue in quanta of the given size, checking ctx
// between quanta, until the queue is empty or the context is cancelled. A
// quantum of zero or less uses the configured default, clamped to at least
// one event per cycle so the loop always makes progress. Returns the number
// of events still pending (zero on a full drain) and ctx.Err() if cancelled.
//
// Run terminates only when the actor system quiesces; systems that send to
// themselves forever run until the context ends.
func (k *Kernel) Run(ctx context.Context, quantum int) (int, error) {
	if quantum <= 0 {
		quantum = k.opts.Config.Scheduler.DefaultQuantum
	}
	if quantum <= 0 {
		quantum = 1
	}

	for k.sched.Pending() > 0 {
		select {
		case <-ctx.Done():
			return k.sched.Pending(), ctx.Err()
		default:
		}
		k.sched.Dispatch(quantum)
	}

	return 0, nil
}

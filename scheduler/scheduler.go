package scheduler

import (
	"time"

	"github.com/hupe1980/actorkit/core"
	"github.com/hupe1980/actorkit/logging"
)

// reactionFailureLogger is the richer reporting surface a logger may offer
// for failed reactions; logging.KernelLogger implements it.
type reactionFailureLogger interface {
	LogReactionFailure(eventID, actorID, code, reason string)
}

// dispatchLogger is the richer reporting surface for dispatch cycle metrics.
type dispatchLogger interface {
	LogDispatch(processed, remaining int, dur time.Duration)
}

// FailureHandler is invoked after a failed reaction has been logged and its
// staged effect discarded. It is the extension point for supervision or
// dead-letter mechanisms; the kernel itself attaches no policy to it. The
// handler runs on the dispatch goroutine and must not re-enter the scheduler.
type FailureHandler func(event core.Event, err *core.ReactionError)

// Options configures a Scheduler instance using the functional options
// pattern.
type Options struct {
	// Logger is the diagnostic channel for reaction failures and queue
	// warnings. Defaults to NoOpLogger so embedding never forces output.
	Logger logging.Logger

	// FailureHandler, when non-nil, receives every failed reaction together
	// with its consumed event.
	FailureHandler FailureHandler

	// QueueWarnDepth emits a warning when the pending queue grows beyond this
	// many events after a commit. Zero disables the check.
	QueueWarnDepth int

	// ActorWarnCount emits a warning when the append-only registry grows
	// beyond this many actors. Zero disables the check. The registry never
	// shrinks in this design, so the warning fires at most once.
	ActorWarnCount int
}

// Scheduler owns the set of all known actors (registry, append-only) and the
// FIFO queue of pending events. It is created empty via New and mutated only
// through Boot and Dispatch.
type Scheduler struct {
	actors []*core.Actor
	queue  []core.Event

	logger    logging.Logger
	onFailure FailureHandler

	queueWarnDepth int
	actorWarnCount int
	actorWarned    bool
}

// New creates a new, empty scheduler.
func New(optFns ...func(o *Options)) *Scheduler {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Scheduler{
		logger:         opts.Logger,
		onFailure:      opts.FailureHandler,
		queueWarnDepth: opts.QueueWarnDepth,
		actorWarnCount: opts.ActorWarnCount,
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// WithFailureHandler sets the failure extension hook.
func WithFailureHandler(h FailureHandler) func(o *Options) {
	return func(o *Options) { o.FailureHandler = h }
}

// WithQueueWarnDepth sets the pending-queue warning threshold.
func WithQueueWarnDepth(n int) func(o *Options) {
	return func(o *Options) { o.QueueWarnDepth = n }
}

// WithActorWarnCount sets the registry-size warning threshold.
func WithActorWarnCount(n int) func(o *Options) {
	return func(o *Options) { o.ActorWarnCount = n }
}

// Boot creates a fresh root actor running behavior, registers it, enqueues
// exactly one event carrying the Empty message addressed to it and
// synchronously performs one dispatch cycle so bootstrap failures surface
// immediately to the caller.
//
// The root actor is retained in the registry forever, like every other actor.
// Returns the number of events still pending after the bootstrap reaction.
func (s *Scheduler) Boot(behavior core.Behavior) int {
	actor := core.NewActor(behavior)
	s.actors = append(s.actors, actor)
	s.queue = append(s.queue, core.NewEvent(actor, core.Empty{}))
	return s.Dispatch(1)
}

// Dispatch drains up to limit events from the front of the queue. For each
// event it invokes the target actor's current behavior and then commits the
// resulting effect atomically: staged creations join the registry, staged
// sends are appended to the back of the queue in order, and a staged behavior
// replacement is installed on the target. A failed reaction discards its
// entire effect; only the consumed event is removed, the failure is reported
// through the logger (and failure handler, if any), and dispatch continues
// with the next event.
//
// Dispatch(0) is a no-op returning the unchanged pending count; a limit
// exceeding the queue length simply drains it. Returns the number of events
// still pending. The bounded limit is the host's cooperative fairness and
// fuel mechanism: the scheduler never runs unbounded on its own.
func (s *Scheduler) Dispatch(limit int) int {
	start := time.Now()
	processed := 0

	for ; limit > 0; limit-- {
		if len(s.queue) == 0 {
			break
		}
		event := s.queue[0]
		s.queue = s.queue[1:]
		processed++

		effect, err := event.Target.React(event)
		if err != nil {
			s.reportFailure(event, err)
			continue
		}

		s.commit(event.Target, effect)
	}

	if processed > 0 {
		if dl, ok := s.logger.(dispatchLogger); ok {
			dl.LogDispatch(processed, len(s.queue), time.Since(start))
		} else {
			s.logger.Debug("scheduler dispatched events", "processed", processed, "remaining", len(s.queue), "duration", time.Since(start))
		}
	}
	return len(s.queue)
}

// commit applies a successful reaction's staged effect. A nil effect is
// treated as empty.
func (s *Scheduler) commit(target *core.Actor, effect *core.Effect) {
	if effect == nil {
		return
	}

	if effect.Replacement != nil {
		target.Update(effect.Replacement)
	}
	s.actors = append(s.actors, effect.Creates...)
	s.queue = append(s.queue, effect.Sends...)

	if s.queueWarnDepth > 0 && len(s.queue) > s.queueWarnDepth {
		s.logger.Warn("pending queue exceeds warn depth", "pending", len(s.queue), "warn_depth", s.queueWarnDepth)
	}
	if s.actorWarnCount > 0 && !s.actorWarned && len(s.actors) > s.actorWarnCount {
		s.actorWarned = true
		s.logger.Warn("actor registry exceeds warn count; actors are never reclaimed", "actors", len(s.actors), "warn_count", s.actorWarnCount)
	}
}

// reportFailure delivers a failed reaction to the diagnostic channel and the
// optional failure handler. Nothing staged by the reaction survives.
func (s *Scheduler) reportFailure(event core.Event, err error) {
	re := core.Classify(err)
	if fl, ok := s.logger.(reactionFailureLogger); ok {
		fl.LogReactionFailure(event.ID, event.Target.ID(), string(re.Code), re.Reason)
	} else {
		s.logger.Error("reaction failed",
			"event_id", event.ID,
			"actor_id", event.Target.ID(),
			"code", string(re.Code),
			"reason", re.Reason,
		)
	}
	if s.onFailure != nil {
		s.onFailure(event, re)
	}
}

// Pending returns the number of events currently queued.
func (s *Scheduler) Pending() int { return len(s.queue) }

// Registered returns the number of actors in the registry. The registry is
// append-only; the count never decreases.
func (s *Scheduler) Registered() int { return len(s.actors) }

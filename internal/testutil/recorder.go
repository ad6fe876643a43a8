package testutil

import "github.com/hupe1980/actorkit/core"

// Recorder is a behavior that absorbs every message after appending it to an
// external log, letting tests observe global dispatch order across actors.
type Recorder struct {
	// Name labels entries this recorder appends.
	Name string
	// Log is the shared, externally owned sequence of observations.
	Log *[]Observation
}

// Observation is one recorded delivery.
type Observation struct {
	Name    string
	Message core.Message
}

// React implements core.Behavior.
func (r Recorder) React(event core.Event) (*core.Effect, error) {
	*r.Log = append(*r.Log, Observation{Name: r.Name, Message: event.Message})
	return core.NewEffect(), nil
}

// Failer is a behavior that stages the configured creations and sends, then
// fails the reaction, so tests can verify that nothing staged survives.
type Failer struct {
	Creates int
	Sends   int
	Err     *core.ReactionError
}

// React implements core.Behavior.
func (f Failer) React(core.Event) (*core.Effect, error) {
	effect := core.NewEffect()
	for i := 0; i < f.Creates; i++ {
		effect.Create(Recorder{Name: "orphan", Log: new([]Observation)})
	}
	for i := 0; i < f.Sends; i++ {
		actor := core.NewActor(Recorder{Name: "orphan", Log: new([]Observation)})
		effect.Send(actor, core.Empty{})
	}
	err := f.Err
	if err == nil {
		err = core.Throw(core.FailureInternal, "failer always fails")
	}
	return effect, err
}

package idiom

import "github.com/hupe1980/actorkit/core"

// Tag labels each message with a reference to the tag actor itself: the
// customer receives Pair(Addr(tag), message). A tag is often used as the
// customer of a request when a specific reply must be identified later, as
// fork/join does.
type Tag struct {
	Cust *core.Actor
}

// NewTag constructs a self-labelling customer for cust.
func NewTag(cust *core.Actor) Tag {
	return Tag{Cust: cust}
}

// React implements core.Behavior.
func (t Tag) React(event core.Event) (*core.Effect, error) {
	effect := core.NewEffect()
	effect.Send(t.Cust, core.Pair{Left: core.Addr{Actor: event.Target}, Right: event.Message})
	return effect, nil
}

package idiom

import "github.com/hupe1980/actorkit/core"

// Fork issues one request to two services in parallel and joins their
// replies. Its single message is Pair(headReq, tailReq): Fork creates a Tag
// customer for each service, sends Pair(Addr(tag), req) to head and tail,
// then replaces itself with a join state awaiting both tagged replies. When
// both have arrived the customer receives Pair(headReply, tailReply) and the
// actor becomes a Sink.
type Fork struct {
	Cust *core.Actor
	Head *core.Actor
	Tail *core.Actor
}

// NewFork constructs a fork delivering the joined Pair(headReply, tailReply)
// to cust.
func NewFork(cust, head, tail *core.Actor) Fork {
	return Fork{Cust: cust, Head: head, Tail: tail}
}

// React implements core.Behavior.
func (f Fork) React(event core.Event) (*core.Effect, error) {
	reqs, ok := event.Message.(core.Pair)
	if !ok {
		return nil, core.Throwf(core.FailureUnknownMessage, "fork expects Pair of requests, got %T", event.Message)
	}

	effect := core.NewEffect()
	kHead := effect.Create(Tag{Cust: event.Target})
	kTail := effect.Create(Tag{Cust: event.Target})
	effect.Send(f.Head, core.Pair{Left: core.Addr{Actor: kHead}, Right: reqs.Left})
	effect.Send(f.Tail, core.Pair{Left: core.Addr{Actor: kTail}, Right: reqs.Right})
	effect.Update(join{cust: f.Cust, kHead: kHead, kTail: kTail})
	return effect, nil
}

// join awaits the first tagged reply, remembering which tag it came from.
type join struct {
	cust  *core.Actor
	kHead *core.Actor
	kTail *core.Actor
}

func (j join) React(event core.Event) (*core.Effect, error) {
	tag, value, err := untag(event.Message)
	if err != nil {
		return nil, err
	}

	effect := core.NewEffect()
	switch tag {
	case j.kHead:
		effect.Update(joinTail{cust: j.cust, kTail: j.kTail, head: value})
	case j.kTail:
		effect.Update(joinHead{cust: j.cust, kHead: j.kHead, tail: value})
	default:
		return nil, core.Throw(core.FailureInvalidMessage, "join received reply with unknown tag")
	}
	return effect, nil
}

// joinTail holds the head reply and awaits the tail reply.
type joinTail struct {
	cust  *core.Actor
	kTail *core.Actor
	head  core.Message
}

func (j joinTail) React(event core.Event) (*core.Effect, error) {
	tag, value, err := untag(event.Message)
	if err != nil {
		return nil, err
	}
	if tag != j.kTail {
		return nil, core.Throw(core.FailureInvalidMessage, "join received reply with unknown tag")
	}

	effect := core.NewEffect()
	effect.Send(j.cust, core.Pair{Left: j.head, Right: value})
	effect.Update(Sink{})
	return effect, nil
}

// joinHead holds the tail reply and awaits the head reply.
type joinHead struct {
	cust  *core.Actor
	kHead *core.Actor
	tail  core.Message
}

func (j joinHead) React(event core.Event) (*core.Effect, error) {
	tag, value, err := untag(event.Message)
	if err != nil {
		return nil, err
	}
	if tag != j.kHead {
		return nil, core.Throw(core.FailureInvalidMessage, "join received reply with unknown tag")
	}

	effect := core.NewEffect()
	effect.Send(j.cust, core.Pair{Left: value, Right: j.tail})
	effect.Update(Sink{})
	return effect, nil
}

// untag unpacks a Tag-shaped Pair(Addr(tag), value).
func untag(message core.Message) (*core.Actor, core.Message, error) {
	pair, ok := message.(core.Pair)
	if !ok {
		return nil, nil, core.Throwf(core.FailureUnknownMessage, "join expects tagged Pair, got %T", message)
	}
	addr, ok := pair.Left.(core.Addr)
	if !ok {
		return nil, nil, core.Throwf(core.FailureInvalidMessage, "join expects Addr tag, got %T", pair.Left)
	}
	return addr.Actor, pair.Right, nil
}

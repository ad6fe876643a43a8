package core

import "github.com/google/uuid"

// Message is the only legal payload between actors. It is a closed sum type:
// the set of variants below is fixed and every variant is an immutable value.
// Nesting (Maybe, Pair, List) is the sole structuring mechanism; no external
// schema or serialization format is implied.
//
// Behaviors inspect messages with a type switch:
//
//	switch m := event.Message.(type) {
//	case core.Addr:
//	    // m.Actor is a first-class, transmissible capability
//	case core.Pair:
//	    // m.Left, m.Right
//	}
type Message interface {
	// message restricts implementations to this package, keeping the sum closed.
	message()
}

// Empty is the unit message. The scheduler delivers Empty to the root actor
// at boot time.
type Empty struct{}

// Nat is a natural number message.
type Nat uint64

// Int is a signed integer message.
type Int int64

// Sym is a text symbol message.
type Sym string

// Addr carries an actor reference. Handing an Addr to another actor grants it
// the capability to reach the referenced actor; no other discovery mechanism
// exists, giving the system pure object-capability security.
type Addr struct {
	Actor *Actor
}

// Maybe is an optional message. A nil Value represents absence.
type Maybe struct {
	Value Message
}

// Pair is an ordered pair of two messages.
type Pair struct {
	Left  Message
	Right Message
}

// List is a finite ordered sequence of messages.
type List []Message

// OkFail carries a success/failure continuation pair: replies go to Ok,
// errors to Fail.
type OkFail struct {
	Ok   *Actor
	Fail *Actor
}

// Get is a named-read request: the holder of the named value replies to Cust.
type Get struct {
	Cust *Actor
	Name string
}

// Set is a named-write request: Value is bound to Name and Cust receives the
// acknowledgement.
type Set struct {
	Cust  *Actor
	Name  string
	Value Message
}

func (Empty) message()  {}
func (Nat) message()    {}
func (Int) message()    {}
func (Sym) message()    {}
func (Addr) message()   {}
func (Maybe) message()  {}
func (Pair) message()   {}
func (List) message()   {}
func (OkFail) message() {}
func (Get) message()    {}
func (Set) message()    {}

// NewID generates a unique identifier used to correlate actors and events in
// diagnostics. Identity semantics never depend on it; actors compare by
// reference.
func NewID() string { return uuid.NewString() }

package core

import "testing"

type absorb struct{}

func (absorb) React(Event) (*Effect, error) { return NewEffect(), nil }

type echo struct{ cust *Actor }

func (e echo) React(event Event) (*Effect, error) {
	effect := NewEffect()
	effect.Send(e.cust, event.Message)
	return effect, nil
}

func TestActor_IdentityEquality(t *testing.T) {
	a := NewActor(absorb{})
	b := NewActor(absorb{})

	if a == b {
		t.Error("Distinct actors with identical behavior configuration must compare unequal")
	}
	if a != a {
		t.Error("An actor compared to itself is always equal")
	}
	if a.ID() == b.ID() {
		t.Error("Diagnostic IDs should be unique per actor")
	}
}

func TestActor_ReactDelegatesToCurrentBehavior(t *testing.T) {
	cust := NewActor(absorb{})
	a := NewActor(echo{cust: cust})

	effect, err := a.React(NewEvent(a, Sym("ping")))
	if err != nil {
		t.Fatalf("Unexpected reaction failure: %v", err)
	}
	if len(effect.Sends) != 1 || effect.Sends[0].Target != cust {
		t.Fatalf("Echo should stage exactly one send to cust: %+v", effect.Sends)
	}
}

func TestActor_UpdateReplacesBehaviorNotIdentity(t *testing.T) {
	a := NewActor(absorb{})
	id := a.ID()

	a.Update(echo{cust: a})

	if a.ID() != id {
		t.Error("Behavior replacement must not change actor identity")
	}
	effect, err := a.React(NewEvent(a, Empty{}))
	if err != nil {
		t.Fatalf("Unexpected reaction failure: %v", err)
	}
	if len(effect.Sends) != 1 {
		t.Error("Updated behavior should be the one dispatched")
	}
}

func TestActor_StringIsShortDiagnosticForm(t *testing.T) {
	a := NewActor(absorb{})
	s := a.String()
	if len(s) != 9 || s[0] != '^' {
		t.Errorf("Expected ^-prefixed 8-char diagnostic form, got %q", s)
	}
}

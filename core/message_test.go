package core

import (
	"reflect"
	"testing"
)

// Message discrimination tests
func TestMessage_DiscriminatedUnion(t *testing.T) {
	sink := NewActor(BehaviorFunc(func(Event) (*Effect, error) { return NewEffect(), nil }))

	msgs := []Message{
		Empty{},
		Nat(42),
		Int(-7),
		Sym("hello"),
		Addr{Actor: sink},
		Maybe{Value: Sym("present")},
		Maybe{},
		Pair{Left: Sym("a"), Right: Nat(1)},
		List{Empty{}, Sym("x")},
		OkFail{Ok: sink, Fail: sink},
		Get{Cust: sink, Name: "answer"},
		Set{Cust: sink, Name: "answer", Value: Nat(42)},
	}
	for _, m := range msgs {
		switch mt := m.(type) {
		case Empty, Nat, Int, Sym, Addr, Maybe, Pair, List, OkFail, Get, Set:
		default:
			t.Fatalf("Unexpected message type: %T (%v)", mt, mt)
		}
	}
}

func TestMessage_NestingIsStructural(t *testing.T) {
	a := Pair{Left: Sym("Hello"), Right: Sym("World")}
	b := Pair{Left: Sym("Hello"), Right: Sym("World")}
	if !reflect.DeepEqual(a, b) {
		t.Error("Structurally identical pairs should compare equal")
	}

	deep := List{Pair{Left: Maybe{Value: Nat(1)}, Right: List{Int(-1)}}}
	clone := List{Pair{Left: Maybe{Value: Nat(1)}, Right: List{Int(-1)}}}
	if !reflect.DeepEqual(deep, clone) {
		t.Error("Nested messages should compare structurally")
	}
}

func TestMessage_AddrComparesByIdentity(t *testing.T) {
	sink := BehaviorFunc(func(Event) (*Effect, error) { return NewEffect(), nil })
	a := NewActor(sink)
	b := NewActor(sink)

	if reflect.DeepEqual(Addr{Actor: a}, Addr{Actor: b}) {
		t.Error("Addr values referencing distinct actors must differ")
	}
	if !reflect.DeepEqual(Addr{Actor: a}, Addr{Actor: a}) {
		t.Error("Addr values referencing the same actor must compare equal")
	}
}

func TestNewID_Uniqueness(t *testing.T) {
	if NewID() == NewID() {
		t.Error("Expected unique IDs")
	}
}

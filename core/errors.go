package core

import (
	"errors"
	"fmt"
)

// FailureCode classifies why a reaction failed. Codes are coarse on purpose:
// the kernel never interprets them beyond reporting, but a meta-controller
// attached to the scheduler may.
type FailureCode string

const (
	// FailureUnknownMessage marks a message variant the behavior does not
	// understand.
	FailureUnknownMessage FailureCode = "unknown_message"

	// FailureInvalidMessage marks a message of the expected variant whose
	// content violates the behavior's contract.
	FailureInvalidMessage FailureCode = "invalid_message"

	// FailureInternal marks any error a behavior returned without a
	// classification of its own.
	FailureInternal FailureCode = "internal"
)

// ReactionError is the structured failure a behavior signals instead of an
// effect. The scheduler treats any error as fail-closed; ReactionError adds a
// classification code for diagnostics and meta-controllers.
type ReactionError struct {
	Code   FailureCode
	Reason string
}

// Error implements the error interface.
func (e *ReactionError) Error() string {
	return fmt.Sprintf("reaction failed (%s): %s", e.Code, e.Reason)
}

// Throw constructs a classified reaction failure.
func Throw(code FailureCode, reason string) *ReactionError {
	return &ReactionError{Code: code, Reason: reason}
}

// Throwf constructs a classified reaction failure with a formatted reason.
func Throwf(code FailureCode, format string, args ...any) *ReactionError {
	return &ReactionError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// Classify resolves the ReactionError carried by err, wrapping unclassified
// errors under FailureInternal so every reported failure has a code.
func Classify(err error) *ReactionError {
	var re *ReactionError
	if errors.As(err, &re) {
		return re
	}
	return &ReactionError{Code: FailureInternal, Reason: err.Error()}
}

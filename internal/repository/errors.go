package repository

import (
	"errors"
	"fmt"
)

// Kind groups user-facing failures.
type Kind int

const (
	// KindUsage covers malformed invocations: wrong operands, blank messages.
	KindUsage Kind = iota
	// KindPrecondition covers missing repositories, files, branches and commits.
	KindPrecondition
	// KindState covers requests the current repository state refuses.
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindPrecondition:
		return "precondition"
	case KindState:
		return "state"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a failure the user caused. Message is printed verbatim as one line.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func usageError(message string) *Error {
	return &Error{Kind: KindUsage, Message: message}
}

func preconditionError(message string) *Error {
	return &Error{Kind: KindPrecondition, Message: message}
}

func stateError(message string) *Error {
	return &Error{Kind: KindState, Message: message}
}

// AsError unwraps err to a user-facing *Error if it carries one.
func AsError(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

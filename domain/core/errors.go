package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrAttemptNotFound = fmt.Errorf("%w: attempt", ErrNotFound)
	ErrResultNotFound  = fmt.Errorf("%w: result", ErrNotFound)

	// Question bank errors
	ErrBankInvalid      = errors.New("invalid question bank")
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrUnknownOption    = errors.New("unknown option value")
	ErrDuplicateID      = errors.New("duplicate question id")
	ErrUncoveredCore    = errors.New("question bank missing core type branch")
	ErrUnrecognizedTag  = errors.New("unrecognized classification tag")

	// Session errors
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrLayerIncomplete   = errors.New("current layer has unanswered questions")
	ErrAttemptComplete   = errors.New("attempt already complete")
	ErrAttemptNotDone    = errors.New("attempt not yet complete")

	// Analytics errors
	ErrCohortTooSmall = errors.New("cohort too small for percentile ranking")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewBankError(questionID string, reason error) error {
	return fmt.Errorf("%w: question %s: %v", ErrBankInvalid, questionID, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsBankError(err error) bool {
	return errors.Is(err, ErrBankInvalid) ||
		errors.Is(err, ErrDuplicateID) ||
		errors.Is(err, ErrUncoveredCore) ||
		errors.Is(err, ErrUnrecognizedTag)
}

func IsSessionError(err error) bool {
	return errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrLayerIncomplete) ||
		errors.Is(err, ErrAttemptComplete) ||
		errors.Is(err, ErrAttemptNotDone)
}

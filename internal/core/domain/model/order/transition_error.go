package order

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel behind every *InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid transition")

// Operation names a lifecycle operation.
type Operation string

const (
	OperationAdvance Operation = "advance"
	OperationCancel  Operation = "cancel"
)

func (op Operation) Validate() error {
	switch op {
	case OperationAdvance, OperationCancel:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("operation is invalid", fmt.Errorf("%q is not a lifecycle operation", string(op)))
}

// InvalidTransitionError is returned when Operation has no legal target from Stage.
// The order it was raised for is left in Stage.
type InvalidTransitionError struct {
	Operation Operation
	Stage     Stage
	Reason    string
}

func NewInvalidTransitionError(op Operation, stage Stage, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{
		Operation: op,
		Stage:     stage,
		Reason:    reason,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s order in stage %s: %s", ErrInvalidTransition, e.Operation, e.Stage, e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

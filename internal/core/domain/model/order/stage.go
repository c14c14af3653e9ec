package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Stage is the position of an order in its lifecycle.
//
// Transitions:
//
//	Pending ──advance──> Confirmed ──advance──> Delivered
//	   │                     │
//	   └──cancel──┬──────────┘
//	              v
//	          Cancelled
//
// Delivered and Cancelled are terminal. Each operation is an exhaustive switch over
// the stages, so adding a stage means adding one case to each of them.
type Stage int

const (
	// Unknown is the zero value. It is never the stage of a constructed order and
	// only shows up for uninitialised or corrupt values.
	Unknown Stage = iota

	// Pending is the initial stage of every new order.
	Pending

	// Confirmed orders have been accepted and await delivery.
	Confirmed

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Stages lists every valid stage in lifecycle order.
func Stages() []Stage {
	return []Stage{Pending, Confirmed, Delivered, Cancelled}
}

// ActiveStages lists the stages from which at least one transition is legal.
func ActiveStages() []Stage {
	return []Stage{Pending, Confirmed}
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Stage) Validate() error {
	switch s {
	case Pending, Confirmed, Delivered, Cancelled:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
}

// String implements fmt.Stringer. It is safe on invalid values and returns "Unknown" for them.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no operation can move an order out of s.
func (s Stage) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Advance returns the next forward stage.
//
//   - Pending -> Confirmed
//   - Confirmed -> Delivered
//   - Delivered, Cancelled -> *InvalidTransitionError
//
// On error the returned stage is Unknown and must be ignored.
func (s Stage) Advance() (Stage, error) {
	switch s {
	case Pending:
		return Confirmed, nil
	case Confirmed:
		return Delivered, nil
	case Delivered:
		return Unknown, NewInvalidTransitionError(OperationAdvance, s, "order already delivered")
	case Cancelled:
		return Unknown, NewInvalidTransitionError(OperationAdvance, s, "cancelled orders cannot be processed")
	case Unknown:
	}
	return Unknown, s.Validate()
}

// Cancel returns Cancelled for the stages that allow it.
//
//   - Pending, Confirmed -> Cancelled
//   - Delivered, Cancelled -> *InvalidTransitionError
//
// On error the returned stage is Unknown and must be ignored.
func (s Stage) Cancel() (Stage, error) {
	switch s {
	case Pending, Confirmed:
		return Cancelled, nil
	case Delivered:
		return Unknown, NewInvalidTransitionError(OperationCancel, s, "delivered product can't be cancelled")
	case Cancelled:
		return Unknown, NewInvalidTransitionError(OperationCancel, s, "order is already cancelled")
	case Unknown:
	}
	return Unknown, s.Validate()
}

// Apply dispatches op to Advance or Cancel.
func (s Stage) Apply(op Operation) (Stage, error) {
	switch op {
	case OperationAdvance:
		return s.Advance()
	case OperationCancel:
		return s.Cancel()
	}
	return Unknown, op.Validate()
}

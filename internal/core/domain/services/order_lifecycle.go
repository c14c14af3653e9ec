package services

import (
	"orderflow/internal/core/domain/model/order"
)

// OrderLifecycle drives an order through its stages. It holds no state; the order
// handle it is given carries the stage and its lock.
//
// A nil or unconstructed handle fails with order.ErrOrderIsNotConstructed before any
// transition is attempted. Illegal transitions fail with *order.InvalidTransitionError
// and leave the order as it was.
type OrderLifecycle struct{}

func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// Advance moves o to its next forward stage.
func (l OrderLifecycle) Advance(o *order.Order) (order.Stage, error) {
	return l.Apply(o, order.OperationAdvance)
}

// Cancel moves o to Cancelled.
func (l OrderLifecycle) Cancel(o *order.Order) (order.Stage, error) {
	return l.Apply(o, order.OperationCancel)
}

// Status reads the current stage of o.
func (l OrderLifecycle) Status(o *order.Order) (order.Stage, error) {
	if err := o.Validate(); err != nil {
		return order.Unknown, err
	}
	return o.Stage(), nil
}

// Apply runs op on o.
func (l OrderLifecycle) Apply(o *order.Order, op order.Operation) (order.Stage, error) {
	if err := o.Validate(); err != nil {
		return order.Unknown, err
	}
	return o.Apply(op)
}

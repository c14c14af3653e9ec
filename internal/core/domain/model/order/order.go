package order

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for nil orders and orders that were not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the lifecycle. Its stage only changes through
// Advance and Cancel, always to a stage permitted by Stage.Advance / Stage.Cancel.
//
// Every method locks the order, so one *Order may be shared between goroutines:
// concurrent transitions are serialized and each one either happens completely or
// not at all.
type Order struct {
	mu sync.Mutex

	// id is the unique identifier for the order
	id kernel.UUID

	// stage is the current position in the lifecycle
	stage Stage

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// Snapshot is a consistent copy of an order's state, taken under its lock.
type Snapshot struct {
	ID        kernel.UUID
	Stage     Stage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder creates an order in the Pending stage.
//
//	o, err := order.NewOrder(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	stage, err := o.Advance() // Confirmed
func NewOrder(id kernel.UUID) (*Order, error) {
	now := clock()
	order := &Order{
		stage:         Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order read back from persistence. All arguments are
// validated; a stored Unknown stage or inverted timestamps are rejected.
func RestoreOrder(id kernel.UUID, stage Stage, createdAt, updatedAt time.Time) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStage(stage),
		order.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Stage returns the current stage. It never fails and has no side effects.
func (o *Order) Stage() Stage {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stage
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the stage last changed.
func (o *Order) UpdatedAt() time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.updatedAt
}

// Snapshot returns the order's state as of a single instant.
func (o *Order) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Snapshot{
		ID:        o.id,
		Stage:     o.stage,
		CreatedAt: o.createdAt,
		UpdatedAt: o.updatedAt,
	}
}

// Advance moves the order to its next forward stage and returns it.
// Delivered and Cancelled orders fail with *InvalidTransitionError and keep their stage.
func (o *Order) Advance() (Stage, error) {
	return o.Apply(OperationAdvance)
}

// Cancel moves a Pending or Confirmed order to Cancelled and returns it.
// Delivered and Cancelled orders fail with *InvalidTransitionError and keep their stage.
func (o *Order) Cancel() (Stage, error) {
	return o.Apply(OperationCancel)
}

// Apply runs op against the current stage and stores the result on success.
func (o *Order) Apply(op Operation) (Stage, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	next, err := o.stage.Apply(op)
	if err != nil {
		return Unknown, err
	}

	o.stage = next
	o.updatedAt = clock()
	return next, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	o.stage = stage
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updatedAt is invalid",
			fmt.Errorf("%s is before %s", updatedAt.Format(time.RFC3339Nano), createdAt.Format(time.RFC3339Nano)),
		)
	}
	o.createdAt = createdAt.UTC()
	o.updatedAt = updatedAt.UTC()
	return nil
}

// clock returns the current time at the precision Postgres stores, so a value
// survives a round trip unchanged.
func clock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

package commands

import (
	"errors"
	"time"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand cancels orders that stayed Pending since before cutoff.
type ExpirePendingOrdersCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewExpirePendingOrdersCommand(cutoff time.Time) (ExpirePendingOrdersCommand, error) {
	if cutoff.IsZero() {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return ExpirePendingOrdersCommand{
		cutoff: cutoff.UTC(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

func (c ExpirePendingOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

package guard_test

import (
	"errors"
	"testing"

	"orderflow/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuardUsageExample(t *testing.T) {
	type orderRef struct {
		id    string
		guard guard.ConstructorGuard
	}

	errOrderRefNotConstructed := errors.New("orderRef must be created via newOrderRef")

	newOrderRef := func(id string) (orderRef, error) {
		if id == "" {
			return orderRef{}, errors.New("id is required")
		}
		return orderRef{id: id, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		ref, err := newOrderRef("42")

		require.NoError(t, err)
		require.NoError(t, ref.guard.Validate(errOrderRefNotConstructed))
		assert.Equal(t, "42", ref.id)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var ref orderRef

		err := ref.guard.Validate(errOrderRefNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errOrderRefNotConstructed, err)
	})
}

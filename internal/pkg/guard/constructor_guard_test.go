package guard_test

import (
	"errors"
	"testing"

	"missionctl/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("launch command not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type selection struct {
		rack  string
		guard guard.ConstructorGuard
	}
	errNotConstructed := errors.New("selection must be created via newSelection")

	newSelection := func(rack string) (selection, error) {
		if rack == "" {
			return selection{}, errors.New("rack is required")
		}
		return selection{rack: rack, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_is_valid", func(t *testing.T) {
		s, err := newSelection("rack_02")
		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errNotConstructed))
	})

	t.Run("literal_is_rejected", func(t *testing.T) {
		s := selection{rack: "rack_02"}
		require.ErrorIs(t, s.guard.Validate(errNotConstructed), errNotConstructed)
	})
}

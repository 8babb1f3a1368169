package guard_test

import (
	"errors"
	"testing"

	"frete/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("object not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("shipment not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates guarding a domain value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type vehicle struct {
		model string
		plate string
		guard guard.ConstructorGuard
	}

	var errVehicleNotConstructed = errors.New("Vehicle must be created via NewVehicle")

	newVehicle := func(model, plate string) (vehicle, error) {
		if model == "" {
			return vehicle{}, errors.New("model is required")
		}
		if plate == "" {
			return vehicle{}, errors.New("plate is required")
		}
		return vehicle{model: model, plate: plate, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		v, err := newVehicle("Hino 300", "LD-43-21-AB")

		require.NoError(t, err)
		require.NoError(t, v.guard.Validate(errVehicleNotConstructed))
		assert.Equal(t, "Hino 300", v.model)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var v vehicle

		err := v.guard.Validate(errVehicleNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errVehicleNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newVehicle("", "LD-43-21-AB")
		require.Error(t, err)

		_, err = newVehicle("Hino 300", "")
		require.Error(t, err)
	})
}

func TestConstructorGuardCanBePassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	cp := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, cp.Validate(testError))
}

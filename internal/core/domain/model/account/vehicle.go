package account

import (
	"errors"
	"fmt"

	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/errs"
	"frete/internal/pkg/guard"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle was not created via NewVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrModelIsRequired is returned when the vehicle model is empty.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrPlateIsRequired is returned when the vehicle plate is empty.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
)

// Vehicle is reference data describing a truck a driver may use.
// It has no lifecycle of its own.
type Vehicle struct {
	id         kernel.UUID
	model      string
	plate      string
	capacityKg float64

	guard guard.ConstructorGuard
}

// NewVehicle creates a vehicle with a positive carrying capacity.
func NewVehicle(id kernel.UUID, model, plate string, capacityKg float64) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setModel(model),
		v.setPlate(plate),
		v.setCapacity(capacityKg),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Vehicle was created through NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Model returns the vehicle model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Plate returns the registration plate.
func (v *Vehicle) Plate() string {
	return v.plate
}

// CapacityKg returns the carrying capacity in kilograms.
func (v *Vehicle) CapacityKg() float64 {
	return v.capacityKg
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}
	v.model = model
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setCapacity(capacityKg float64) error {
	if capacityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%f is not greater than 0", capacityKg))
	}
	v.capacityKg = capacityKg
	return nil
}

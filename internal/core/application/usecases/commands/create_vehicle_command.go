package commands

import (
	"errors"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents an administrator registering a vehicle.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID  kernel.UUID
	actor      account.Actor
	model      string
	plate      string
	capacityKg float64

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a vehicle.
// Model, plate and capacity requirements are enforced by the vehicle
// constructor inside the handler.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	actor account.Actor,
	model, plate string,
	capacityKg float64,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		model:      model,
		plate:      plate,
		capacityKg: capacityKg,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setActor(actor),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier the new vehicle will be created under.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Actor returns the authenticated principal registering the vehicle.
func (c CreateVehicleCommand) Actor() account.Actor {
	return c.actor
}

// Model returns the vehicle make and model.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// Plate returns the registration plate.
func (c CreateVehicleCommand) Plate() string {
	return c.plate
}

// CapacityKg returns the load capacity in kilograms.
func (c CreateVehicleCommand) CapacityKg() float64 {
	return c.capacityKg
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

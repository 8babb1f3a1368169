package commands

import (
	"context"
	"errors"

	"frete/internal/core/domain/model/account"
)

// ErrOnlyAdminsMayManageVehicles is returned when a non-admin actor
// attempts to register a vehicle.
var ErrOnlyAdminsMayManageVehicles = errors.New("only administrators may manage vehicles")

// CreateVehicleCommandHandler handles the registration of fleet vehicles.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command. Administrators only.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsAdmin() {
		return ErrOnlyAdminsMayManageVehicles
	}

	vehicle, err := account.NewVehicle(cmd.VehicleID(), cmd.Model(), cmd.Plate(), cmd.CapacityKg())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, vehicle); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

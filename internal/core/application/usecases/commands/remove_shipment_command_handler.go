package commands

import (
	"context"
	"errors"
)

// ErrOnlyAdminsMayRemoveShipments is returned when a non-admin actor
// attempts to delete a shipment.
var ErrOnlyAdminsMayRemoveShipments = errors.New("only administrators may remove shipments")

// RemoveShipmentCommandHandler handles the administrative hard delete of a
// shipment, regardless of its status.
type RemoveShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRemoveShipmentCommandHandler creates a handler for shipment deletion.
func NewRemoveShipmentCommandHandler(uowFactory ShipmentUoWFactory) RemoveShipmentCommandHandler {
	return RemoveShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. Administrators only.
func (h *RemoveShipmentCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsAdmin() {
		return ErrOnlyAdminsMayRemoveShipments
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().Remove(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
	"errors"
)

// ErrOnlyDriversMayRejectShipments is returned when a non-driver actor
// attempts to decline a shipment.
var ErrOnlyDriversMayRejectShipments = errors.New("only drivers may reject shipments")

// RejectShipmentCommandHandler handles a driver declining a pending
// shipment. Declining is an acknowledgement, not a state change: the
// shipment stays pending and visible to every other driver.
//
// TODO: record per-driver rejections so the available-shipments listing can
// hide shipments a driver has already declined.
type RejectShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRejectShipmentCommandHandler creates a handler for shipment rejection.
func NewRejectShipmentCommandHandler(uowFactory ShipmentUoWFactory) RejectShipmentCommandHandler {
	return RejectShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reject command. The shipment must exist and still be
// pending; nothing is written.
func (h *RejectShipmentCommandHandler) Handle(ctx context.Context, cmd RejectShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsDriver() {
		return ErrOnlyDriversMayRejectShipments
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.Status().ValidateReject(); err != nil {
		return err
	}

	return nil
}

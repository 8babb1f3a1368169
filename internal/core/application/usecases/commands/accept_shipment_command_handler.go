package commands

import (
	"context"
	"errors"

	"frete/internal/core/domain/model/shipment"
)

// ErrOnlyDriversMayAcceptShipments is returned when a non-driver actor
// attempts to claim a shipment.
var ErrOnlyDriversMayAcceptShipments = errors.New("only drivers may accept shipments")

// AcceptShipmentCommandHandler handles the claiming of pending shipments by
// drivers. The assignment write is conditional on the stored row still being
// pending and unassigned, so two drivers racing for the same shipment can
// never both win: the loser gets an AlreadyAssignedError naming the winner.
type AcceptShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAcceptShipmentCommandHandler creates a handler for shipment claiming.
func NewAcceptShipmentCommandHandler(uowFactory ShipmentUoWFactory) AcceptShipmentCommandHandler {
	return AcceptShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command and returns the updated aggregate so
// callers can render the claimed shipment. The aggregate checks the status
// transition first, then the driver slot, so accepting an in-transit
// shipment reports the invalid status rather than the assignment conflict.
func (h *AcceptShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsDriver() {
		return nil, ErrOnlyDriversMayAcceptShipments
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Accept(cmd.Actor().ProfileID()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Assign(ctx, aggregate); err != nil {
		if errors.Is(err, shipment.ErrShipmentAlreadyAssigned) {
			return nil, h.describeConflict(ctx, cmd, err)
		}

		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// describeConflict enriches a lost assignment race with the current state of
// the shipment: the winning driver when one is recorded, or the status that
// now forbids accepting.
func (h *AcceptShipmentCommandHandler) describeConflict(
	ctx context.Context,
	cmd AcceptShipmentCommand,
	conflict error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return conflict
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return conflict
	}

	if driverID := current.DriverID(); driverID != nil {
		return &shipment.AlreadyAssignedError{DriverID: *driverID}
	}

	return &shipment.InvalidStatusError{Operation: "accept", Current: current.Status()}
}

package commands

import (
	"context"
	"errors"
	"time"

	"frete/internal/core/domain/model/shipment"
	"frete/internal/core/domain/services"
)

// ErrOnlyClientsMayCreateShipments is returned when a non-client actor
// attempts to publish a shipment.
var ErrOnlyClientsMayCreateShipments = errors.New("only clients may create shipments")

// CreateShipmentCommandHandler handles the business logic for publishing
// shipments. New shipments always start in the pending status with no
// driver, and receive an estimated price whenever the client did not
// offer one.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	estimator  services.PriceEstimator
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a ShipmentUoWFactory for transactional persistence and a
// PriceEstimator for quoting.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	estimator services.PriceEstimator,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
	}
}

// Handle processes the shipment creation command and returns the created
// aggregate so callers can render the quoted price.
// Only clients may create shipments; the authorization check runs before
// any persistence work.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsClient() {
		return nil, ErrOnlyClientsMayCreateShipments
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.Actor().ProfileID(),
		cmd.Details(),
		cmd.Price(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if !aggregate.HasPrice() {
		details := aggregate.Details()
		quote := h.estimator.Estimate(details.WeightKg, details.Category)
		if err = aggregate.Quote(quote); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

package commands

import (
	"errors"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
	"frete/internal/core/domain/model/shipment"
	"frete/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a client's request to publish a new
// shipment. Carries the actor performing the request, the descriptive
// details of the cargo and an optional client-offered price.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, actor, details, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, estimator)
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      account.Actor
	details    shipment.Details
	price      *float64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to publish a new shipment.
// Validates the shipment ID and the actor; the cargo details themselves are
// validated by the aggregate constructor inside the handler.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	actor account.Actor,
	details shipment.Details,
	price *float64,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		details: details,
		price:   price,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier the new shipment will be created under.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the authenticated principal creating the shipment.
func (c CreateShipmentCommand) Actor() account.Actor {
	return c.actor
}

// Details returns the descriptive attributes of the cargo.
func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

// Price returns the client-offered price, or nil when the estimator
// should quote one.
func (c CreateShipmentCommand) Price() *float64 {
	return c.price
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

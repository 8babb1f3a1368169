package commands

import (
	"errors"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/guard"
)

var ErrRejectShipmentCommandIsNotConstructed = errors.New(
	"RejectShipmentCommand must be created via NewRejectShipmentCommand constructor",
)

// RejectShipmentCommand represents a driver declining a pending shipment.
type RejectShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewRejectShipmentCommand creates a command for a driver to decline a shipment.
func NewRejectShipmentCommand(shipmentID kernel.UUID, actor account.Actor) (RejectShipmentCommand, error) {
	cmd := RejectShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
	); err != nil {
		return RejectShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRejectShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being declined.
func (c RejectShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the authenticated principal declining the shipment.
func (c RejectShipmentCommand) Actor() account.Actor {
	return c.actor
}

func (c *RejectShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RejectShipmentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

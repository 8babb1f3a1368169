package commands

import (
	"errors"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/guard"
)

var ErrAcceptShipmentCommandIsNotConstructed = errors.New(
	"AcceptShipmentCommand must be created via NewAcceptShipmentCommand constructor",
)

// AcceptShipmentCommand represents a driver's claim on a pending shipment.
type AcceptShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewAcceptShipmentCommand creates a command for a driver to claim a shipment.
func NewAcceptShipmentCommand(shipmentID kernel.UUID, actor account.Actor) (AcceptShipmentCommand, error) {
	cmd := AcceptShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
	); err != nil {
		return AcceptShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAcceptShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being claimed.
func (c AcceptShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the authenticated principal claiming the shipment.
func (c AcceptShipmentCommand) Actor() account.Actor {
	return c.actor
}

func (c *AcceptShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AcceptShipmentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

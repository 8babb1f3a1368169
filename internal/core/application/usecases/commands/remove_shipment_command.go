package commands

import (
	"errors"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/guard"
)

var ErrRemoveShipmentCommandIsNotConstructed = errors.New(
	"RemoveShipmentCommand must be created via NewRemoveShipmentCommand constructor",
)

// RemoveShipmentCommand represents an administrator deleting a shipment.
type RemoveShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewRemoveShipmentCommand creates a command to delete a shipment.
func NewRemoveShipmentCommand(shipmentID kernel.UUID, actor account.Actor) (RemoveShipmentCommand, error) {
	cmd := RemoveShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
	); err != nil {
		return RemoveShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to delete.
func (c RemoveShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the authenticated principal requesting the deletion.
func (c RemoveShipmentCommand) Actor() account.Actor {
	return c.actor
}

func (c *RemoveShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RemoveShipmentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

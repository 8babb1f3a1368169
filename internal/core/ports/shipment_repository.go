package ports

import (
	"context"

	"frete/internal/core/domain/model/kernel"
	"frete/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. All listing methods return shipments ordered newest-first by
// creation timestamp.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Assign persists a driver assignment conditionally: the write only
	// succeeds while the stored row is still Pending and unassigned.
	// Returns shipment.ErrShipmentAlreadyAssigned when another writer
	// claimed or transitioned the shipment first, so a concurrent accept
	// can never be silently overwritten.
	Assign(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such shipment exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllByClient retrieves every shipment owned by the given client.
	GetAllByClient(ctx context.Context, clientID kernel.UUID) ([]*shipment.Shipment, error)

	// GetAllByDriver retrieves the shipments assigned to the given driver.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*shipment.Shipment, error)

	// GetAllAvailable retrieves shipments open for claiming: status Pending
	// and no driver assigned.
	GetAllAvailable(ctx context.Context) ([]*shipment.Shipment, error)

	// GetAll retrieves every shipment. Reserved for administrators.
	GetAll(ctx context.Context) ([]*shipment.Shipment, error)

	// Remove hard-deletes a shipment. Administrative operation only.
	// Returns an errs.ObjectNotFoundError when no such shipment exists.
	Remove(ctx context.Context, id kernel.UUID) error
}

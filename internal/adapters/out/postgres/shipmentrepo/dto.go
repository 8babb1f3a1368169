// Package shipmentrepo provides the GORM-backed persistence for shipment
// aggregates, including the mapping between the domain model and its
// relational representation.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"frete/internal/core/domain/model/kernel"
	"frete/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Status and driver assignment are indexed because the
// claimable-backlog listing filters on both.
type ShipmentDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID          uuid.UUID  `gorm:"type:uuid;index"`
	DriverID          *uuid.UUID `gorm:"type:uuid;index"`
	Title             string
	Description       string
	WeightKg          float64 `gorm:"type:decimal(10,2)"`
	PhotoRef          string
	Origin            string
	Destination       string
	OriginCoords      string
	DestinationCoords string
	Category          string
	ServiceType       string
	Price             *float64 `gorm:"type:decimal(10,2)"`
	Status            string   `gorm:"index"`
	Escorted          bool
	ScheduledAt       *time.Time
	CreatedAt         time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	details := aggregate.Details()

	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		ClientID:          aggregate.ClientID().Bytes(),
		DriverID:          driverID,
		Title:             details.Title,
		Description:       details.Description,
		WeightKg:          details.WeightKg,
		PhotoRef:          details.PhotoRef,
		Origin:            details.Origin,
		Destination:       details.Destination,
		OriginCoords:      details.OriginCoords,
		DestinationCoords: details.DestinationCoords,
		Category:          details.Category.String(),
		ServiceType:       details.ServiceType.String(),
		Price:             aggregate.Price(),
		Status:            aggregate.Status().String(),
		Escorted:          details.Escorted,
		ScheduledAt:       details.ScheduledAt,
		CreatedAt:         aggregate.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	details := shipment.Details{
		Title:             dto.Title,
		Description:       dto.Description,
		WeightKg:          dto.WeightKg,
		PhotoRef:          dto.PhotoRef,
		Origin:            dto.Origin,
		Destination:       dto.Destination,
		OriginCoords:      dto.OriginCoords,
		DestinationCoords: dto.DestinationCoords,
		Category:          shipment.Category(dto.Category),
		ServiceType:       shipment.ServiceType(dto.ServiceType),
		ScheduledAt:       dto.ScheduledAt,
		Escorted:          dto.Escorted,
	}

	return shipment.RestoreShipment(id, clientID, details, dto.Price, status, driverID, dto.CreatedAt)
}

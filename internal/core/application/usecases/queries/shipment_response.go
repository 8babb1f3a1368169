// Package queries contains the read-side use cases of the CQRS split.
// Query handlers read directly from the database with raw SQL, bypassing
// the aggregates and the unit of work used by the write side.
package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"frete/internal/core/domain/model/kernel"
)

// ShipmentResponse is the read model shared by the shipment queries.
// It mirrors a shipment row without rehydrating the aggregate.
type ShipmentResponse struct {
	ID          kernel.UUID
	ClientID    kernel.UUID
	DriverID    *kernel.UUID
	Title       string
	Description string
	WeightKg    float64
	Origin      string
	Destination string
	Category    string
	ServiceType string
	Price       *float64
	Status      string
	Escorted    bool
	ScheduledAt *time.Time
	CreatedAt   time.Time
}

// selectShipmentColumns is the column list every shipment query selects,
// in the order scanShipmentRow expects.
const selectShipmentColumns = `
	id,
	client_id,
	driver_id,
	title,
	description,
	weight_kg,
	origin,
	destination,
	category,
	service_type,
	price,
	status,
	escorted,
	scheduled_at,
	created_at
`

func scanShipmentRow(scan func(dest ...any) error) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id, clientID uuid.UUID
	var driverID uuid.NullUUID
	var price sql.NullFloat64
	var scheduledAt sql.NullTime

	err := scan(
		&id,
		&clientID,
		&driverID,
		&resp.Title,
		&resp.Description,
		&resp.WeightKg,
		&resp.Origin,
		&resp.Destination,
		&resp.Category,
		&resp.ServiceType,
		&price,
		&resp.Status,
		&resp.Escorted,
		&scheduledAt,
		&resp.CreatedAt,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ShipmentResponse{}, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return ShipmentResponse{}, err
	}
	if driverID.Valid {
		driver, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return ShipmentResponse{}, idErr
		}
		resp.DriverID = &driver
	}
	if price.Valid {
		resp.Price = &price.Float64
	}
	if scheduledAt.Valid {
		resp.ScheduledAt = &scheduledAt.Time
	}

	return resp, nil
}

func scanShipmentRows(rows *sql.Rows) ([]ShipmentResponse, error) {
	shipments := make([]ShipmentResponse, 0)

	for rows.Next() {
		resp, err := scanShipmentRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

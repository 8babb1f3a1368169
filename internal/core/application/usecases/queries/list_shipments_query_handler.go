package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrShipmentAccessDenied is returned when an actor asks for shipments
// outside their visibility scope.
var ErrShipmentAccessDenied = errors.New("actor is not allowed to view this shipment")

// ListShipmentsQueryHandler reads the shipments visible to an actor,
// newest first. The scoping happens in SQL so a client can never receive
// another client's rows.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for role-scoped shipment listings.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the listing scoped to the query's actor. Actors without a
// resolved role get ErrShipmentAccessDenied.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	tx := h.db.WithContext(ctx)

	var rowsQuery *gorm.DB
	switch {
	case actor.IsAdmin():
		rowsQuery = tx.Raw(`
			SELECT ` + selectShipmentColumns + `
			FROM shipments
			ORDER BY created_at DESC
		`)
	case actor.IsClient():
		rowsQuery = tx.Raw(`
			SELECT `+selectShipmentColumns+`
			FROM shipments
			WHERE client_id = ?
			ORDER BY created_at DESC
		`, actor.ProfileID().Bytes())
	case actor.IsDriver():
		rowsQuery = tx.Raw(`
			SELECT `+selectShipmentColumns+`
			FROM shipments
			WHERE driver_id = ?
			ORDER BY created_at DESC
		`, actor.ProfileID().Bytes())
	default:
		return nil, ErrShipmentAccessDenied
	}

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentRows(rows)
}

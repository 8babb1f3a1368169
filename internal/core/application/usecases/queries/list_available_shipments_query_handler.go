package queries

import (
	"context"

	"gorm.io/gorm"

	"frete/internal/core/domain/model/shipment"
)

// ListAvailableShipmentsQueryHandler reads the claimable backlog,
// newest first. Any authenticated caller may browse it; claiming is
// where the driver-only rule applies.
type ListAvailableShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListAvailableShipmentsQueryHandler creates a handler for the
// claimable backlog listing.
func NewListAvailableShipmentsQueryHandler(db *gorm.DB) ListAvailableShipmentsQueryHandler {
	return ListAvailableShipmentsQueryHandler{db: db}
}

// Handle executes the backlog listing.
func (h ListAvailableShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectShipmentColumns+`
		FROM shipments
		WHERE status = ? AND driver_id IS NULL
		ORDER BY created_at DESC
	`, shipment.StatusPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentRows(rows)
}

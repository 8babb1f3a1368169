package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/shipment"
	"frete/internal/pkg/errs"
)

// GetShipmentQueryHandler reads a single shipment and enforces who may see
// it: the owning client, the assigned driver, any driver while the shipment
// is still claimable, and administrators.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment reads.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the read. A shipment outside the actor's scope returns
// ErrShipmentAccessDenied, not a not-found, so the caller can distinguish
// a missing shipment from a hidden one.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+selectShipmentColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	resp, err := scanShipmentRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShipmentResponse{}, errs.NewObjectNotFoundError("shipment_id", query.ShipmentID())
		}
		return ShipmentResponse{}, err
	}

	if !visibleTo(query.Actor(), resp) {
		return ShipmentResponse{}, ErrShipmentAccessDenied
	}

	return resp, nil
}

func visibleTo(actor account.Actor, resp ShipmentResponse) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsClient():
		return resp.ClientID.IsEqual(actor.ProfileID())
	case actor.IsDriver():
		if resp.DriverID != nil {
			return resp.DriverID.IsEqual(actor.ProfileID())
		}
		return resp.Status == shipment.StatusPending.String()
	default:
		return false
	}
}

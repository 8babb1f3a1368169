package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"frete/internal/core/domain/model/shipment"
)

// PendingBacklogQueryHandler counts the unclaimed shipments for the
// periodic backlog report.
type PendingBacklogQueryHandler struct {
	db *gorm.DB
}

// NewPendingBacklogQueryHandler creates a handler for the backlog count.
func NewPendingBacklogQueryHandler(db *gorm.DB) PendingBacklogQueryHandler {
	return PendingBacklogQueryHandler{db: db}
}

// Handle executes the backlog count.
func (h PendingBacklogQueryHandler) Handle(
	ctx context.Context,
	query PendingBacklogQuery,
) (PendingBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PendingBacklogQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*), MIN(created_at)
		FROM shipments
		WHERE status = ? AND driver_id IS NULL
	`, shipment.StatusPending.String()).Row()

	var resp PendingBacklogQueryResponse
	var oldest sql.NullTime
	if err := row.Scan(&resp.Count, &oldest); err != nil {
		return PendingBacklogQueryResponse{}, err
	}

	if oldest.Valid {
		resp.OldestCreatedAt = &oldest.Time
	}

	return resp, nil
}

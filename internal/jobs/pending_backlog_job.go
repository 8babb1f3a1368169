package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"frete/internal/core/application/usecases/queries"
)

// PendingBacklogJob periodically reports how many shipments are still
// waiting for a driver and how stale the oldest one is. Purely
// observational: it never mutates shipment state.
type PendingBacklogJob struct {
	handler queries.PendingBacklogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingBacklogJob creates the backlog report job, scheduled once per minute.
func NewPendingBacklogJob(handler queries.PendingBacklogQueryHandler, logger *slog.Logger) *PendingBacklogJob {
	return &PendingBacklogJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_backlog_job"),
	}
}

// Start begins the periodic backlog report.
func (j *PendingBacklogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		resp, err := j.handler.Handle(ctx, queries.NewPendingBacklogQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending backlog report failed", "error", err)
			return
		}

		if resp.Count == 0 {
			return
		}

		args := []any{"count", resp.Count}
		if resp.OldestCreatedAt != nil {
			args = append(args, "oldest_age", time.Since(*resp.OldestCreatedAt).Round(time.Second).String())
		}
		j.logger.InfoContext(ctx, "Shipments awaiting a driver", args...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog report job.
func (j *PendingBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending backlog job stopped")
}

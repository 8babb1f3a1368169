package jobs

import (
	"fmt"
	"log/slog"

	"frete/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingBacklogJob *PendingBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(backlogHandler queries.PendingBacklogQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		pendingBacklogJob: NewPendingBacklogJob(backlogHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingBacklogJob.Stop()
}

package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"missionctl/internal/core/application/usecases/commands"
)

// EveryMinute fires at second zero of every minute.
const EveryMinute = "0 * * * * *"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionReaperJob *SessionReaperJob
	viewReaperJob    *ViewReaperJob
}

// NewJobManager creates a new job manager with all required jobs.
// Sessions and views share the idle timeout.
func NewJobManager(
	reapSessionsHandler commands.ReapIdleSessionsCommandHandler,
	reapViewsHandler commands.ReapIdleViewsCommandHandler,
	idleTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionReaperJob: NewSessionReaperJob(reapSessionsHandler, idleTimeout, logger),
		viewReaperJob:    NewViewReaperJob(reapViewsHandler, idleTimeout, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionReaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start session reaper job: %w", err)
	}

	if err := jm.viewReaperJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sessionReaperJob.Stop()
		return fmt.Errorf("failed to start view reaper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.viewReaperJob.Stop()
	jm.sessionReaperJob.Stop()
}

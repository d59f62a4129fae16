package jobs

import (
	"context"
	"log/slog"
	"time"

	"missionctl/internal/core/application/usecases/commands"
	"missionctl/internal/pkg/periodic"

	"github.com/robfig/cron/v3"
)

// SessionReaperJob closes mission-control sessions that saw no operator
// activity for longer than the idle timeout.
type SessionReaperJob struct {
	handler     commands.ReapIdleSessionsCommandHandler
	idleTimeout time.Duration
	schedule    string
	now         func() time.Time
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewSessionReaperJob creates the job. It runs at the start of every minute.
func NewSessionReaperJob(
	handler commands.ReapIdleSessionsCommandHandler,
	idleTimeout time.Duration,
	logger *slog.Logger,
) *SessionReaperJob {
	logger = logger.With("component", "session_reaper_job")
	return &SessionReaperJob{
		handler:     handler,
		idleTimeout: idleTimeout,
		schedule:    EveryMinute,
		now:         time.Now,
		cron:        cron.New(cron.WithSeconds(), cron.WithLogger(periodic.NewCronLogger(logger))),
		logger:      logger,
	}
}

// Start schedules the reaper.
func (j *SessionReaperJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session reaper job started",
		"schedule", j.schedule, "idle_timeout", j.idleTimeout.String())
	return nil
}

// Stop stops the reaper and waits for a running pass to finish.
func (j *SessionReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session reaper job stopped")
}

func (j *SessionReaperJob) run(ctx context.Context) {
	cmd, err := commands.NewReapIdleSessionsCommand(j.now(), j.idleTimeout)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session reaper job misconfigured", "error", err)
		return
	}

	reaped, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session reaper job failed", "error", err)
		return
	}
	if reaped > 0 {
		j.logger.InfoContext(ctx, "Idle sessions closed", "count", reaped)
	}
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"missionctl/internal/core/application/usecases/commands"
	"missionctl/internal/pkg/periodic"

	"github.com/robfig/cron/v3"
)

// ViewReaperJob closes telemetry views that nobody read or streamed for
// longer than the idle timeout.
type ViewReaperJob struct {
	handler     commands.ReapIdleViewsCommandHandler
	idleTimeout time.Duration
	schedule    string
	now         func() time.Time
	cron        *cron.Cron
	logger      *slog.Logger
}

func NewViewReaperJob(
	handler commands.ReapIdleViewsCommandHandler,
	idleTimeout time.Duration,
	logger *slog.Logger,
) *ViewReaperJob {
	logger = logger.With("component", "view_reaper_job")
	return &ViewReaperJob{
		handler:     handler,
		idleTimeout: idleTimeout,
		schedule:    EveryMinute,
		now:         time.Now,
		cron:        cron.New(cron.WithSeconds(), cron.WithLogger(periodic.NewCronLogger(logger))),
		logger:      logger,
	}
}

func (j *ViewReaperJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "View reaper job started",
		"schedule", j.schedule, "idle_timeout", j.idleTimeout.String())
	return nil
}

func (j *ViewReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "View reaper job stopped")
}

func (j *ViewReaperJob) run(ctx context.Context) {
	cmd, err := commands.NewReapIdleViewsCommand(j.now(), j.idleTimeout)
	if err != nil {
		j.logger.ErrorContext(ctx, "View reaper job misconfigured", "error", err)
		return
	}

	reaped, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "View reaper job failed", "error", err)
		return
	}
	if reaped > 0 {
		j.logger.InfoContext(ctx, "Idle views closed", "count", reaped)
	}
}

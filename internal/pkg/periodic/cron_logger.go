package periodic

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

var _ cron.Logger = cronLogger{}

// cronLogger routes robfig/cron's own messages to slog. cron reports every
// wake-up and skipped run at Info, which is noise at our intervals.
type cronLogger struct {
	logger *slog.Logger
}

// NewCronLogger adapts a slog logger for cron.WithLogger and cron chains.
func NewCronLogger(logger *slog.Logger) cron.Logger {
	return cronLogger{logger: logger}
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

package commands

import (
	"errors"
	"time"

	"missionctl/internal/pkg/errs"
	"missionctl/internal/pkg/guard"
)

var ErrReapIdleViewsCommandIsNotConstructed = errors.New(
	"ReapIdleViewsCommand must be created via NewReapIdleViewsCommand constructor",
)

// ReapIdleViewsCommand closes telemetry views nobody reads or streams.
type ReapIdleViewsCommand struct {
	now         time.Time
	idleTimeout time.Duration

	guard guard.ConstructorGuard
}

func NewReapIdleViewsCommand(now time.Time, idleTimeout time.Duration) (ReapIdleViewsCommand, error) {
	if idleTimeout <= 0 {
		return ReapIdleViewsCommand{}, errs.NewValueIsOutOfRangeError("idleTimeout", idleTimeout, "1ns", "unbounded")
	}
	return ReapIdleViewsCommand{
		now:         now,
		idleTimeout: idleTimeout,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ReapIdleViewsCommand) Validate() error {
	return c.guard.Validate(ErrReapIdleViewsCommandIsNotConstructed)
}

func (c ReapIdleViewsCommand) Now() time.Time {
	return c.now
}

func (c ReapIdleViewsCommand) IdleTimeout() time.Duration {
	return c.idleTimeout
}

package commands

import (
	"errors"
	"time"

	"missionctl/internal/pkg/errs"
	"missionctl/internal/pkg/guard"
)

var ErrReapIdleSessionsCommandIsNotConstructed = errors.New(
	"ReapIdleSessionsCommand must be created via NewReapIdleSessionsCommand constructor",
)

// ReapIdleSessionsCommand closes sessions whose operator walked away without
// leaving mission control. Reaped sessions stop polling; the backend keeps
// whatever state their missions reached.
//
// Example:
//
//	cmd, _ := NewReapIdleSessionsCommand(time.Now(), 30*time.Minute)
//	n, err := NewReapIdleSessionsCommandHandler(sessions).Handle(ctx, cmd)
type ReapIdleSessionsCommand struct {
	now         time.Time
	idleTimeout time.Duration

	guard guard.ConstructorGuard
}

func NewReapIdleSessionsCommand(now time.Time, idleTimeout time.Duration) (ReapIdleSessionsCommand, error) {
	if idleTimeout <= 0 {
		return ReapIdleSessionsCommand{}, errs.NewValueIsOutOfRangeError("idleTimeout", idleTimeout, "1ns", "unbounded")
	}
	return ReapIdleSessionsCommand{
		now:         now,
		idleTimeout: idleTimeout,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ReapIdleSessionsCommand) Validate() error {
	return c.guard.Validate(ErrReapIdleSessionsCommandIsNotConstructed)
}

func (c ReapIdleSessionsCommand) Now() time.Time {
	return c.now
}

func (c ReapIdleSessionsCommand) IdleTimeout() time.Duration {
	return c.idleTimeout
}

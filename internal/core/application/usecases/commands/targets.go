package commands

import (
	"strings"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/errs"
)

// sessionTarget is embedded by commands acting on one session.
type sessionTarget struct {
	sessionID kernel.UUID
}

// SessionID returns the session the command acts on.
func (t sessionTarget) SessionID() kernel.UUID {
	return t.sessionID
}

func (t *sessionTarget) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.sessionID = id
	return nil
}

// viewTarget is embedded by commands acting on one telemetry view.
type viewTarget struct {
	viewID kernel.UUID
}

// ViewID returns the view the command acts on.
func (t viewTarget) ViewID() kernel.UUID {
	return t.viewID
}

func (t *viewTarget) setViewID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.viewID = id
	return nil
}

func requiredText(paramName string, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	return value, nil
}

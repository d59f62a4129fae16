package telemetry

import (
	"slices"
	"strings"

	"missionctl/internal/pkg/errs"
)

// Command is an operator instruction forwarded to a drone in flight.
type Command string

const (
	CommandTakeoff Command = "takeoff"
	CommandHover   Command = "hover"
	CommandLaunch  Command = "launch"
	CommandLand    Command = "land"
	CommandStop    Command = "stop"
	CommandAbort   Command = "abort"
	CommandRTL     Command = "rtl"
)

// Commands lists every command the monitoring backend accepts.
func Commands() []Command {
	return []Command{
		CommandTakeoff, CommandHover, CommandLaunch, CommandLand,
		CommandStop, CommandAbort, CommandRTL,
	}
}

// ParseCommand accepts a command name in any letter case.
func ParseCommand(s string) (Command, error) {
	c := Command(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return "", errs.NewValueIsRequiredError("command")
	}
	if !slices.Contains(Commands(), c) {
		return "", errs.NewValueIsInvalidError("command")
	}
	return c, nil
}

func (c Command) String() string {
	return string(c)
}

package domain

import "strings"

type CommandKind string

const (
	CommandMenu       CommandKind = "menu"
	CommandStartShift CommandKind = "start_shift"
	CommandEndShift   CommandKind = "end_shift"
	CommandTakeBreak  CommandKind = "take_break"
	CommandEndBreak   CommandKind = "end_break"
	CommandApprove    CommandKind = "approve_end_shift"
	CommandDeny       CommandKind = "deny_end_shift"
)

var commandAliases = map[string]CommandKind{
	"/start":  CommandMenu,
	"start":   CommandMenu,
	"approve": CommandApprove,
	"deny":    CommandDeny,
}

func ParseCommand(raw string) (CommandKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if kind, ok := commandAliases[normalized]; ok {
		return kind, true
	}

	kind := CommandKind(normalized)
	switch kind {
	case CommandMenu, CommandStartShift, CommandEndShift, CommandTakeBreak, CommandEndBreak, CommandApprove, CommandDeny:
		return kind, true
	default:
		return "", false
	}
}

// NeedsTarget reports whether the command acts on another worker.
func (k CommandKind) NeedsTarget() bool {
	return k == CommandApprove || k == CommandDeny
}

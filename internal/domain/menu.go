package domain

// Action is a button offered to a user. Target is set for approval buttons.
type Action struct {
	Command CommandKind
	Label   string
	Target  WorkerID
}

var (
	ActionStartShift = Action{Command: CommandStartShift, Label: "🔋 Начать смену"}
	ActionEndShift   = Action{Command: CommandEndShift, Label: "🪫 Закончить смену"}
	ActionTakeBreak  = Action{Command: CommandTakeBreak, Label: "☕ Взять перерыв"}
	ActionEndBreak   = Action{Command: CommandEndBreak, Label: "☕ Закончить перерыв"}
)

func ApproveAction(target WorkerID) Action {
	return Action{Command: CommandApprove, Label: "✅ Подтвердить", Target: target}
}

func DenyAction(target WorkerID) Action {
	return Action{Command: CommandDeny, Label: "❌ Отклонить", Target: target}
}

// MenuFor derives the actions available to a worker from its role and state.
func MenuFor(role Role, state SessionState) []Action {
	if !state.OnShift() {
		return []Action{ActionStartShift}
	}
	if role != RoleScout {
		return []Action{ActionEndShift}
	}
	if state.OnBreak {
		return []Action{ActionEndShift, ActionEndBreak}
	}
	return []Action{ActionEndShift, ActionTakeBreak}
}

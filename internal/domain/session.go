package domain

import "time"

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseOnShift Phase = "on_shift"
)

// SessionState is the per-worker shift state. The zero value is an idle worker.
type SessionState struct {
	Phase      Phase
	OnBreak    bool
	ShiftStart time.Time
	BreakStart time.Time
	// BreakUsed accumulates break time across the current shift with
	// sub-minute precision. Displays floor it to whole minutes.
	BreakUsed time.Duration
}

func (s SessionState) OnShift() bool {
	return s.Phase == PhaseOnShift
}

// Begin moves the worker onto a fresh shift.
func (s *SessionState) Begin(now time.Time) {
	*s = SessionState{
		Phase:      PhaseOnShift,
		ShiftStart: now,
	}
}

// Finish returns the worker to idle and forgets all shift counters.
func (s *SessionState) Finish() {
	*s = SessionState{Phase: PhaseIdle}
}

func (s SessionState) ShiftElapsed(now time.Time) time.Duration {
	if s.ShiftStart.IsZero() {
		return 0
	}
	return nonNegative(now.Sub(s.ShiftStart))
}

func (s SessionState) BreakElapsed(now time.Time) time.Duration {
	if !s.OnBreak || s.BreakStart.IsZero() {
		return 0
	}
	return nonNegative(now.Sub(s.BreakStart))
}

// WholeMinutes floors a duration to whole minutes for display.
func WholeMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

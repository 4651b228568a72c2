package ports

import (
	"context"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
)

type EventType string

const (
	EventShiftStarted      EventType = "shift_started"
	EventShiftEnded        EventType = "shift_ended"
	EventShiftEndRequested EventType = "shift_end_requested"
	EventShiftEndApproved  EventType = "shift_end_approved"
	EventShiftEndDenied    EventType = "shift_end_denied"
	EventBreakStarted      EventType = "break_started"
	EventBreakEnded        EventType = "break_ended"
	EventBreakExpired      EventType = "break_expired"
)

type Event struct {
	Type    EventType
	At      time.Time
	Actor   domain.WorkerID
	Target  domain.WorkerID
	Payload map[string]any
}

// Journal records shift events for audit. It is never read back into state.
type Journal interface {
	Record(ctx context.Context, event Event) error
}

type NopJournal struct{}

func (NopJournal) Record(context.Context, Event) error { return nil }

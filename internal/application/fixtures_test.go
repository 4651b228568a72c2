package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/stretchr/testify/require"
)

const (
	ownerID  domain.WorkerID = "1"
	scoutID  domain.WorkerID = "100"
	scout2ID domain.WorkerID = "200"
	groupID  domain.ChatID   = "-1001"
)

var shiftDay = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []domain.Notification
	menus    []domain.Menu
}

func (n *recordingNotifier) Notify(_ context.Context, message domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

func (n *recordingNotifier) ShowMenu(_ context.Context, menu domain.Menu) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menus = append(n.menus, menu)
	return nil
}

func (n *recordingNotifier) To(chat domain.ChatID) []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []domain.Notification
	for _, message := range n.messages {
		if message.To == chat {
			out = append(out, message)
		}
	}
	return out
}

func (n *recordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = nil
	n.menus = nil
}

func testRoster() domain.Roster {
	return domain.Roster{
		Owner:     domain.OwnerProfile{ID: ownerID, Name: "Anna (@anna)"},
		GroupChat: groupID,
		Scouts: []domain.WorkerProfile{
			{ID: scoutID, Name: "Ivan (@ivan)", BreakAllowance: 60 * time.Minute, MinimumShift: 12 * time.Hour},
			{ID: scout2ID, Name: "Oleg (@oleg)", BreakAllowance: 30 * time.Minute, MinimumShift: 8 * time.Hour},
		},
	}
}

type harness struct {
	svc      *Service
	clock    *fakeClock
	notifier *recordingNotifier
}

// newHarness builds a service whose break timers never fire on their own.
func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithScheduler(t, NewBreakScheduler(time.Hour, time.Hour, nil))
}

func newHarnessWithScheduler(t *testing.T, scheduler *BreakScheduler) *harness {
	t.Helper()

	registry, err := NewRegistry(testRoster())
	require.NoError(t, err)

	clock := &fakeClock{now: shiftDay}
	notifier := &recordingNotifier{}
	svc := NewService(registry, notifier, clock, ServiceOptions{Scheduler: scheduler})
	t.Cleanup(svc.Close)

	return &harness{svc: svc, clock: clock, notifier: notifier}
}

func (h *harness) do(actor domain.WorkerID, command domain.CommandKind) Outcome {
	return h.svc.Handle(context.Background(), Request{Actor: actor, Command: command})
}

func (h *harness) resolve(command domain.CommandKind, target domain.WorkerID) Outcome {
	return h.svc.Handle(context.Background(), Request{Actor: ownerID, Command: command, Target: target})
}

func (h *harness) activeTimer(id domain.WorkerID) *breakTimer {
	var timer *breakTimer
	h.svc.sessions.withSlot(id, func(sl *slot) {
		timer = sl.timer
	})
	return timer
}

func (h *harness) setState(id domain.WorkerID, state domain.SessionState) {
	h.svc.sessions.withSlot(id, func(sl *slot) {
		sl.state = state
	})
}

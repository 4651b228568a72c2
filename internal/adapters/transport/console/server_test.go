package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/application"
	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

type stubHandler struct {
	mu       sync.Mutex
	requests []application.Request
}

func (h *stubHandler) Handle(_ context.Context, req application.Request) application.Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, req)
	return application.Outcome{}
}

func (h *stubHandler) Board() []application.BoardEntry {
	return []application.BoardEntry{{ID: "1", Name: "Boss", Role: domain.RoleOwner}}
}

func (h *stubHandler) Now() time.Time {
	return now
}

func stubBoard(entries []application.BoardEntry, at time.Time) (string, error) {
	return "board " + string(entries[0].ID) + " " + at.Format("15:04"), nil
}

func TestServeDispatchesCommands(t *testing.T) {
	t.Parallel()

	handler := &stubHandler{}
	var out bytes.Buffer
	server := NewServer(handler, NewTerminal(&out), stubBoard, nil)

	input := strings.Join([]string{
		"# morning",
		"",
		"100 start_shift",
		"100 TAKE_BREAK",
		"1 approve 100",
		"1 /start",
		"status",
	}, "\n")

	require.NoError(t, server.Serve(context.Background(), strings.NewReader(input)))

	require.Len(t, handler.requests, 4)
	assert.Equal(t, application.Request{Actor: "100", Command: domain.CommandStartShift}, handler.requests[0])
	assert.Equal(t, domain.CommandTakeBreak, handler.requests[1].Command)
	assert.Equal(t, application.Request{Actor: "1", Command: domain.CommandApprove, Target: "100"}, handler.requests[2])
	assert.Equal(t, domain.CommandMenu, handler.requests[3].Command)
	assert.Contains(t, out.String(), "board 1 08:00")
}

func TestServeRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "missing command", line: "100", want: "missing command for 100"},
		{name: "unknown command", line: "100 dance", want: `unknown command "dance"`},
		{name: "missing target", line: "1 deny_end_shift", want: "deny_end_shift needs a target worker id"},
		{name: "help", line: "help", want: "usage:"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := &stubHandler{}
			var out bytes.Buffer
			server := NewServer(handler, NewTerminal(&out), stubBoard, nil)

			require.NoError(t, server.Serve(context.Background(), strings.NewReader(tt.line)))
			assert.Empty(t, handler.requests)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestServeStopsWhenContextIsCancelled(t *testing.T) {
	t.Parallel()

	reader, writer := io.Pipe()
	defer writer.Close()

	server := NewServer(&stubHandler{}, NewTerminal(&bytes.Buffer{}), stubBoard, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, reader) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}

type clock struct{}

func (clock) Now() time.Time { return now }

func TestServeDrivesShiftService(t *testing.T) {
	t.Parallel()

	registry, err := application.NewRegistry(domain.Roster{
		Owner:     domain.OwnerProfile{ID: "1", Name: "Boss"},
		Scouts:    []domain.WorkerProfile{{ID: "100", Name: "Anna", BreakAllowance: time.Hour, MinimumShift: 12 * time.Hour}},
		GroupChat: "-1001",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	terminal := NewTerminal(&out)
	service := application.NewService(registry, terminal, clock{}, application.ServiceOptions{})
	defer service.Close()

	server := NewServer(service, terminal, stubBoard, nil)
	require.NoError(t, server.Serve(context.Background(), strings.NewReader("100 start_shift\n100 end_shift\n")))

	output := out.String()
	assert.Contains(t, output, "→ 100: 🛴 Скаут Anna.\n  Смена #1 работу начал.\n")
	assert.Contains(t, output, "→ -1001: 🛴 Скаут Anna.")
	assert.Contains(t, output, "→ 1: 🔔 Запрос на досрочное завершение смены от Anna.")
	assert.Contains(t, output, "[✅ Подтвердить: approve_end_shift 100]")
	assert.Equal(t, domain.PhaseOnShift, service.State("100").Phase)
}

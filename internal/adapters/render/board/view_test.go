package board

import (
	"strings"
	"testing"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/application"
	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBoard(t *testing.T) {
	now := time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC)
	shiftStart := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	output, err := Render([]application.BoardEntry{
		{ID: "1", Name: "Boss", Role: domain.RoleOwner},
		{
			ID:   "100",
			Name: "Anna",
			Role: domain.RoleScout,
			State: domain.SessionState{
				Phase:      domain.PhaseOnShift,
				OnBreak:    true,
				ShiftStart: shiftStart,
				BreakStart: now.Add(-10 * time.Minute),
				BreakUsed:  20 * time.Minute,
			},
			BreakAllowance: 60 * time.Minute,
			MinimumShift:   12 * time.Hour,
			Pending: &domain.PendingApproval{
				ID:          uuid.New(),
				Requester:   "100",
				Elapsed:     3 * time.Hour,
				RequestedAt: shiftStart.Add(3 * time.Hour),
			},
		},
		{ID: "200", Name: "Boris", Role: domain.RoleScout, BreakAllowance: 30 * time.Minute},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Scout Shift Board")
	assert.Contains(t, output, "workers: 3  on shift: 1  on break: 1")
	assert.Contains(t, output, "Boss (1) Старший Скаут")
	assert.Contains(t, output, "Anna (100) Скаут")
	assert.Contains(t, output, "on shift since 08:00 (3h30m)")
	assert.Contains(t, output, "on break since 11:20")
	assert.Contains(t, output, "30/60 min")
	assert.Contains(t, output, "early end requested at 11:00 after 3h00m")
	assert.Contains(t, output, "0/30 min")
	assert.Contains(t, output, "idle")
}

func TestRenderEmptyBoard(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "workers: 0")
	assert.Contains(t, output, "No workers registered.")
}

func TestRenderOwnerHasNoBreakBar(t *testing.T) {
	output, err := Render([]application.BoardEntry{{ID: "1", Name: "Boss", Role: domain.RoleOwner}}, RenderOptions{})

	require.NoError(t, err)
	assert.NotContains(t, output, "break:")
}

func TestRenderProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		percent float64
		filled  int
	}{
		{name: "empty", percent: 0, filled: 0},
		{name: "half", percent: 50, filled: 12},
		{name: "over", percent: 180, filled: 24},
		{name: "negative", percent: -5, filled: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bar := renderProgressBar(tt.percent, breakBarWidth, newStyles())
			assert.Equal(t, tt.filled, strings.Count(bar, "="))
			assert.Equal(t, breakBarWidth-tt.filled, strings.Count(bar, "-"))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0h00m", formatDuration(-time.Minute))
	assert.Equal(t, "2h05m", formatDuration(2*time.Hour+5*time.Minute+59*time.Second))
}

package board

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/application"
	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const breakBarWidth = 24

type RenderOptions struct {
	Now time.Time
}

func renderView(entries []application.BoardEntry, opts RenderOptions, s styles) string {
	onShift, onBreak := 0, 0
	for _, entry := range entries {
		if entry.State.OnShift() {
			onShift++
		}
		if entry.State.OnBreak {
			onBreak++
		}
	}

	lines := []string{
		s.title.Render("Scout Shift Board"),
		s.header.Render(fmt.Sprintf("workers: %d  on shift: %d  on break: %d", len(entries), onShift, onBreak)),
	}

	if len(entries) == 0 {
		lines = append(lines, s.empty.Render("No workers registered."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range entries {
		lines = append(lines, s.section.Render(renderEntry(entry, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderEntry(entry application.BoardEntry, opts RenderOptions, s styles) string {
	titleStyle := s.worker
	if entry.Role == domain.RoleOwner {
		titleStyle = s.owner
	}

	parts := []string{
		titleStyle.Render(fmt.Sprintf("%s (%s) %s", strings.TrimSpace(entry.Name), entry.ID, entry.Role.Label())),
		stateLine(entry.State, opts.Now, s),
	}

	if entry.Role == domain.RoleScout {
		parts = append(parts, breakLine(entry, opts.Now, s))
	}

	if entry.Pending != nil {
		parts = append(parts, s.pending.Render(fmt.Sprintf(
			"early end requested at %s after %s",
			entry.Pending.RequestedAt.Format("15:04"),
			formatDuration(entry.Pending.Elapsed),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func stateLine(state domain.SessionState, now time.Time, s styles) string {
	if !state.OnShift() {
		return s.idle.Render("idle")
	}

	line := fmt.Sprintf("on shift since %s", state.ShiftStart.Format("15:04"))
	if !now.IsZero() {
		line += fmt.Sprintf(" (%s)", formatDuration(state.ShiftElapsed(now)))
	}
	if !state.OnBreak {
		return s.onShift.Render(line)
	}

	breakPart := fmt.Sprintf("on break since %s", state.BreakStart.Format("15:04"))
	return lipgloss.JoinHorizontal(lipgloss.Top, s.onShift.Render(line), "  ", s.onBreak.Render(breakPart))
}

// breakLine shows break minutes used against the allowance, counting the
// break in progress.
func breakLine(entry application.BoardEntry, now time.Time, s styles) string {
	used := entry.State.BreakUsed
	if entry.State.OnBreak && !now.IsZero() {
		used += entry.State.BreakElapsed(now)
	}

	percent := 100.0
	if entry.BreakAllowance > 0 {
		percent = float64(used) / float64(entry.BreakAllowance) * 100
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render("break:"),
		" ",
		renderProgressBar(percent, breakBarWidth, s),
		" ",
		s.detail.Render(fmt.Sprintf("%d/%d min", domain.WholeMinutes(used), domain.WholeMinutes(entry.BreakAllowance))),
	)
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	used := clampPercent(usedPercent)
	filled := int(math.Round(float64(width) * used / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Minute)
	return fmt.Sprintf("%dh%02dm", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

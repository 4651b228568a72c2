// Package console is a line-oriented transport: commands are read as text
// lines and every chat is printed to one terminal.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ansmoore/UrentScoutsBot/internal/application"
	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/ansmoore/UrentScoutsBot/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

const continuationIndent = "  "

type styles struct {
	arrow  lipgloss.Style
	chat   lipgloss.Style
	button lipgloss.Style
	hint   lipgloss.Style
}

func newStyles() styles {
	return styles{
		arrow:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		chat:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		button: lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		hint:   lipgloss.NewStyle().Faint(true),
	}
}

// Terminal prints notifications for every chat to a single writer. Writes
// from command handling and break timers are serialized.
type Terminal struct {
	mu     sync.Mutex
	out    io.Writer
	styles styles
}

var _ ports.Notifier = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out, styles: newStyles()}
}

func (t *Terminal) Notify(ctx context.Context, message domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.write(t.block(message.To, message.Text, message.Buttons))
}

func (t *Terminal) ShowMenu(ctx context.Context, menu domain.Menu) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.write(t.block(menu.Chat, application.MsgChooseAction, menu.Actions))
}

// Println writes operator output such as the board or usage hints.
func (t *Terminal) Println(text string) error {
	return t.write(text + "\n")
}

func (t *Terminal) Hint(text string) error {
	return t.write(t.styles.hint.Render(text) + "\n")
}

func (t *Terminal) block(chat domain.ChatID, text string, buttons []domain.Action) string {
	var b strings.Builder

	lines := strings.Split(text, "\n")
	b.WriteString(t.styles.arrow.Render("→"))
	b.WriteString(" ")
	b.WriteString(t.styles.chat.Render(string(chat)))
	b.WriteString(": ")
	b.WriteString(strings.TrimRight(lines[0], " "))
	b.WriteString("\n")
	for _, line := range lines[1:] {
		b.WriteString(continuationIndent)
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}

	if len(buttons) > 0 {
		rendered := make([]string, 0, len(buttons))
		for _, button := range buttons {
			rendered = append(rendered, t.styles.button.Render(buttonLabel(button)))
		}
		b.WriteString(continuationIndent)
		b.WriteString(strings.Join(rendered, " "))
		b.WriteString("\n")
	}

	return b.String()
}

func (t *Terminal) write(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := io.WriteString(t.out, text); err != nil {
		return fmt.Errorf("write console output: %w", err)
	}
	return nil
}

// buttonLabel shows the label with the command to type for it.
func buttonLabel(action domain.Action) string {
	command := string(action.Command)
	if action.Target != "" {
		command += " " + string(action.Target)
	}
	return fmt.Sprintf("[%s: %s]", action.Label, command)
}

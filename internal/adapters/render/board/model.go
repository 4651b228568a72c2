package board

import (
	"errors"
	"io"

	"github.com/ansmoore/UrentScoutsBot/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	entries []application.BoardEntry
	opts    RenderOptions
	styles  styles
	output  string
}

func newModel(entries []application.BoardEntry, opts RenderOptions) model {
	return model{
		entries: entries,
		opts:    opts,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.entries, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws the board once through a headless bubbletea program and
// returns the final frame. Going through the program keeps the board on the
// same Init/Update/View path an interactive view would use; with no input and
// a discarded output it quits after the first render message.
func Render(entries []application.BoardEntry, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(entries, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/application"
	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/hashicorp/go-hclog"
)

const Usage = "usage: <worker-id> <menu|start_shift|end_shift|take_break|end_break|approve_end_shift|deny_end_shift> [target-id] | status | help"

// Handler is the part of the shift service the console drives.
type Handler interface {
	Handle(ctx context.Context, req application.Request) application.Outcome
	Board() []application.BoardEntry
	Now() time.Time
}

type BoardRenderer func(entries []application.BoardEntry, now time.Time) (string, error)

type Server struct {
	handler  Handler
	terminal *Terminal
	board    BoardRenderer
	logger   hclog.Logger
}

func NewServer(handler Handler, terminal *Terminal, board BoardRenderer, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Server{handler: handler, terminal: terminal, board: board, logger: logger}
}

// Serve handles input lines until EOF or until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read console input: %w", err)
					}
				default:
				}
				return nil
			}
			if err := s.handleLine(ctx, line); err != nil {
				return err
			}
		}
	}
}

func (s *Server) handleLine(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "status", "board":
		return s.printBoard()
	case "help":
		return s.terminal.Hint(Usage)
	}

	req, err := parseRequest(fields)
	if err != nil {
		s.logger.Debug("rejected console input", "line", line, "error", err)
		return s.terminal.Hint(err.Error() + "\n" + Usage)
	}

	s.handler.Handle(ctx, req)
	return nil
}

func (s *Server) printBoard() error {
	rendered, err := s.board(s.handler.Board(), s.handler.Now())
	if err != nil {
		return fmt.Errorf("render board: %w", err)
	}
	return s.terminal.Println(rendered)
}

func parseRequest(fields []string) (application.Request, error) {
	if len(fields) < 2 {
		return application.Request{}, fmt.Errorf("missing command for %s", fields[0])
	}

	command, ok := domain.ParseCommand(fields[1])
	if !ok {
		return application.Request{}, fmt.Errorf("unknown command %q", fields[1])
	}

	req := application.Request{Actor: domain.WorkerID(fields[0]), Command: command}
	if command.NeedsTarget() {
		if len(fields) < 3 {
			return application.Request{}, fmt.Errorf("%s needs a target worker id", command)
		}
		req.Target = domain.WorkerID(fields[2])
	}

	return req, nil
}

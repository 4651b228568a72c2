package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/adapters/journal/jsonl"
	boardadapter "github.com/ansmoore/UrentScoutsBot/internal/adapters/render/board"
	tomlrepo "github.com/ansmoore/UrentScoutsBot/internal/adapters/repo/toml"
	"github.com/ansmoore/UrentScoutsBot/internal/adapters/transport/console"
	"github.com/ansmoore/UrentScoutsBot/internal/application"
	"github.com/ansmoore/UrentScoutsBot/internal/ports"
	"github.com/hashicorp/go-hclog"
)

type app struct {
	service     *application.Service
	terminal    *console.Terminal
	renderBoard console.BoardRenderer
	logger      hclog.Logger
}

func wireApp(ctx context.Context, configPath string, out, errOut io.Writer) (*app, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	level := hclog.LevelFromString(cfg.GetString(keyLogLevel))
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("unknown log level %q", cfg.GetString(keyLogLevel))
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "scouts",
		Level:  level,
		Output: errOut,
	})

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire roster repository: %w", err)
	}
	roster, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	registry, err := application.NewRegistry(roster)
	if err != nil {
		return nil, fmt.Errorf("wire registry: %w", err)
	}

	var journal ports.Journal = ports.NopJournal{}
	if path := cfg.GetString(keyJournalPath); path != "" {
		journal, err = jsonl.New(path)
		if err != nil {
			return nil, fmt.Errorf("wire journal: %w", err)
		}
	}

	first, interval := cfg.GetDuration(keyTimerFirst), cfg.GetDuration(keyTimerInterval)
	if first <= 0 || interval <= 0 {
		return nil, fmt.Errorf("invalid break timer settings: first_check=%s interval=%s", first, interval)
	}

	terminal := console.NewTerminal(out)
	clock := ports.SystemClock{Location: ports.LoadLocation(cfg.GetString(keyTimezone))}
	service := application.NewService(registry, terminal, clock, application.ServiceOptions{
		Journal:   journal,
		Scheduler: application.NewBreakScheduler(first, interval, logger.Named("timer")),
		Logger:    logger,
	})

	logger.Debug("wired", "roster", repo.Path(), "scouts", len(roster.Scouts), "journal", cfg.GetString(keyJournalPath))

	return &app{
		service:     service,
		terminal:    terminal,
		renderBoard: renderBoard,
		logger:      logger,
	}, nil
}

func renderBoard(entries []application.BoardEntry, now time.Time) (string, error) {
	return boardadapter.Render(entries, boardadapter.RenderOptions{Now: now})
}

package application

import (
	"context"
	"sync"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/hashicorp/go-hclog"
)

const (
	DefaultBreakFirstCheck    = time.Minute
	DefaultBreakCheckInterval = 10 * time.Second
)

// BreakScheduler runs one polling goroutine per active break.
type BreakScheduler struct {
	First    time.Duration
	Interval time.Duration
	logger   hclog.Logger
}

func NewBreakScheduler(first, interval time.Duration, logger hclog.Logger) *BreakScheduler {
	if first <= 0 {
		first = DefaultBreakFirstCheck
	}
	if interval <= 0 {
		interval = DefaultBreakCheckInterval
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &BreakScheduler{First: first, Interval: interval, logger: logger}
}

type breakTimer struct {
	worker domain.WorkerID
	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}
}

// Stop cancels the timer. Calling it more than once is a no-op.
func (t *breakTimer) Stop() {
	if t == nil {
		return
	}
	t.once.Do(t.cancel)
}

// Done is closed once the polling goroutine has exited.
func (t *breakTimer) Done() <-chan struct{} {
	return t.done
}

// start launches the poller. check reports whether the break is closed, after
// which the poller exits.
func (s *BreakScheduler) start(worker domain.WorkerID, check func(*breakTimer) bool) *breakTimer {
	ctx, cancel := context.WithCancel(context.Background())
	t := &breakTimer{
		worker: worker,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go s.run(ctx, t, check)

	return t
}

func (s *BreakScheduler) run(ctx context.Context, t *breakTimer, check func(*breakTimer) bool) {
	defer close(t.done)
	defer t.Stop()

	s.logger.Debug("break timer started", "worker", t.worker, "first", s.First, "interval", s.Interval)

	first := time.NewTimer(s.First)
	defer first.Stop()

	select {
	case <-ctx.Done():
		s.logger.Debug("break timer cancelled", "worker", t.worker)
		return
	case <-first.C:
	}

	if check(t) {
		return
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("break timer cancelled", "worker", t.worker)
			return
		case <-ticker.C:
			if check(t) {
				return
			}
		}
	}
}

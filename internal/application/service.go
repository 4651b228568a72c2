package application

import (
	"context"
	"fmt"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/ansmoore/UrentScoutsBot/internal/ports"
	"github.com/hashicorp/go-hclog"
)

type ServiceOptions struct {
	Journal   ports.Journal
	Scheduler *BreakScheduler
	Logger    hclog.Logger
}

// Service is the shift and break state machine. Commands for one worker are
// serialized on that worker's slot; different workers proceed in parallel.
type Service struct {
	registry   *Registry
	sessions   *sessionStore
	approvals  *approvalBook
	timers     *BreakScheduler
	dispatcher *Dispatcher
	journal    ports.Journal
	clock      ports.Clock
	logger     hclog.Logger
}

func NewService(registry *Registry, notifier ports.Notifier, clock ports.Clock, opts ServiceOptions) *Service {
	if clock == nil {
		clock = ports.SystemClock{Location: ports.LoadLocation(ports.DefaultTimezone)}
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	journal := opts.Journal
	if journal == nil {
		journal = ports.NopJournal{}
	}
	timers := opts.Scheduler
	if timers == nil {
		timers = NewBreakScheduler(0, 0, logger.Named("timer"))
	}

	return &Service{
		registry:   registry,
		sessions:   newSessionStore(),
		approvals:  newApprovalBook(),
		timers:     timers,
		dispatcher: NewDispatcher(notifier, registry, logger.Named("dispatch")),
		journal:    journal,
		clock:      clock,
		logger:     logger.Named("service"),
	}
}

// Handle runs one command to completion, delivers its notifications and
// returns what was produced.
func (s *Service) Handle(ctx context.Context, req Request) Outcome {
	if req.At.IsZero() {
		req.At = s.clock.Now()
	}

	out := s.decide(ctx, req)
	s.dispatcher.Dispatch(ctx, req.Actor, out)

	return out
}

// Close stops every active break timer.
func (s *Service) Close() {
	s.sessions.stopAll()
}

func (s *Service) decide(ctx context.Context, req Request) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("command failed", "actor", req.Actor, "command", req.Command, "panic", fmt.Sprint(r))
			out = denied(MsgInternalError)
		}
	}()

	if !s.registry.IsAuthorized(req.Actor) {
		s.logger.Debug("unauthorized command", "actor", req.Actor, "command", req.Command)
		return denied(MsgNoAccess)
	}

	switch req.Command {
	case domain.CommandMenu:
		return s.menu(req)
	case domain.CommandStartShift:
		return s.startShift(ctx, req)
	case domain.CommandEndShift:
		return s.endShift(ctx, req)
	case domain.CommandTakeBreak:
		return s.takeBreak(ctx, req)
	case domain.CommandEndBreak:
		return s.endBreak(ctx, req)
	case domain.CommandApprove:
		return s.approve(ctx, req)
	case domain.CommandDeny:
		return s.deny(ctx, req)
	default:
		panic(fmt.Sprintf("unsupported command %q", req.Command))
	}
}

func (s *Service) menu(req Request) Outcome {
	role := s.mustRole(req.Actor)
	state := s.sessions.get(req.Actor)
	return Outcome{Menus: []domain.Menu{{Chat: req.Actor.Chat(), Actions: domain.MenuFor(role, state)}}}
}

func (s *Service) startShift(ctx context.Context, req Request) Outcome {
	role := s.mustRole(req.Actor)
	name := s.registry.DisplayName(req.Actor)

	var out Outcome
	s.sessions.withSlot(req.Actor, func(sl *slot) {
		if sl.state.OnShift() {
			out = denied(MsgAlreadyOnShift)
			return
		}

		sl.stopTimer()
		sl.state.Begin(req.At)
		out = s.committed(req.Actor, role, sl.state, shiftStartedText(role, name))
	})

	if out.Changed {
		s.logger.Info("shift started", "worker", req.Actor, "role", role)
		s.record(ctx, ports.Event{Type: ports.EventShiftStarted, At: req.At, Actor: req.Actor})
	}
	return out
}

func (s *Service) endShift(ctx context.Context, req Request) Outcome {
	role := s.mustRole(req.Actor)
	name := s.registry.DisplayName(req.Actor)
	minimum := s.registry.MinimumShift(req.Actor)

	var (
		out     Outcome
		elapsed time.Duration
		request *domain.PendingApproval
	)
	s.sessions.withSlot(req.Actor, func(sl *slot) {
		if !sl.state.OnShift() {
			out = denied(MsgNotOnShift)
			return
		}

		elapsed = sl.state.ShiftElapsed(req.At)
		if role == domain.RoleOwner || elapsed >= minimum {
			s.approvals.remove(req.Actor)
			sl.stopTimer()
			sl.state.Finish()
			out = s.committed(req.Actor, role, sl.state, shiftEndedText(role, name))
			return
		}

		pending := domain.NewPendingApproval(req.Actor, elapsed, req.At)
		s.approvals.put(pending)
		request = &pending
		out = Outcome{
			Reply: MsgEarlyEndRequested,
			Direct: []domain.Notification{{
				To:      s.registry.Owner().ID.Chat(),
				Text:    approvalRequestText(name, elapsed),
				Buttons: []domain.Action{domain.ApproveAction(req.Actor), domain.DenyAction(req.Actor)},
			}},
		}
	})

	switch {
	case out.Changed:
		s.logger.Info("shift ended", "worker", req.Actor, "elapsed", elapsed)
		s.record(ctx, ports.Event{
			Type: ports.EventShiftEnded, At: req.At, Actor: req.Actor,
			Payload: map[string]any{"elapsed_seconds": int64(elapsed / time.Second)},
		})
	case request != nil:
		s.logger.Info("early shift end escalated", "worker", req.Actor, "elapsed", elapsed, "minimum", minimum, "request", request.ID)
		s.record(ctx, ports.Event{
			Type: ports.EventShiftEndRequested, At: req.At, Actor: req.Actor,
			Payload: map[string]any{"request_id": request.ID.String(), "elapsed_seconds": int64(elapsed / time.Second)},
		})
	}
	return out
}

func (s *Service) takeBreak(ctx context.Context, req Request) Outcome {
	role := s.mustRole(req.Actor)
	if role != domain.RoleScout {
		return denied(MsgNoBreakRights)
	}
	allowance, err := s.registry.Allowance(req.Actor)
	if err != nil {
		panic(err)
	}
	name := s.registry.DisplayName(req.Actor)

	var out Outcome
	s.sessions.withSlot(req.Actor, func(sl *slot) {
		switch {
		case !sl.state.OnShift():
			out = denied(MsgNotOnShift)
			return
		case sl.state.OnBreak:
			out = denied(MsgAlreadyOnBreak)
			return
		case sl.state.BreakUsed >= allowance:
			out = denied(MsgAllowanceSpent)
			return
		}

		sl.state.OnBreak = true
		sl.state.BreakStart = req.At
		sl.stopTimer()
		sl.timer = s.timers.start(req.Actor, func(t *breakTimer) bool {
			return s.checkBreak(req.Actor, t)
		})
		out = s.committed(req.Actor, role, sl.state, breakStartedText(name))
	})

	if out.Changed {
		s.logger.Info("break started", "worker", req.Actor)
		s.record(ctx, ports.Event{Type: ports.EventBreakStarted, At: req.At, Actor: req.Actor})
	}
	return out
}

func (s *Service) endBreak(ctx context.Context, req Request) Outcome {
	role := s.mustRole(req.Actor)
	if role != domain.RoleScout {
		return denied(MsgNotOnBreak)
	}
	allowance, err := s.registry.Allowance(req.Actor)
	if err != nil {
		panic(err)
	}
	name := s.registry.DisplayName(req.Actor)

	var (
		out   Outcome
		spent time.Duration
		total time.Duration
	)
	s.sessions.withSlot(req.Actor, func(sl *slot) {
		if !sl.state.OnShift() || !sl.state.OnBreak {
			out = denied(MsgNotOnBreak)
			return
		}

		spent = sl.state.BreakElapsed(req.At)
		total = sl.state.BreakUsed + spent
		sl.stopTimer()
		sl.state.OnBreak = false
		sl.state.BreakStart = time.Time{}

		var text string
		if total <= allowance {
			sl.state.BreakUsed = total
			text = breakEndedText(name, spent, allowance-total)
		} else {
			sl.state.BreakUsed = allowance
			text = breakExceededText(name, spent, total-allowance)
		}
		out = s.committed(req.Actor, role, sl.state, text)
	})

	if out.Changed {
		s.logger.Info("break ended", "worker", req.Actor, "spent", spent, "exceeded", total > allowance)
		s.record(ctx, ports.Event{
			Type: ports.EventBreakEnded, At: req.At, Actor: req.Actor,
			Payload: map[string]any{"spent_seconds": int64(spent / time.Second), "exceeded": total > allowance},
		})
	}
	return out
}

// checkBreak is the timer tick. It reports true once the break it was started
// for is no longer open, whether it closed it or someone else did.
func (s *Service) checkBreak(worker domain.WorkerID, t *breakTimer) (closed bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("break check failed", "worker", worker, "panic", fmt.Sprint(r))
			closed = true
		}
	}()

	now := s.clock.Now()
	allowance, err := s.registry.Allowance(worker)
	if err != nil {
		s.logger.Error("break timer for non-scout", "worker", worker, "error", err)
		return true
	}
	role := s.mustRole(worker)
	name := s.registry.DisplayName(worker)

	var (
		out     Outcome
		expired bool
		spent   time.Duration
	)
	s.sessions.withSlot(worker, func(sl *slot) {
		if sl.timer != t || !sl.state.OnBreak {
			closed = true
			return
		}

		spent = sl.state.BreakElapsed(now)
		total := sl.state.BreakUsed + spent
		if total < allowance {
			return
		}

		sl.stopTimer()
		sl.state.OnBreak = false
		sl.state.BreakStart = time.Time{}
		sl.state.BreakUsed = allowance
		closed, expired = true, true

		out = Outcome{
			Direct:  []domain.Notification{{To: worker.Chat(), Text: breakExceededText(name, spent, total-allowance)}},
			Menus:   []domain.Menu{{Chat: worker.Chat(), Actions: domain.MenuFor(role, sl.state)}},
			Changed: true,
		}
	})

	if expired {
		s.logger.Info("break expired", "worker", worker, "spent", spent)
		ctx := context.Background()
		s.dispatcher.Dispatch(ctx, "", out)
		s.record(ctx, ports.Event{
			Type: ports.EventBreakExpired, At: now, Actor: worker,
			Payload: map[string]any{"spent_seconds": int64(spent / time.Second)},
		})
	}
	return closed
}

func (s *Service) committed(worker domain.WorkerID, role domain.Role, state domain.SessionState, text string) Outcome {
	return Outcome{
		Reply:     text,
		Broadcast: true,
		Menus:     []domain.Menu{{Chat: worker.Chat(), Actions: domain.MenuFor(role, state)}},
		Changed:   true,
	}
}

// mustRole panics for identities that passed authorization but are missing
// from the registry; decide recovers and reports it.
func (s *Service) mustRole(id domain.WorkerID) domain.Role {
	role, err := s.registry.Role(id)
	if err != nil {
		panic(err)
	}
	return role
}

func (s *Service) record(ctx context.Context, event ports.Event) {
	if err := s.journal.Record(ctx, event); err != nil {
		s.logger.Warn("journal record failed", "event", event.Type, "worker", event.Actor, "error", err)
	}
}

package application

import (
	"context"
	"sort"
	"sync"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/ansmoore/UrentScoutsBot/internal/ports"
)

// approvalBook keeps at most one pending request per requester. Callers that
// also hold a worker slot must lock the slot first.
type approvalBook struct {
	mu      sync.Mutex
	pending map[domain.WorkerID]domain.PendingApproval
}

func newApprovalBook() *approvalBook {
	return &approvalBook{pending: map[domain.WorkerID]domain.PendingApproval{}}
}

func (b *approvalBook) put(request domain.PendingApproval) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[request.Requester] = request
}

func (b *approvalBook) get(requester domain.WorkerID) (domain.PendingApproval, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	request, ok := b.pending[requester]
	return request, ok
}

func (b *approvalBook) remove(requester domain.WorkerID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, requester)
}

func (b *approvalBook) list() []domain.PendingApproval {
	b.mu.Lock()
	requests := make([]domain.PendingApproval, 0, len(b.pending))
	for _, request := range b.pending {
		requests = append(requests, request)
	}
	b.mu.Unlock()

	sort.Slice(requests, func(i, j int) bool {
		if requests[i].RequestedAt.Equal(requests[j].RequestedAt) {
			return requests[i].Requester < requests[j].Requester
		}
		return requests[i].RequestedAt.Before(requests[j].RequestedAt)
	})
	return requests
}

// approve and deny resolve only an outstanding request. Without one the
// target's state is left alone.
func (s *Service) approve(ctx context.Context, req Request) Outcome {
	if req.Actor != s.registry.Owner().ID {
		return denied(MsgNoAccess)
	}
	if !s.registry.IsAuthorized(req.Target) {
		return denied(MsgApproveFailed)
	}

	name := s.registry.DisplayName(req.Target)
	role, err := s.registry.Role(req.Target)
	if err != nil {
		return denied(MsgApproveFailed)
	}

	var out Outcome
	s.sessions.withSlot(req.Target, func(sl *slot) {
		if _, ok := s.approvals.get(req.Target); !ok {
			out = denied(MsgNoPendingRequest)
			return
		}
		s.approvals.remove(req.Target)
		if !sl.state.OnShift() {
			out = denied(MsgApproveFailed)
			return
		}

		sl.stopTimer()
		sl.state.Finish()

		text := shiftApprovedText(name)
		out = Outcome{
			Reply:     text,
			Direct:    []domain.Notification{{To: req.Target.Chat(), Text: text}},
			Broadcast: true,
			Menus:     []domain.Menu{{Chat: req.Target.Chat(), Actions: domain.MenuFor(role, sl.state)}},
			Changed:   true,
		}
	})

	if out.Changed {
		s.logger.Info("early shift end approved", "worker", req.Target, "approver", req.Actor)
		s.record(ctx, ports.Event{Type: ports.EventShiftEndApproved, At: req.At, Actor: req.Actor, Target: req.Target})
	}
	return out
}

func (s *Service) deny(ctx context.Context, req Request) Outcome {
	if req.Actor != s.registry.Owner().ID {
		return denied(MsgNoAccess)
	}
	if !s.registry.IsAuthorized(req.Target) {
		return denied(MsgDenyFailed)
	}

	name := s.registry.DisplayName(req.Target)

	var out Outcome
	s.sessions.withSlot(req.Target, func(sl *slot) {
		if _, ok := s.approvals.get(req.Target); !ok {
			out = denied(MsgNoPendingRequest)
			return
		}
		s.approvals.remove(req.Target)
		if !sl.state.OnShift() {
			out = denied(MsgDenyFailed)
			return
		}

		text := shiftDeniedText(name)
		out = Outcome{
			Reply:     text,
			Direct:    []domain.Notification{{To: req.Target.Chat(), Text: text}},
			Broadcast: true,
		}
	})

	if out.Broadcast {
		s.logger.Info("early shift end denied", "worker", req.Target, "approver", req.Actor)
		s.record(ctx, ports.Event{Type: ports.EventShiftEndDenied, At: req.At, Actor: req.Actor, Target: req.Target})
	}
	return out
}

package application

import (
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
)

type BoardEntry struct {
	ID             domain.WorkerID
	Name           string
	Role           domain.Role
	State          domain.SessionState
	BreakAllowance time.Duration
	MinimumShift   time.Duration
	Pending        *domain.PendingApproval
}

// Board lists every registered identity, owner first, then scouts in roster order.
func (s *Service) Board() []BoardEntry {
	owner := s.registry.Owner()
	entries := []BoardEntry{{
		ID:    owner.ID,
		Name:  s.registry.DisplayName(owner.ID),
		Role:  domain.RoleOwner,
		State: s.sessions.get(owner.ID),
	}}

	for _, scout := range s.registry.Scouts() {
		entry := BoardEntry{
			ID:             scout.ID,
			Name:           s.registry.DisplayName(scout.ID),
			Role:           domain.RoleScout,
			State:          s.sessions.get(scout.ID),
			BreakAllowance: scout.BreakAllowance,
			MinimumShift:   scout.MinimumShift,
		}
		if request, ok := s.approvals.get(scout.ID); ok {
			entry.Pending = &request
		}
		entries = append(entries, entry)
	}

	return entries
}

func (s *Service) State(id domain.WorkerID) domain.SessionState {
	return s.sessions.get(id)
}

func (s *Service) Pending() []domain.PendingApproval {
	return s.approvals.list()
}

func (s *Service) Now() time.Time {
	return s.clock.Now()
}

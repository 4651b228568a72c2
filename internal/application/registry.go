package application

import (
	"fmt"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
)

const defaultDisplayName = "User"

// Registry answers identity and limit questions about the static roster.
type Registry struct {
	owner  domain.OwnerProfile
	group  domain.ChatID
	scouts map[domain.WorkerID]domain.WorkerProfile
	order  []domain.WorkerID
}

func NewRegistry(roster domain.Roster) (*Registry, error) {
	if err := roster.Validate(); err != nil {
		return nil, fmt.Errorf("validate roster: %w", err)
	}

	scouts := make(map[domain.WorkerID]domain.WorkerProfile, len(roster.Scouts))
	order := make([]domain.WorkerID, 0, len(roster.Scouts))
	for _, scout := range roster.Scouts {
		scouts[scout.ID] = scout
		order = append(order, scout.ID)
	}

	return &Registry{
		owner:  roster.Owner,
		group:  roster.GroupChat,
		scouts: scouts,
		order:  order,
	}, nil
}

func (r *Registry) IsAuthorized(id domain.WorkerID) bool {
	if id == r.owner.ID {
		return true
	}
	_, ok := r.scouts[id]
	return ok
}

func (r *Registry) Role(id domain.WorkerID) (domain.Role, error) {
	if id == r.owner.ID {
		return domain.RoleOwner, nil
	}
	if _, ok := r.scouts[id]; ok {
		return domain.RoleScout, nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnknownWorker, id)
}

func (r *Registry) Allowance(id domain.WorkerID) (time.Duration, error) {
	scout, ok := r.scouts[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrNotScout, id)
	}
	return scout.BreakAllowance, nil
}

// MinimumShift is zero for the owner and for unknown identities.
func (r *Registry) MinimumShift(id domain.WorkerID) time.Duration {
	return r.scouts[id].MinimumShift
}

func (r *Registry) DisplayName(id domain.WorkerID) string {
	if id == r.owner.ID && r.owner.Name != "" {
		return r.owner.Name
	}
	if scout, ok := r.scouts[id]; ok && scout.Name != "" {
		return scout.Name
	}
	return defaultDisplayName
}

func (r *Registry) Owner() domain.OwnerProfile {
	return r.owner
}

func (r *Registry) GroupChat() domain.ChatID {
	return r.group
}

// Scouts returns scout profiles in roster order.
func (r *Registry) Scouts() []domain.WorkerProfile {
	profiles := make([]domain.WorkerProfile, 0, len(r.order))
	for _, id := range r.order {
		profiles = append(profiles, r.scouts[id])
	}
	return profiles
}

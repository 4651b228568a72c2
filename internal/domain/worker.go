package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultBreakAllowance = 60 * time.Minute
	DefaultMinimumShift   = 12 * time.Hour
)

type WorkerID string

// ChatID addresses a conversation on the transport. A worker's private chat
// shares the worker's identifier.
type ChatID string

func (id WorkerID) Chat() ChatID {
	return ChatID(id)
}

type Role string

const (
	RoleScout Role = "scout"
	RoleOwner Role = "owner"
)

func (r Role) Label() string {
	switch r {
	case RoleScout:
		return "Скаут"
	case RoleOwner:
		return "Старший Скаут"
	default:
		return string(r)
	}
}

type WorkerProfile struct {
	ID             WorkerID
	Name           string
	BreakAllowance time.Duration
	MinimumShift   time.Duration
}

type OwnerProfile struct {
	ID   WorkerID
	Name string
}

type Roster struct {
	Owner     OwnerProfile
	Scouts    []WorkerProfile
	GroupChat ChatID
}

func (r Roster) Validate() error {
	if strings.TrimSpace(string(r.Owner.ID)) == "" {
		return fmt.Errorf("owner id is required")
	}

	seen := make(map[WorkerID]struct{}, len(r.Scouts))
	for i, scout := range r.Scouts {
		if strings.TrimSpace(string(scout.ID)) == "" {
			return fmt.Errorf("scout #%d: id is required", i+1)
		}
		if scout.ID == r.Owner.ID {
			return fmt.Errorf("scout %s: owner cannot also be a scout", scout.ID)
		}
		if _, ok := seen[scout.ID]; ok {
			return fmt.Errorf("scout %s: duplicate id", scout.ID)
		}
		if scout.BreakAllowance < 0 {
			return fmt.Errorf("scout %s: break allowance must not be negative", scout.ID)
		}
		if scout.MinimumShift < 0 {
			return fmt.Errorf("scout %s: minimum shift must not be negative", scout.ID)
		}
		seen[scout.ID] = struct{}{}
	}

	return nil
}

package toml

import (
	"fmt"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int           `toml:"version" yaml:"version"`
	GroupChat string        `toml:"group_chat" yaml:"group_chat"`
	Owner     ownerSchema   `toml:"owner" yaml:"owner"`
	Scouts    []scoutSchema `toml:"scouts" yaml:"scouts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported roster schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type ownerSchema struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`
}

type scoutSchema struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`
	// Missing limits fall back to the domain defaults.
	BreakAllowanceMinutes *int `toml:"break_allowance_minutes,omitempty" yaml:"break_allowance_minutes,omitempty"`
	MinShiftHours         *int `toml:"min_shift_hours,omitempty" yaml:"min_shift_hours,omitempty"`
}

func fromSchema(file fileSchema) domain.Roster {
	scouts := make([]domain.WorkerProfile, 0, len(file.Scouts))
	for _, scout := range file.Scouts {
		profile := domain.WorkerProfile{
			ID:             domain.WorkerID(scout.ID),
			Name:           scout.Name,
			BreakAllowance: domain.DefaultBreakAllowance,
			MinimumShift:   domain.DefaultMinimumShift,
		}
		if scout.BreakAllowanceMinutes != nil {
			profile.BreakAllowance = time.Duration(*scout.BreakAllowanceMinutes) * time.Minute
		}
		if scout.MinShiftHours != nil {
			profile.MinimumShift = time.Duration(*scout.MinShiftHours) * time.Hour
		}
		scouts = append(scouts, profile)
	}

	return domain.Roster{
		Owner: domain.OwnerProfile{
			ID:   domain.WorkerID(file.Owner.ID),
			Name: file.Owner.Name,
		},
		Scouts:    scouts,
		GroupChat: domain.ChatID(file.GroupChat),
	}
}

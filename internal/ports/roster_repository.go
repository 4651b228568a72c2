package ports

import (
	"context"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
)

type RosterRepository interface {
	Load(ctx context.Context) (domain.Roster, error)
}

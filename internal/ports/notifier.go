package ports

import (
	"context"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
)

// Notifier is implemented by the chat transport.
type Notifier interface {
	Notify(ctx context.Context, message domain.Notification) error
	ShowMenu(ctx context.Context, menu domain.Menu) error
}

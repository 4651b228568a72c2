package application

import (
	"context"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/ansmoore/UrentScoutsBot/internal/ports"
	"github.com/hashicorp/go-hclog"
)

// Dispatcher delivers outcomes through the transport. Delivery failures are
// logged and dropped; state has already been committed by then.
type Dispatcher struct {
	notifier ports.Notifier
	registry *Registry
	logger   hclog.Logger
}

func NewDispatcher(notifier ports.Notifier, registry *Registry, logger hclog.Logger) *Dispatcher {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Dispatcher{notifier: notifier, registry: registry, logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, actor domain.WorkerID, out Outcome) {
	if d.notifier == nil {
		return
	}

	type delivery struct {
		to   domain.ChatID
		text string
	}
	sent := map[delivery]struct{}{}
	send := func(message domain.Notification) {
		key := delivery{to: message.To, text: message.Text}
		if message.To == "" || message.Text == "" {
			return
		}
		if _, ok := sent[key]; ok {
			return
		}
		sent[key] = struct{}{}

		if err := d.notifier.Notify(ctx, message); err != nil {
			d.logger.Warn("notify failed", "chat", message.To, "error", err)
		}
	}

	if actor != "" && out.Reply != "" {
		send(domain.Notification{To: actor.Chat(), Text: out.Reply})
	}
	for _, message := range out.Direct {
		send(message)
	}
	if out.Broadcast && out.Reply != "" && !IsSuppressed(out.Reply) {
		send(domain.Notification{To: d.registry.GroupChat(), Text: out.Reply})
		send(domain.Notification{To: d.registry.Owner().ID.Chat(), Text: out.Reply})
	}

	for _, menu := range out.Menus {
		if err := d.notifier.ShowMenu(ctx, menu); err != nil {
			d.logger.Warn("menu refresh failed", "chat", menu.Chat, "error", err)
		}
	}
}

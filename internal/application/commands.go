package application

import (
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
)

type Request struct {
	Actor   domain.WorkerID
	Command domain.CommandKind
	// Target names the requester for approve and deny.
	Target domain.WorkerID
	// At overrides the clock when set.
	At time.Time
}

// Outcome is everything a command produced. Reply goes to the actor; when
// Broadcast is set the reply is also sent to the group chat and the owner.
type Outcome struct {
	Reply     string
	Direct    []domain.Notification
	Broadcast bool
	Menus     []domain.Menu
	// Changed reports whether session state was committed.
	Changed bool
}

func denied(text string) Outcome {
	return Outcome{Reply: text}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingApproval is an early end-of-shift request waiting for the owner.
type PendingApproval struct {
	ID          uuid.UUID
	Requester   WorkerID
	Elapsed     time.Duration
	RequestedAt time.Time
}

func NewPendingApproval(requester WorkerID, elapsed time.Duration, now time.Time) PendingApproval {
	return PendingApproval{
		ID:          uuid.New(),
		Requester:   requester,
		Elapsed:     elapsed,
		RequestedAt: now,
	}
}

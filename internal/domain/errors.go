package domain

import "errors"

var (
	ErrUnknownWorker  = errors.New("worker not registered")
	ErrNotScout       = errors.New("worker is not a scout")
	ErrRosterNotFound = errors.New("roster not found")
)

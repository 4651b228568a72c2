package application

import (
	"sync"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
)

// slot holds one worker's mutable state. Every read or write of state and
// timer happens with mu held.
type slot struct {
	mu    sync.Mutex
	state domain.SessionState
	timer *breakTimer
}

func (s *slot) stopTimer() {
	if s.timer == nil {
		return
	}
	s.timer.Stop()
	s.timer = nil
}

type sessionStore struct {
	mu    sync.Mutex
	slots map[domain.WorkerID]*slot
}

func newSessionStore() *sessionStore {
	return &sessionStore{slots: map[domain.WorkerID]*slot{}}
}

func (s *sessionStore) slot(id domain.WorkerID) *slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slots[id]
	if !ok {
		sl = &slot{state: domain.SessionState{Phase: domain.PhaseIdle}}
		s.slots[id] = sl
	}
	return sl
}

func (s *sessionStore) withSlot(id domain.WorkerID, fn func(*slot)) {
	sl := s.slot(id)
	sl.mu.Lock()
	defer sl.mu.Unlock()
	fn(sl)
}

func (s *sessionStore) get(id domain.WorkerID) domain.SessionState {
	var state domain.SessionState
	s.withSlot(id, func(sl *slot) {
		state = sl.state
	})
	return state
}

func (s *sessionStore) stopAll() {
	s.mu.Lock()
	slots := make([]*slot, 0, len(s.slots))
	for _, sl := range s.slots {
		slots = append(slots, sl)
	}
	s.mu.Unlock()

	for _, sl := range slots {
		sl.mu.Lock()
		sl.stopTimer()
		sl.mu.Unlock()
	}
}

// Package jsonl appends shift events to a JSON-lines audit file.
//
// Each append takes an exclusive flock on a sibling ".lock" file so several
// processes can share one journal.
package jsonl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/ports"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

const (
	journalFileMode = 0o600
	journalDirMode  = 0o700
)

type record struct {
	ID      string         `json:"id"`
	Time    string         `json:"ts"`
	Type    string         `json:"type"`
	Actor   string         `json:"actor"`
	Target  string         `json:"target,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Journal struct {
	path string
	lock *flock.Flock
	mu   sync.Mutex
}

var _ ports.Journal = (*Journal)(nil)

func New(path string) (*Journal, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve journal path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	if err := os.MkdirAll(filepath.Dir(absPath), journalDirMode); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	return &Journal{path: absPath, lock: flock.New(absPath + ".lock")}, nil
}

func (j *Journal) Path() string {
	return j.path
}

func (j *Journal) Record(ctx context.Context, event ports.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	at := event.At
	if at.IsZero() {
		at = time.Now()
	}

	data, err := json.Marshal(record{
		ID:      uuid.NewString(),
		Time:    at.Format(time.RFC3339),
		Type:    string(event.Type),
		Actor:   string(event.Actor),
		Target:  string(event.Target),
		Payload: event.Payload,
	})
	if err != nil {
		return fmt.Errorf("encode journal event: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.lock.Lock(); err != nil {
		return fmt.Errorf("lock journal: %w", err)
	}
	defer func() { _ = j.lock.Unlock() }()

	file, err := os.OpenFile(j.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, journalFileMode)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("append journal event: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close journal: %w", err)
	}

	return nil
}

// Package sync persists a snapshot of the last fetch and diffs a fresh
// fetch against it, so callers can alert only on work that is actually new
// or changed.
package sync

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"classroom-sync/internal/domain"
)

// Snapshot is the on-disk record of one full fetch across all courses.
type Snapshot struct {
	TakenAt time.Time        `json:"takenAt"`
	Courses []CourseSnapshot `json:"courses"`
}

type CourseSnapshot struct {
	Course   domain.Course         `json:"course"`
	Teachers []domain.Teacher      `json:"teachers,omitempty"`
	Works    []domain.EnrichedWork `json:"works"`
}

// LoadSnapshot reads a snapshot file. A missing file is not an error: it
// just means this is the first run, and yields (nil, nil).
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sync: read snapshot %s: %w", path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("sync: parse snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// Save writes the snapshot as indented JSON so it stays diffable in a
// text editor.
func (s *Snapshot) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("sync: encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("sync: write snapshot %s: %w", path, err)
	}
	return nil
}

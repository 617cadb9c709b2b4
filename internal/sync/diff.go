package sync

import (
	"strings"
	"time"

	"classroom-sync/internal/domain"
)

// ChangedWork is one work item together with the course it belongs to.
type ChangedWork struct {
	CourseID   string
	CourseName string
	Work       domain.EnrichedWork
}

// Changes is the result of diffing a fresh fetch against the previous
// snapshot.
type Changes struct {
	Added   []ChangedWork
	Updated []ChangedWork
	Removed []ChangedWork
}

func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Updated) == 0 && len(c.Removed) == 0
}

// Diff compares the current fetch with the previous snapshot. Returns:
// - Added: work present now but not before (or in a course seen for the first time)
// - Updated: work present in both but materially changed
// - Removed: work present before but gone now
// A nil prev (first run) marks everything as Added.
func Diff(prev, curr *Snapshot) Changes {
	var changes Changes
	if curr == nil {
		return changes
	}

	prevByCourse := map[string]map[string]domain.EnrichedWork{}
	if prev != nil {
		for _, cs := range prev.Courses {
			byID := make(map[string]domain.EnrichedWork, len(cs.Works))
			for _, w := range cs.Works {
				if strings.TrimSpace(w.ID) == "" {
					continue
				}
				byID[w.ID] = w
			}
			prevByCourse[cs.Course.ID] = byID
		}
	}

	for _, cs := range curr.Courses {
		prevWorks := prevByCourse[cs.Course.ID]

		seen := map[string]bool{}
		for _, w := range cs.Works {
			if strings.TrimSpace(w.ID) == "" {
				continue
			}
			seen[w.ID] = true

			old, ok := prevWorks[w.ID]
			if !ok {
				changes.Added = append(changes.Added, ChangedWork{cs.Course.ID, cs.Course.Name, w})
				continue
			}
			if needsUpdate(old, w) {
				changes.Updated = append(changes.Updated, ChangedWork{cs.Course.ID, cs.Course.Name, w})
			}
		}

		for id, old := range prevWorks {
			if !seen[id] {
				changes.Removed = append(changes.Removed, ChangedWork{cs.Course.ID, cs.Course.Name, old})
			}
		}
	}

	return changes
}

// needsUpdate reports whether a work item changed in a way worth telling
// the user about. Category and topic are derived from the title, so the
// title check already covers them.
func needsUpdate(old, curr domain.EnrichedWork) bool {
	if norm(old.Title) != norm(curr.Title) {
		return true
	}
	if norm(old.Description) != norm(curr.Description) {
		return true
	}
	if !timeEqual(old.Deadline, curr.Deadline) {
		return true
	}
	if old.MaxPoints != curr.MaxPoints {
		return true
	}
	if norm(old.Link) != norm(curr.Link) {
		return true
	}
	return false
}

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func norm(s string) string {
	return strings.TrimSpace(s)
}

// Package enrich merges the two raw item feeds a course exposes (graded
// coursework and posted materials) into one typed, categorized collection.
package enrich

import (
	"errors"
	"fmt"
	"time"

	"classroom-sync/internal/domain"
	"classroom-sync/internal/parse"
)

// ErrMalformedItem marks a raw item missing its id or title. Every
// downstream feature keys on id and displays title, so a course feed
// containing such an item cannot be processed.
var ErrMalformedItem = errors.New("malformed raw item")

// RawItem is a loosely structured work item as fetched from the source API,
// before any interpretation. Providers map their wire types into this.
type RawItem struct {
	ID          string
	Title       string
	Description string

	DueDate *parse.DateParts
	DueTime *parse.TimeParts

	// CreationTime is the source's ISO 8601 creation instant, kept as a
	// string because some items omit it entirely.
	CreationTime string

	MaxPoints float64
	WorkType  string
	Link      string
}

// Problem records a non-fatal per-item issue found during aggregation.
// The affected item is still emitted, just without the broken field.
type Problem struct {
	ItemID string
	Err    error
}

// Aggregate enriches both raw feeds into EnrichedWork records, one per raw
// item, in feed order (graded first). Items with impossible due dates are
// kept with no deadline and reported in the returned problems. An item
// missing id or title fails the whole call: a partially identified work
// list cannot be safely sorted or deduplicated downstream.
func Aggregate(graded, materials []RawItem) ([]domain.EnrichedWork, []Problem, error) {
	all := make([]RawItem, 0, len(graded)+len(materials))
	all = append(all, graded...)
	all = append(all, materials...)

	works := make([]domain.EnrichedWork, 0, len(all))
	var problems []Problem

	for i, raw := range all {
		if raw.ID == "" || raw.Title == "" {
			return nil, nil, fmt.Errorf("enrich: item %d (id=%q): %w", i, raw.ID, ErrMalformedItem)
		}

		meta := parse.Parse(raw.Title, raw.Description)

		// No due date, no due time, no work type tag: the item is a plain
		// material. That signal, not which feed it came from, drives the
		// display fallback.
		isMaterial := raw.DueDate == nil && raw.DueTime == nil && raw.WorkType == ""

		category := meta.Category
		if isMaterial && category == domain.CategoryUncategorized {
			category = domain.CategoryMaterial
		}

		deadline, err := parse.Deadline(raw.DueDate, raw.DueTime)
		if err != nil {
			problems = append(problems, Problem{ItemID: raw.ID, Err: err})
			deadline = nil
		}

		works = append(works, domain.EnrichedWork{
			ID:           raw.ID,
			Title:        raw.Title,
			Description:  raw.Description,
			Category:     category,
			Index:        meta.Index,
			Topic:        meta.Topic,
			Deadline:     deadline,
			CreationTime: parseCreationTime(raw.CreationTime),
			MaxPoints:    raw.MaxPoints,
			WorkType:     raw.WorkType,
			Link:         raw.Link,
			IsMaterial:   isMaterial,
		})
	}

	return works, problems, nil
}

func parseCreationTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

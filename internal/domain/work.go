package domain

import (
	"sort"
	"time"
)

// Category is the closed set of labels the title parser can assign to a
// work item. MATERIAL is only ever applied by the aggregator, as the
// fallback for deadline-less items the parser could not place.
type Category string

const (
	CategoryQuiz          Category = "QUIZ"
	CategoryMidterm       Category = "MIDTERM"
	CategoryFinal         Category = "FINAL"
	CategoryLab           Category = "LAB"
	CategoryProject       Category = "PROJECT"
	CategoryAssignment    Category = "ASSIGNMENT"
	CategoryLecture       Category = "LECTURE"
	CategoryTutorial      Category = "TUTORIAL"
	CategoryGrade         Category = "GRADE"
	CategoryMaterial      Category = "MATERIAL"
	CategoryUncategorized Category = "UNCATEGORIZED"
)

// EnrichedWork is the canonical representation of a coursework item inside
// this service. Raw classroom items (assignments, quizzes, posted materials)
// all map into this model; exports and the API layer map from it.
type EnrichedWork struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Category Category `json:"category"`
	Index    int      `json:"index,omitempty"` // 0 = no number found in the title
	Topic    string   `json:"topic,omitempty"` // "" = no usable topic

	Deadline     *time.Time `json:"deadline,omitempty"` // UTC, nil when the source had no due date
	CreationTime *time.Time `json:"creationTime,omitempty"`

	MaxPoints  float64 `json:"maxPoints,omitempty"`
	WorkType   string  `json:"workType,omitempty"`
	Link       string  `json:"link,omitempty"`
	IsMaterial bool    `json:"isMaterial"`
}

// Due reports whether the item has a deadline strictly after now.
func (w EnrichedWork) Due(now time.Time) bool {
	return w.Deadline != nil && w.Deadline.After(now)
}

// SortForDisplay orders works the way the dashboard shows them: items whose
// deadline is still ahead of now first, ascending by deadline, then
// everything else by creation time descending. The sort is stable so equal
// keys keep their input order.
func SortForDisplay(works []EnrichedWork, now time.Time) {
	sort.SliceStable(works, func(i, j int) bool {
		a, b := works[i], works[j]
		aDue, bDue := a.Due(now), b.Due(now)
		if aDue != bDue {
			return aDue
		}
		if aDue {
			return a.Deadline.Before(*b.Deadline)
		}
		at, bt := creationKey(a), creationKey(b)
		return at.After(bt)
	})
}

func creationKey(w EnrichedWork) time.Time {
	if w.CreationTime != nil {
		return *w.CreationTime
	}
	return time.Time{}
}

// NextDeadline returns the earliest deadline after now, or nil when nothing
// is pending. Used for the per-course urgency sort on the dashboard.
func NextDeadline(works []EnrichedWork, now time.Time) *time.Time {
	var next *time.Time
	for i := range works {
		w := works[i]
		if !w.Due(now) {
			continue
		}
		if next == nil || w.Deadline.Before(*next) {
			next = w.Deadline
		}
	}
	return next
}

// PendingCount counts items still due after now.
func PendingCount(works []EnrichedWork, now time.Time) int {
	n := 0
	for i := range works {
		if works[i].Due(now) {
			n++
		}
	}
	return n
}

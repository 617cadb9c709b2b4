package organize

import (
	"testing"
	"time"

	"classroom-sync/internal/domain"
)

func ts(v string) *time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestWeekLabel(t *testing.T) {
	tests := []struct {
		name string
		work domain.EnrichedWork
		want string
	}{
		{
			name: "deadline wins",
			work: domain.EnrichedWork{
				Deadline:     ts("2024-03-15T23:59:00Z"),
				CreationTime: ts("2024-01-02T10:00:00Z"),
			},
			want: "Week 11",
		},
		{
			name: "creation time fallback",
			work: domain.EnrichedWork{CreationTime: ts("2024-01-02T10:00:00Z")},
			want: "Week 1",
		},
		{
			name: "nothing known",
			work: domain.EnrichedWork{Title: "Reading"},
			want: "Unscheduled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekLabel(tt.work); got != tt.want {
				t.Errorf("WeekLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTopicLabel(t *testing.T) {
	tests := []struct {
		name string
		work domain.EnrichedWork
		want string
	}{
		{
			name: "explicit topic wins",
			work: domain.EnrichedWork{Title: "Graphs - Lab 4", Topic: "recursion"},
			want: "recursion",
		},
		{
			name: "week prefix pattern",
			work: domain.EnrichedWork{Title: "Week 3: Sorting Algorithms"},
			want: "Sorting Algorithms",
		},
		{
			name: "topic dash keyword pattern",
			work: domain.EnrichedWork{Title: "Graph Theory - Assignment 2"},
			want: "Graph Theory",
		},
		{
			name: "trailing number pattern",
			work: domain.EnrichedWork{Title: "Linked Lists 3"},
			want: "Linked Lists",
		},
		{
			name: "no pattern",
			work: domain.EnrichedWork{Title: "Syllabus"},
			want: "General",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopicLabel(tt.work); got != tt.want {
				t.Errorf("TopicLabel(%q) = %q, want %q", tt.work.Title, got, tt.want)
			}
		})
	}
}

func TestFolderPath(t *testing.T) {
	work := domain.EnrichedWork{
		Title:    "Week 3: Sorting Algorithms",
		Deadline: ts("2024-01-18T23:59:00Z"),
	}

	got := FolderPath("CS 201: Data Structures!", work)
	want := "CS 201 Data Structures/Week 3 - Sorting Algorithms"
	if got != want {
		t.Errorf("FolderPath() = %q, want %q", got, want)
	}
}

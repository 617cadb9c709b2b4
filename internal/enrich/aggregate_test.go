package enrich

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"classroom-sync/internal/domain"
	"classroom-sync/internal/parse"
)

func TestAggregateEnrichesBothFeeds(t *testing.T) {
	graded := []RawItem{
		{
			ID:           "w1",
			Title:        "Linear Algebra Lab 3",
			DueDate:      &parse.DateParts{Year: 2024, Month: 3, Day: 15},
			WorkType:     "ASSIGNMENT",
			MaxPoints:    10,
			CreationTime: "2024-03-01T10:00:00Z",
		},
	}
	materials := []RawItem{
		{ID: "m1", Title: "Course syllabus", CreationTime: "2024-02-01T09:00:00Z"},
		{ID: "m2", Title: "Lecture Slides Week 1"},
	}

	works, problems, err := Aggregate(graded, materials)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
	if len(works) != 3 {
		t.Fatalf("expected 3 works, got %d", len(works))
	}

	lab := works[0]
	if lab.Category != domain.CategoryLab || lab.Index != 3 || lab.Topic != "Linear Algebra" {
		t.Errorf("lab parsed wrong: %+v", lab)
	}
	wantDeadline := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	if lab.Deadline == nil || !lab.Deadline.Equal(wantDeadline) {
		t.Errorf("expected deadline %v, got %v", wantDeadline, lab.Deadline)
	}
	if lab.IsMaterial {
		t.Errorf("graded item with due date must not be a material")
	}

	// Unclassifiable material falls back to MATERIAL, not UNCATEGORIZED.
	syllabus := works[1]
	if !syllabus.IsMaterial || syllabus.Category != domain.CategoryMaterial {
		t.Errorf("syllabus: expected MATERIAL fallback, got %+v", syllabus)
	}

	// A material whose title does classify keeps the parsed category.
	slides := works[2]
	if !slides.IsMaterial || slides.Category != domain.CategoryLecture {
		t.Errorf("slides: expected LECTURE, got %+v", slides)
	}
}

func TestAggregateMalformedItemIsFatal(t *testing.T) {
	_, _, err := Aggregate([]RawItem{{ID: "", Title: "Quiz 1"}}, nil)
	if !errors.Is(err, ErrMalformedItem) {
		t.Fatalf("expected ErrMalformedItem for missing id, got %v", err)
	}

	_, _, err = Aggregate(nil, []RawItem{{ID: "m1", Title: ""}})
	if !errors.Is(err, ErrMalformedItem) {
		t.Fatalf("expected ErrMalformedItem for missing title, got %v", err)
	}
}

func TestAggregateInvalidDateIsIsolated(t *testing.T) {
	items := []RawItem{
		{ID: "bad", Title: "Quiz 1", DueDate: &parse.DateParts{Year: 2024, Month: 13, Day: 1}},
		{ID: "good", Title: "Quiz 2", DueDate: &parse.DateParts{Year: 2024, Month: 4, Day: 1}},
	}

	works, problems, err := Aggregate(items, nil)
	if err != nil {
		t.Fatalf("expected batch to survive an invalid date, got %v", err)
	}
	if len(works) != 2 {
		t.Fatalf("expected both items emitted, got %d", len(works))
	}
	if len(problems) != 1 || problems[0].ItemID != "bad" {
		t.Fatalf("expected one problem for item 'bad', got %v", problems)
	}
	if !errors.Is(problems[0].Err, parse.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", problems[0].Err)
	}
	if works[0].Deadline != nil {
		t.Errorf("expected cleared deadline on the broken item, got %v", works[0].Deadline)
	}
	if works[0].IsMaterial {
		t.Errorf("item with a due-date fragment is not a material, even when the date is broken")
	}
	if works[1].Deadline == nil {
		t.Errorf("expected intact deadline on the good item")
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	graded := []RawItem{
		{ID: "1", Title: "HW 1", DueDate: &parse.DateParts{Year: 2024, Month: 5, Day: 2}, CreationTime: "2024-04-01T00:00:00Z"},
		{ID: "2", Title: "Quiz 1: Limits", WorkType: "ASSIGNMENT"},
	}
	materials := []RawItem{
		{ID: "3", Title: "Chapter 1 Notes"},
	}

	first, _, err := Aggregate(graded, materials)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := Aggregate(graded, materials)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over identical input differ:\n%v\n%v", first, second)
	}
}

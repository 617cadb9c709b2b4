package providers

import (
	"context"
	"testing"

	"classroom-sync/internal/domain"
	"classroom-sync/internal/enrich"
	"classroom-sync/internal/grading"
)

// MockProvider is a mock implementation of the WorkProvider interface for testing
type MockProvider struct {
	NameFunc         func() string
	ListCoursesFunc  func(ctx context.Context) ([]domain.Course, error)
	ListWorkFunc     func(ctx context.Context, courseID string) ([]enrich.RawItem, []enrich.RawItem, error)
	ScoresFunc       func(ctx context.Context, courseID string, workIDs []string) (map[string]grading.Score, error)
	ListTeachersFunc func(ctx context.Context, courseID string) ([]domain.Teacher, error)
}

func (m *MockProvider) Name() string {
	return m.NameFunc()
}

func (m *MockProvider) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return m.ListCoursesFunc(ctx)
}

func (m *MockProvider) ListWork(ctx context.Context, courseID string) (graded, materials []enrich.RawItem, err error) {
	return m.ListWorkFunc(ctx, courseID)
}

func (m *MockProvider) Scores(ctx context.Context, courseID string, workIDs []string) (map[string]grading.Score, error) {
	return m.ScoresFunc(ctx, courseID, workIDs)
}

func (m *MockProvider) ListTeachers(ctx context.Context, courseID string) ([]domain.Teacher, error) {
	return m.ListTeachersFunc(ctx, courseID)
}

func TestProviders(t *testing.T) {
	// Test with a mock provider
	mockProvider := &MockProvider{
		NameFunc: func() string {
			return "mock-provider"
		},
		ListCoursesFunc: func(ctx context.Context) ([]domain.Course, error) {
			return []domain.Course{
				{
					ID:      "c1",
					Name:    "Calculus II",
					Section: "A",
					Link:    "https://example.com/c1",
				},
			}, nil
		},
		ListWorkFunc: func(ctx context.Context, courseID string) ([]enrich.RawItem, []enrich.RawItem, error) {
			return []enrich.RawItem{{ID: "w1", Title: "Quiz 1"}},
				[]enrich.RawItem{{ID: "m1", Title: "Syllabus"}},
				nil
		},
		ScoresFunc: func(ctx context.Context, courseID string, workIDs []string) (map[string]grading.Score, error) {
			return map[string]grading.Score{"w1": {Earned: 9}}, nil
		},
		ListTeachersFunc: func(ctx context.Context, courseID string) ([]domain.Teacher, error) {
			return []domain.Teacher{{UserID: "t1", FullName: "Dr. Ada"}}, nil
		},
	}

	// Verify the mock provider implements the WorkProvider interface
	var _ WorkProvider = (*MockProvider)(nil)

	ctx := context.Background()

	// Test Name method
	name := mockProvider.Name()
	if name != "mock-provider" {
		t.Errorf("Expected name to be 'mock-provider', got %q", name)
	}

	// Test ListCourses method
	courses, err := mockProvider.ListCourses(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("Expected 1 course, got %d", len(courses))
	}
	if courses[0].Name != "Calculus II" {
		t.Errorf("Expected Name to be 'Calculus II', got %q", courses[0].Name)
	}

	// Test ListWork method
	graded, materials, err := mockProvider.ListWork(ctx, "c1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(graded) != 1 || len(materials) != 1 {
		t.Fatalf("Expected 1 graded + 1 material, got %d + %d", len(graded), len(materials))
	}

	// Test Scores method
	scores, err := mockProvider.Scores(ctx, "c1", []string{"w1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if scores["w1"].Earned != 9 {
		t.Errorf("Expected earned 9 for w1, got %v", scores["w1"])
	}
}

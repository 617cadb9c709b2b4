package providers

import (
	"context"

	"classroom-sync/internal/domain"
	"classroom-sync/internal/enrich"
	"classroom-sync/internal/grading"
)

// WorkProvider is the upstream a course's data comes from. The classroom
// implementation talks to the Google Classroom API; tests use mocks.
type WorkProvider interface {
	Name() string
	ListCourses(ctx context.Context) ([]domain.Course, error)

	// ListWork returns the two raw feeds of a course: graded coursework and
	// material-only posts, not yet enriched.
	ListWork(ctx context.Context, courseID string) (graded, materials []enrich.RawItem, err error)

	// Scores returns the caller's submission scores keyed by work item id,
	// for the given work items. Ungraded submissions are simply absent.
	Scores(ctx context.Context, courseID string, workIDs []string) (map[string]grading.Score, error)

	ListTeachers(ctx context.Context, courseID string) ([]domain.Teacher, error)
}

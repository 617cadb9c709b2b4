package classroom

import (
	"context"
	"fmt"

	"classroom-sync/internal/domain"
	"classroom-sync/internal/enrich"
	"classroom-sync/internal/grading"
	"classroom-sync/internal/parse"
)

// Provider adapts the raw classroom client to the provider interface the
// rest of the repo consumes.
type Provider struct {
	C *Client
}

func (p Provider) Name() string { return "classroom" }

func (p Provider) ListCourses(ctx context.Context) ([]domain.Course, error) {
	raw, err := p.C.ListCourses(ctx, "ACTIVE")
	if err != nil {
		return nil, err
	}

	courses := make([]domain.Course, 0, len(raw))
	for _, c := range raw {
		courses = append(courses, domain.Course{
			ID:      c.ID,
			Name:    c.Name,
			Section: c.Section,
			Room:    c.Room,
			Link:    c.AlternateLink,
		})
	}
	return courses, nil
}

// ListWork fetches both feeds of a course as raw items, ready for the
// aggregator. No interpretation happens here.
func (p Provider) ListWork(ctx context.Context, courseID string) (graded, materials []enrich.RawItem, err error) {
	works, err := p.C.ListCourseWork(ctx, courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("classroom: course %s work: %w", courseID, err)
	}
	mats, err := p.C.ListMaterials(ctx, courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("classroom: course %s materials: %w", courseID, err)
	}

	graded = make([]enrich.RawItem, 0, len(works))
	for _, w := range works {
		graded = append(graded, toRawItem(w))
	}
	materials = make([]enrich.RawItem, 0, len(mats))
	for _, m := range mats {
		materials = append(materials, toRawItem(m))
	}
	return graded, materials, nil
}

// Scores fetches the caller's graded submissions, one call per work item
// (the API has no batch endpoint for this). Ungraded submissions are
// skipped; a per-item failure skips that item rather than losing the rest
// of the grade report. Only when every item fails does the error surface.
func (p Provider) Scores(ctx context.Context, courseID string, workIDs []string) (map[string]grading.Score, error) {
	scores := make(map[string]grading.Score, len(workIDs))

	var failed int
	var lastErr error
	for _, id := range workIDs {
		if err := ctx.Err(); err != nil {
			return scores, err
		}
		sub, err := p.C.MySubmission(ctx, courseID, id)
		if err != nil {
			failed++
			lastErr = fmt.Errorf("classroom: course %s submission %s: %w", courseID, id, err)
			continue
		}
		if sub == nil || sub.AssignedGrade == nil {
			continue
		}
		scores[id] = grading.Score{Earned: *sub.AssignedGrade}
	}
	if failed > 0 && failed == len(workIDs) {
		return scores, lastErr
	}
	return scores, nil
}

func (p Provider) ListTeachers(ctx context.Context, courseID string) ([]domain.Teacher, error) {
	raw, err := p.C.ListTeachers(ctx, courseID)
	if err != nil {
		return nil, err
	}

	teachers := make([]domain.Teacher, 0, len(raw))
	for _, t := range raw {
		teachers = append(teachers, domain.Teacher{
			UserID:   t.UserID,
			FullName: t.Profile.Name.FullName,
			Email:    t.Profile.EmailAddress,
			PhotoURL: t.Profile.PhotoURL,
		})
	}
	return teachers, nil
}

func toRawItem(w CourseWork) enrich.RawItem {
	item := enrich.RawItem{
		ID:           w.ID,
		Title:        w.Title,
		Description:  w.Description,
		CreationTime: w.CreationTime,
		MaxPoints:    w.MaxPoints,
		WorkType:     w.WorkType,
		Link:         w.AlternateLink,
	}
	if w.DueDate != nil {
		item.DueDate = &parse.DateParts{Year: w.DueDate.Year, Month: w.DueDate.Month, Day: w.DueDate.Day}
	}
	if w.DueTime != nil {
		item.DueTime = &parse.TimeParts{Hours: w.DueTime.Hours, Minutes: w.DueTime.Minutes}
	}
	return item
}

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"classroom-sync/internal/domain"
	"classroom-sync/internal/enrich"
	"classroom-sync/internal/grading"
	"classroom-sync/internal/notify"
)

// courseWorks is what the per-course cache entry holds: the enriched feed
// plus any per-item problems recorded while aggregating it.
type courseWorks struct {
	Works    []domain.EnrichedWork
	Problems []enrich.Problem
}

func (s *Server) getCourses(c *gin.Context) {
	if cached, found := s.cache.Get("courses"); found {
		c.JSON(http.StatusOK, gin.H{"data": cached, "cached": true})
		return
	}

	courses, err := s.provider.ListCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "failed to list courses",
			Message: err.Error(),
		})
		return
	}

	s.cache.Set("courses", courses, 0)
	c.JSON(http.StatusOK, gin.H{"data": courses, "cached": false})
}

func (s *Server) getWorks(c *gin.Context) {
	courseID := c.Param("id")

	cw, cached, err := s.fetchWorks(c.Request.Context(), courseID)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "failed to fetch course work",
			Message: err.Error(),
		})
		return
	}

	now := time.Now()
	works := make([]domain.EnrichedWork, len(cw.Works))
	copy(works, cw.Works)
	domain.SortForDisplay(works, now)

	next := domain.NextDeadline(works, now)
	c.JSON(http.StatusOK, gin.H{
		"data":         works,
		"problems":     cw.Problems,
		"pendingCount": domain.PendingCount(works, now),
		"nextDeadline": next,
		"cached":       cached,
	})
}

func (s *Server) getGrades(c *gin.Context) {
	courseID := c.Param("id")

	course, err := s.findCourse(c.Request.Context(), courseID)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "failed to list courses",
			Message: err.Error(),
		})
		return
	}
	if course == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "course not found"})
		return
	}

	cw, _, err := s.fetchWorks(c.Request.Context(), courseID)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "failed to fetch course work",
			Message: err.Error(),
		})
		return
	}

	var workIDs []string
	for _, w := range cw.Works {
		if !w.IsMaterial {
			workIDs = append(workIDs, w.ID)
		}
	}

	scores, err := s.provider.Scores(c.Request.Context(), courseID, workIDs)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "failed to fetch submissions",
			Message: err.Error(),
		})
		return
	}

	policy := grading.MatchPolicy(course.Name, s.policies)
	records := grading.BuildRecords(cw.Works, scores, policy)

	if policy == nil {
		c.JSON(http.StatusOK, gin.H{
			"course":        course.Name,
			"policyMatched": false,
			"average":       grading.SimpleAverage(records),
			"records":       records,
		})
		return
	}

	projected, coverage, breakdown := grading.Calculate(records, *policy)
	c.JSON(http.StatusOK, gin.H{
		"course":        course.Name,
		"policyMatched": true,
		"projected":     projected,
		"coverage":      coverage,
		"breakdown":     breakdown,
		"records":       records,
	})
}

func (s *Server) getTeachers(c *gin.Context) {
	courseID := c.Param("id")
	cacheKey := "teachers:" + courseID

	// Teacher profile fetches rate-limit aggressively upstream, so cache
	// hits matter more here than anywhere else.
	if cached, found := s.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, gin.H{"data": cached, "cached": true})
		return
	}

	teachers, err := s.provider.ListTeachers(c.Request.Context(), courseID)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "failed to list teachers",
			Message: err.Error(),
		})
		return
	}

	s.cache.Set(cacheKey, teachers, 0)
	c.JSON(http.StatusOK, gin.H{"data": teachers, "cached": false})
}

// getReminder renders the pending-work summary across all courses as plain
// text, in the requested timezone (default UTC).
func (s *Server) getReminder(c *gin.Context) {
	loc := time.UTC
	if tz := c.Query("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "unknown timezone",
				Message: err.Error(),
			})
			return
		}
		loc = parsed
	}

	courses, err := s.provider.ListCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "failed to list courses",
			Message: err.Error(),
		})
		return
	}

	var items []notify.Item
	for _, course := range courses {
		cw, _, err := s.fetchWorks(c.Request.Context(), course.ID)
		if err != nil {
			c.JSON(http.StatusBadGateway, ErrorResponse{
				Error:   "failed to fetch course work",
				Message: err.Error(),
			})
			return
		}
		for _, w := range cw.Works {
			items = append(items, notify.Item{CourseName: course.Name, Work: w})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": notify.DailySummary(items, time.Now(), loc),
	})
}

func (s *Server) invalidateCache(c *gin.Context) {
	s.cache.Flush()
	c.JSON(http.StatusOK, gin.H{"message": "cache invalidated successfully"})
}

// fetchWorks returns a course's enriched feed, from cache when possible.
func (s *Server) fetchWorks(ctx context.Context, courseID string) (courseWorks, bool, error) {
	cacheKey := "works:" + courseID
	if cached, found := s.cache.Get(cacheKey); found {
		if cw, ok := cached.(courseWorks); ok {
			return cw, true, nil
		}
	}

	graded, materials, err := s.provider.ListWork(ctx, courseID)
	if err != nil {
		return courseWorks{}, false, err
	}
	works, problems, err := enrich.Aggregate(graded, materials)
	if err != nil {
		return courseWorks{}, false, err
	}

	cw := courseWorks{Works: works, Problems: problems}
	s.cache.Set(cacheKey, cw, 0)
	return cw, false, nil
}

// findCourse resolves one course by id via the cached course list.
func (s *Server) findCourse(ctx context.Context, courseID string) (*domain.Course, error) {
	var courses []domain.Course
	if cached, found := s.cache.Get("courses"); found {
		if list, ok := cached.([]domain.Course); ok {
			courses = list
		}
	}
	if courses == nil {
		list, err := s.provider.ListCourses(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set("courses", list, 0)
		courses = list
	}

	for i := range courses {
		if courses[i].ID == courseID {
			return &courses[i], nil
		}
	}
	return nil, nil
}

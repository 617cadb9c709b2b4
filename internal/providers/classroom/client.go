// Package classroom is the Google Classroom v1 REST client. Authentication
// lives in the injected *http.Client's transport (internal/auth); this
// package only builds requests and follows pagination.
package classroom

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"classroom-sync/internal/httpx"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Retry   httpx.RetryConfig
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    httpClient,
		Retry:   httpx.DefaultRetryConfig(),
	}
}

// getJSON fetches one API page into out, retrying on 429/5xx.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("classroom: invalid url %s%s: %w", c.BaseURL, path, err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	buildReq := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	if err := httpx.DoJSON(ctx, c.HTTP, buildReq, out, c.Retry); err != nil {
		return fmt.Errorf("classroom: GET %s: %w", path, err)
	}
	return nil
}

// ListCourses fetches all courses in the given state ("ACTIVE" normally),
// following pagination to the end.
func (c *Client) ListCourses(ctx context.Context, state string) ([]Course, error) {
	var all []Course
	pageToken := ""

	for {
		q := url.Values{}
		if state != "" {
			q.Set("courseStates", state)
		}
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var resp ListCoursesResponse
		if err := c.getJSON(ctx, "/courses", q, &resp); err != nil {
			return all, err
		}
		all = append(all, resp.Courses...)

		if resp.NextPageToken == "" {
			return all, nil
		}
		pageToken = resp.NextPageToken
	}
}

// ListCourseWork fetches all graded coursework for a course.
func (c *Client) ListCourseWork(ctx context.Context, courseID string) ([]CourseWork, error) {
	var all []CourseWork
	pageToken := ""

	for {
		q := url.Values{}
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var resp ListCourseWorkResponse
		if err := c.getJSON(ctx, "/courses/"+url.PathEscape(courseID)+"/courseWork", q, &resp); err != nil {
			return all, err
		}
		all = append(all, resp.CourseWork...)

		if resp.NextPageToken == "" {
			return all, nil
		}
		pageToken = resp.NextPageToken
	}
}

// ListMaterials fetches all material-only posts (slides, readings, books)
// for a course.
func (c *Client) ListMaterials(ctx context.Context, courseID string) ([]CourseWork, error) {
	var all []CourseWork
	pageToken := ""

	for {
		q := url.Values{}
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var resp ListMaterialsResponse
		if err := c.getJSON(ctx, "/courses/"+url.PathEscape(courseID)+"/courseWorkMaterials", q, &resp); err != nil {
			return all, err
		}
		all = append(all, resp.CourseWorkMaterial...)

		if resp.NextPageToken == "" {
			return all, nil
		}
		pageToken = resp.NextPageToken
	}
}

// MySubmission fetches the caller's submission for one work item. A work
// item without any submission yields (nil, nil).
func (c *Client) MySubmission(ctx context.Context, courseID, workID string) (*Submission, error) {
	q := url.Values{}
	q.Set("userId", "me")

	path := "/courses/" + url.PathEscape(courseID) + "/courseWork/" + url.PathEscape(workID) + "/studentSubmissions"

	var resp ListSubmissionsResponse
	if err := c.getJSON(ctx, path, q, &resp); err != nil {
		return nil, err
	}
	if len(resp.StudentSubmissions) == 0 {
		return nil, nil
	}
	return &resp.StudentSubmissions[0], nil
}

// ListTeachers fetches the teacher roster (incl. TAs) for a course.
func (c *Client) ListTeachers(ctx context.Context, courseID string) ([]Teacher, error) {
	var all []Teacher
	pageToken := ""

	for {
		q := url.Values{}
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var resp ListTeachersResponse
		if err := c.getJSON(ctx, "/courses/"+url.PathEscape(courseID)+"/teachers", q, &resp); err != nil {
			return all, err
		}
		all = append(all, resp.Teachers...)

		if resp.NextPageToken == "" {
			return all, nil
		}
		pageToken = resp.NextPageToken
	}
}

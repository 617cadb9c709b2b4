package classroom

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"classroom-sync/internal/domain"
)

type route struct {
	substr string
	body   string
}

// routeTripper serves canned JSON bodies, first matching substring wins.
type routeTripper struct {
	routes []route
	calls  []string
}

func (rt *routeTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	key := req.URL.Path
	if req.URL.RawQuery != "" {
		key += "?" + req.URL.RawQuery
	}
	rt.calls = append(rt.calls, key)

	for _, r := range rt.routes {
		if strings.Contains(key, r.substr) {
			return &http.Response{
				StatusCode: 200,
				Body:       io.NopCloser(bytes.NewBufferString(r.body)),
				Header:     http.Header{},
			}, nil
		}
	}
	return &http.Response{
		StatusCode: 404,
		Body:       io.NopCloser(bytes.NewBufferString(`{}`)),
		Header:     http.Header{},
	}, nil
}

func newTestClient(routes []route) (*Client, *routeTripper) {
	rt := &routeTripper{routes: routes}
	return New("https://classroom.test/v1", &http.Client{Transport: rt}), rt
}

func TestListCoursesPagination(t *testing.T) {
	c, rt := newTestClient([]route{
		{"pageToken=tok2", `{"courses": [{"id": "c2", "name": "Physics 101"}]}`},
		{"/courses", `{"courses": [{"id": "c1", "name": "Calculus II"}], "nextPageToken": "tok2"}`},
	})

	courses, err := c.ListCourses(context.Background(), "ACTIVE")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("Expected 2 courses across pages, got %d", len(courses))
	}
	if courses[0].ID != "c1" || courses[1].ID != "c2" {
		t.Errorf("Unexpected course order: %+v", courses)
	}
	if len(rt.calls) != 2 {
		t.Errorf("Expected 2 page fetches, got %d (%v)", len(rt.calls), rt.calls)
	}
	if !strings.Contains(rt.calls[0], "courseStates=ACTIVE") {
		t.Errorf("Expected courseStates filter on first call, got %s", rt.calls[0])
	}
}

func TestProviderListWork(t *testing.T) {
	c, _ := newTestClient([]route{
		{"/courseWorkMaterials", `{"courseWorkMaterial": [{"id": "m1", "title": "Syllabus", "creationTime": "2024-02-01T09:00:00Z"}]}`},
		{"/courseWork", `{"courseWork": [{
			"id": "w1", "title": "Lab 3",
			"dueDate": {"year": 2024, "month": 3, "day": 15},
			"dueTime": {"hours": 9, "minutes": 30},
			"maxPoints": 10, "workType": "ASSIGNMENT",
			"creationTime": "2024-03-01T10:00:00Z"
		}]}`},
	})

	graded, materials, err := Provider{C: c}.ListWork(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(graded) != 1 || len(materials) != 1 {
		t.Fatalf("Expected 1 graded + 1 material, got %d + %d", len(graded), len(materials))
	}

	lab := graded[0]
	if lab.ID != "w1" || lab.Title != "Lab 3" || lab.MaxPoints != 10 {
		t.Errorf("Unexpected graded item: %+v", lab)
	}
	if lab.DueDate == nil || lab.DueDate.Year != 2024 || lab.DueDate.Month != 3 || lab.DueDate.Day != 15 {
		t.Errorf("Unexpected due date: %+v", lab.DueDate)
	}
	if lab.DueTime == nil || lab.DueTime.Hours != 9 || lab.DueTime.Minutes != 30 {
		t.Errorf("Unexpected due time: %+v", lab.DueTime)
	}

	if materials[0].DueDate != nil || materials[0].WorkType != "" {
		t.Errorf("Material should carry no work-item signals: %+v", materials[0])
	}
}

func TestProviderScoresSkipsUngraded(t *testing.T) {
	c, _ := newTestClient([]route{
		{"/courseWork/w1/studentSubmissions", `{"studentSubmissions": [{"id": "s1", "courseWorkId": "w1", "state": "RETURNED", "assignedGrade": 8}]}`},
		{"/courseWork/w2/studentSubmissions", `{"studentSubmissions": [{"id": "s2", "courseWorkId": "w2", "state": "TURNED_IN"}]}`},
		{"/courseWork/w3/studentSubmissions", `{"studentSubmissions": []}`},
	})

	scores, err := Provider{C: c}.Scores(context.Background(), "c1", []string{"w1", "w2", "w3"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected only the graded submission, got %v", scores)
	}
	if s := scores["w1"]; s.Earned != 8 {
		t.Errorf("Expected earned 8 for w1, got %+v", s)
	}
}

func TestProviderScoresSkipsFailedItem(t *testing.T) {
	// No route for w2: that fetch 404s. The grade report keeps the items
	// that did resolve instead of failing wholesale.
	c, _ := newTestClient([]route{
		{"/courseWork/w1/studentSubmissions", `{"studentSubmissions": [{"id": "s1", "courseWorkId": "w1", "state": "RETURNED", "assignedGrade": 8}]}`},
		{"/courseWork/w3/studentSubmissions", `{"studentSubmissions": [{"id": "s3", "courseWorkId": "w3", "state": "RETURNED", "assignedGrade": 5}]}`},
	})

	scores, err := Provider{C: c}.Scores(context.Background(), "c1", []string{"w1", "w2", "w3"})
	if err != nil {
		t.Fatalf("Expected partial result without error, got %v", err)
	}
	if len(scores) != 2 || scores["w1"].Earned != 8 || scores["w3"].Earned != 5 {
		t.Errorf("Expected scores for w1 and w3, got %v", scores)
	}
}

func TestProviderScoresAllFailed(t *testing.T) {
	c, _ := newTestClient(nil)

	scores, err := Provider{C: c}.Scores(context.Background(), "c1", []string{"w1", "w2"})
	if err == nil {
		t.Fatal("Expected an error when every submission fetch fails")
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores, got %v", scores)
	}
}

func TestProviderListTeachers(t *testing.T) {
	c, _ := newTestClient([]route{
		{"/teachers", `{"teachers": [{"userId": "t1", "profile": {"name": {"fullName": "Dr. Ada"}, "emailAddress": "ada@uni.edu"}}]}`},
	})

	teachers, err := Provider{C: c}.ListTeachers(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := domain.Teacher{UserID: "t1", FullName: "Dr. Ada", Email: "ada@uni.edu"}
	if len(teachers) != 1 || teachers[0] != want {
		t.Errorf("Expected %+v, got %+v", want, teachers)
	}
}

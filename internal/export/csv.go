// Package export writes fetched course data as CSV reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"classroom-sync/internal/domain"
	"classroom-sync/internal/grading"
	"classroom-sync/internal/organize"
)

// Keep header order EXACT: downstream spreadsheets key on column position.
var worksHeader = []string{
	"COURSE",
	"WORK_ID",
	"TITLE",
	"CATEGORY",
	"INDEX",
	"TOPIC",
	"DEADLINE_UTC",
	"CREATED_UTC",
	"MAX_POINTS",
	"WORK_TYPE",
	"MATERIAL",
	"LINK",
	"FOLDER",
}

// CourseWorks is one course's enriched work, the unit both CSV reports
// take as input.
type CourseWorks struct {
	Course domain.Course
	Works  []domain.EnrichedWork
}

// WriteWorksCSV writes every work item of every course, one row per item.
func WriteWorksCSV(w io.Writer, courses []CourseWorks) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(worksHeader); err != nil {
		return err
	}
	for _, c := range courses {
		for _, wk := range c.Works {
			if err := cw.Write(toWorkRow(c.Course.Name, wk)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func toWorkRow(courseName string, w domain.EnrichedWork) []string {
	index := ""
	if w.Index > 0 {
		index = strconv.Itoa(w.Index)
	}
	return []string{
		courseName,
		w.ID,
		w.Title,
		string(w.Category),
		index,
		w.Topic,
		formatTime(w.Deadline),
		formatTime(w.CreationTime),
		floatToString(w.MaxPoints),
		w.WorkType,
		strconv.FormatBool(w.IsMaterial),
		w.Link,
		organize.FolderPath(courseName, w),
	}
}

var gradesHeader = []string{
	"COURSE",
	"CATEGORY",
	"WEIGHT",
	"RULE",
	"COUNT",
	"AVERAGE",
	"PROJECTED",
	"COVERAGE",
}

// GradeReport is one course's weighted grade result, ready for export.
type GradeReport struct {
	CourseName string
	Projected  float64
	Coverage   float64
	Breakdown  []grading.CategoryResult
}

// WriteGradesCSV writes per-category grade breakdowns. The projected total
// and coverage repeat on each of a course's rows so any single row is
// self-contained.
func WriteGradesCSV(w io.Writer, reports []GradeReport) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(gradesHeader); err != nil {
		return err
	}
	for _, r := range reports {
		for _, cat := range r.Breakdown {
			row := []string{
				r.CourseName,
				cat.Name,
				floatToString(cat.Weight),
				cat.Rule,
				strconv.Itoa(cat.Count),
				formatPercent(cat.Average),
				formatPercent(r.Projected),
				formatPercent(r.Coverage),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteWorksCSVFile is the file-path convenience around WriteWorksCSV.
func WriteWorksCSVFile(path string, courses []CourseWorks) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteWorksCSV(f, courses); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return f.Close()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

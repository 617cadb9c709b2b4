// Package organize derives stable folder paths for downloaded course
// files, grouping them by ISO week and topic.
package organize

import (
	"fmt"
	"regexp"
	"strings"

	"classroom-sync/internal/domain"
)

const (
	unscheduledWeek = "Unscheduled"
	generalTopic    = "General"
)

// Title patterns a topic can be recovered from when the work item carries
// no topic of its own. Checked in order; the first match wins.
var topicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Week\s+\d+[:\-]\s*(.+?)(?:\s*[-:]\s*\w+\s*\d+)?$`),
	regexp.MustCompile(`(?i)^(.+?)\s*[-:]\s*(?:Assignment|Lab|Quiz|Exam|HW)`),
	regexp.MustCompile(`(?i)^(.+?)\s*\d+$`),
}

// WeekLabel returns "Week N" using the ISO week of the deadline, falling
// back to the creation time, or "Unscheduled" when neither is known.
func WeekLabel(w domain.EnrichedWork) string {
	if w.Deadline != nil {
		_, week := w.Deadline.ISOWeek()
		return fmt.Sprintf("Week %d", week)
	}
	if w.CreationTime != nil {
		_, week := w.CreationTime.ISOWeek()
		return fmt.Sprintf("Week %d", week)
	}
	return unscheduledWeek
}

// TopicLabel returns the work item's own topic when present, otherwise
// tries to recover one from the title, otherwise "General".
func TopicLabel(w domain.EnrichedWork) string {
	if topic := strings.TrimSpace(w.Topic); topic != "" {
		return topic
	}

	for _, re := range topicPatterns {
		if m := re.FindStringSubmatch(w.Title); m != nil {
			if topic := strings.TrimSpace(m[1]); topic != "" {
				return topic
			}
		}
	}
	return generalTopic
}

// FolderPath builds the "Course/Week N - Topic" folder a work item's files
// belong under. The course name is filtered down to filesystem-safe runes.
func FolderPath(courseName string, w domain.EnrichedWork) string {
	return safeName(courseName) + "/" + WeekLabel(w) + " - " + TopicLabel(w)
}

// safeName keeps letters, digits, spaces, dashes and underscores.
func safeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

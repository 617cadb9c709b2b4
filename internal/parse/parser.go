// Package parse turns raw classroom item titles and due-date fragments into
// typed metadata. Everything here is pure: no I/O, no state, same output for
// the same input.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"classroom-sync/internal/domain"
)

// categoryKeywords maps categories to the title keywords that select them.
// Order matters: the first category with any keyword present in the title
// wins, so QUIZ is checked before LAB, LAB before PROJECT, and so on. A
// plain map would make the tie-break depend on iteration order.
var categoryKeywords = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryQuiz, []string{"quiz", "test", "exam", "midterm", "final", "mt"}},
	{domain.CategoryLab, []string{"lab", "practical", "experiment"}},
	{domain.CategoryProject, []string{"project", "milestone", "proposal", "report"}},
	{domain.CategoryAssignment, []string{"assignment", "hw", "homework", "problem set", "sheet"}},
	{domain.CategoryLecture, []string{"lecture", "slide", "presentation", "notes", "chapter"}},
	{domain.CategoryTutorial, []string{"tutorial", "recitation"}},
	{domain.CategoryGrade, []string{"grade", "score", "result"}},
}

// noiseWords are stripped alongside category keywords when isolating a topic.
var noiseWords = []string{"week", "unit", "part", "pdf", "docx", "ppt"}

// indexRe captures a number adjacent to a boundary, a space, a '#', or a
// letter: "Lab 3", "Lab03" (via the letter branch), "Sheet#4", "L3", "HW 12".
var indexRe = regexp.MustCompile(`(?:^|[\s#a-z])(\d+)(?:$|[\s:])`)

var topicStripRe = buildTopicStripRe()

func buildTopicStripRe() *regexp.Regexp {
	words := make([]string, 0, 32)
	for _, ck := range categoryKeywords {
		for _, k := range ck.keywords {
			words = append(words, regexp.QuoteMeta(k))
		}
	}
	for _, w := range noiseWords {
		words = append(words, regexp.QuoteMeta(w))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
}

var digitsRe = regexp.MustCompile(`\d+`)

// Result is the parsed metadata for a single title.
type Result struct {
	Category domain.Category
	Index    int    // 0 when no number was found
	Topic    string // "" when no usable topic survived stripping
}

// Parse classifies a raw item title. It never fails: unclassifiable input
// comes back as UNCATEGORIZED with no index and no topic. The description is
// accepted for symmetry with the source records but the heuristics are
// title-driven.
func Parse(title, description string) Result {
	titleLower := strings.ToLower(title)
	_ = description

	category := domain.CategoryUncategorized
	for _, ck := range categoryKeywords {
		if containsAny(titleLower, ck.keywords) {
			category = ck.category
			break
		}
	}

	// An exam-specific keyword beats the generic quiz classification.
	if category == domain.CategoryQuiz {
		if strings.Contains(titleLower, "midterm") || strings.Contains(titleLower, "mt") {
			category = domain.CategoryMidterm
		} else if strings.Contains(titleLower, "final") {
			category = domain.CategoryFinal
		}
	}

	index := 0
	if m := indexRe.FindStringSubmatch(titleLower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			index = n
		}
	}

	return Result{
		Category: category,
		Index:    index,
		Topic:    extractTopic(title),
	}
}

// extractTopic strips every category keyword and noise word (whole-word,
// case-insensitive), then all digits, then surrounding separators. Titles
// that are nothing but a label and a number ("Lab 3") come out too short to
// be a topic and yield "".
func extractTopic(title string) string {
	topic := topicStripRe.ReplaceAllString(title, "")
	topic = digitsRe.ReplaceAllString(topic, "")
	topic = strings.Trim(topic, " \t-_#:")
	if len(topic) < 3 {
		return ""
	}
	return topic
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

package grading

import "strings"

// Uncategorized is returned when an assignment title matches none of a
// policy's categories, directly or via synonyms.
const Uncategorized = "Uncategorized"

// synonyms maps policy category names to title keywords that imply them.
// Checked in this order, after direct category-name matching fails; only
// entries whose name the policy actually declares are considered.
var synonyms = []struct {
	category string
	keywords []string
}{
	{"Quizzes", []string{"quiz", "test"}},
	{"Assignments", []string{"assignment", "hw", "homework", "problem set"}},
	{"Midterm Exam", []string{"midterm", "mt"}},
	{"Final Exam", []string{"final"}},
	{"Project", []string{"project", "milestone"}},
	{"Lab", []string{"lab"}},
	{"Lab Exam", []string{"lab exam", "practical"}},
	{"Attendance", []string{"attendance", "participation"}},
}

// Categorize maps an assignment title onto one of the policy's declared
// categories: first a direct substring match on the category name itself
// ("Quiz 1" -> "Quizzes" won't hit here, but "Attendance week 2" ->
// "Attendance" will), then the synonym table. First match wins in the
// order given.
func Categorize(title string, policyCategories []string) string {
	titleLower := strings.ToLower(title)

	for _, cat := range policyCategories {
		if cat != "" && strings.Contains(titleLower, strings.ToLower(cat)) {
			return cat
		}
	}

	declared := make(map[string]bool, len(policyCategories))
	for _, cat := range policyCategories {
		declared[cat] = true
	}

	for _, syn := range synonyms {
		if !declared[syn.category] {
			continue
		}
		for _, kw := range syn.keywords {
			if strings.Contains(titleLower, kw) {
				return syn.category
			}
		}
	}

	return Uncategorized
}

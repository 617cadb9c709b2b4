package domain

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// GradingPolicy is a course-specific grade weighting configuration.
// Keywords match it to a course name; Policy maps category name -> weight
// fraction (weights need not sum to 1); Rules optionally carries a free-text
// trimming rule per category, e.g. "best 2 of 3".
type GradingPolicy struct {
	Keywords []string `json:"keywords"`
	// Categories fixes the declared order of policy categories. The JSON
	// policy file lists them explicitly because the categorizer's direct
	// match is first-wins and must stay deterministic.
	Categories []string           `json:"categories"`
	Policy     map[string]float64 `json:"policy"`
	Rules      map[string]string  `json:"rules,omitempty"`
}

// CategoryOrder returns the declared category order. Legacy policy files
// omit "categories"; for those the weight map keys are sorted so repeated
// calls resolve ambiguous titles the same way.
func (p GradingPolicy) CategoryOrder() []string {
	if len(p.Categories) > 0 {
		return p.Categories
	}
	out := make([]string, 0, len(p.Policy))
	for name := range p.Policy {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// GradeRecord is one graded assignment as fed to the weighted calculator.
// Derived per request from (work, submission) pairs; never persisted.
type GradeRecord struct {
	AssignmentTitle string  `json:"assignment"`
	Category        string  `json:"category"`
	EarnedPoints    float64 `json:"earned"`
	MaxPoints       float64 `json:"max"`
	Percentage      float64 `json:"percentage"`
}

// LoadPolicies reads grading policies from a JSON file. A missing file is
// not an error: the caller just runs with no policies and falls back to
// simple averages.
func LoadPolicies(path string) ([]GradingPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("policies: read %s: %w", path, err)
	}

	var policies []GradingPolicy
	if err := json.Unmarshal(data, &policies); err != nil {
		return nil, fmt.Errorf("policies: parse %s: %w", path, err)
	}
	return policies, nil
}

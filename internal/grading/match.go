// Package grading applies a best-effort grading policy to a course: match a
// policy by keyword, bucket assignments into its categories, and project a
// weighted grade from whatever has been graded so far.
package grading

import (
	"strings"

	"classroom-sync/internal/domain"
)

// MatchPolicy picks the policy whose keywords best cover the course name.
// Each keyword found as a substring of the lower-cased name contributes its
// length, so "calculus ii" outscores "calculus" and specific policies beat
// generic ones. Ties keep the first policy in input order. Returns nil when
// no policy scores at all; callers then fall back to a simple average.
func MatchPolicy(courseName string, policies []domain.GradingPolicy) *domain.GradingPolicy {
	name := strings.ToLower(courseName)

	var best *domain.GradingPolicy
	maxScore := 0

	for i := range policies {
		score := 0
		for _, kw := range policies[i].Keywords {
			kw = strings.ToLower(kw)
			if kw != "" && strings.Contains(name, kw) {
				score += len(kw)
			}
		}
		if score > maxScore {
			maxScore = score
			best = &policies[i]
		}
	}

	return best
}

package grading

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"classroom-sync/internal/domain"
)

// bestNRe pulls N out of free-text rules like "best 2 of 3".
var bestNRe = regexp.MustCompile(`best (\d+)`)

// CategoryResult is the per-category slice of a projection, for display.
type CategoryResult struct {
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Rule    string  `json:"rule,omitempty"`
}

// Calculate projects a weighted grade from the grades available so far.
//
// Categories declared by the policy but with no grades yet contribute to
// neither accumulator, so the projection reflects only what has been graded,
// scaled back up. Coverage (second return, in percent of total policy
// weight) tells the caller how much syllabus weight backs the number; it
// must always be surfaced next to the projection.
func Calculate(grades []domain.GradeRecord, policy domain.GradingPolicy) (projected, coverage float64, breakdown []CategoryResult) {
	grouped := map[string][]float64{}
	for _, g := range grades {
		grouped[g.Category] = append(grouped[g.Category], g.Percentage)
	}

	var total, totalWeight float64

	for _, category := range policy.CategoryOrder() {
		weight, ok := policy.Policy[category]
		if !ok {
			continue
		}
		scores := grouped[category]
		if len(scores) == 0 {
			continue
		}

		rule := policy.Rules[category]
		kept := applyRule(scores, rule)

		avg := mean(kept)
		total += avg * weight
		totalWeight += weight

		breakdown = append(breakdown, CategoryResult{
			Name:    category,
			Weight:  weight,
			Average: avg,
			Count:   len(scores),
			Rule:    rule,
		})
	}

	if totalWeight == 0 {
		return 0, 0, breakdown
	}
	// Percentages are already 0-100, so scaling back up to the full weight
	// is a plain division. Coverage converts the weight fraction to percent.
	return total / totalWeight, totalWeight * 100, breakdown
}

// applyRule keeps the top N scores when the rule says "best N"; any other
// rule text (or none) keeps everything. Rule parsing is deliberately
// forgiving: an unrecognized rule means no trimming, never an error.
func applyRule(scores []float64, rule string) []float64 {
	m := bestNRe.FindStringSubmatch(strings.ToLower(rule))
	if m == nil {
		return scores
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 || n >= len(scores) {
		return scores
	}

	kept := make([]float64, len(scores))
	copy(kept, scores)
	sort.Sort(sort.Reverse(sort.Float64Slice(kept)))
	return kept[:n]
}

// SimpleAverage is the unweighted fallback shown when no policy matched the
// course. Zero grades average to zero.
func SimpleAverage(grades []domain.GradeRecord) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range grades {
		sum += g.Percentage
	}
	return sum / float64(len(grades))
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

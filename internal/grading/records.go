package grading

import "classroom-sync/internal/domain"

// Score is the raw earned/max point pair for one submission, keyed by work
// item id by the submissions fetcher.
type Score struct {
	Earned float64
	Max    float64
}

// BuildRecords assembles GradeRecords from enriched works and their
// submission scores. Works without a score, or with nothing to score
// against, are skipped. When a policy is given each record is bucketed into
// one of its categories; without one everything lands in Uncategorized.
func BuildRecords(works []domain.EnrichedWork, scores map[string]Score, policy *domain.GradingPolicy) []domain.GradeRecord {
	var records []domain.GradeRecord

	for _, w := range works {
		s, ok := scores[w.ID]
		if !ok {
			continue
		}
		max := s.Max
		if max == 0 {
			max = w.MaxPoints
		}
		if max == 0 {
			continue
		}

		category := Uncategorized
		if policy != nil {
			category = Categorize(w.Title, policy.CategoryOrder())
		}

		records = append(records, domain.GradeRecord{
			AssignmentTitle: w.Title,
			Category:        category,
			EarnedPoints:    s.Earned,
			MaxPoints:       max,
			Percentage:      (s.Earned / max) * 100,
		})
	}

	return records
}

// Package aggregate combines up to three dimension results into a single
// verdict: an overall score, a level, a severity-ranked diagnosis, and
// the exit rules that gate progression.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/rubric"
)

// Result is the deterministic combination of the settled dimensions.
type Result struct {
	OverallScore float64
	Level        assessment.Level
	Diagnosis    []assessment.Issue
	ExitRules    []assessment.ExitRule

	// Missing lists the dimensions that were absent from aggregation,
	// in category order.
	Missing []assessment.Category
}

// Aggregate combines the present dimension results under the rubric's
// weights. Weights of absent dimensions are redistributed proportionally
// across the present ones, so the effective weights always sum to 1.0.
// Returns *assessment.AggregationError when no dimension settled or the
// present weights sum to zero.
func Aggregate(rub rubric.Rubric, dims map[assessment.Category]*assessment.DimensionResult) (*Result, error) {
	var present, missing []assessment.Category
	weightSum := 0.0
	for _, cat := range assessment.AllCategories() {
		if _, ok := dims[cat]; ok {
			present = append(present, cat)
			weightSum += rub.Weights[cat]
		} else {
			missing = append(missing, cat)
		}
	}

	if len(present) == 0 {
		return nil, &assessment.AggregationError{Reason: "no dimension results to aggregate"}
	}
	if weightSum <= 0 {
		return nil, &assessment.AggregationError{
			Reason: fmt.Sprintf("present dimension weights sum to %f", weightSum),
		}
	}

	overall := 0.0
	for _, cat := range present {
		overall += (rub.Weights[cat] / weightSum) * dims[cat].Score
	}

	return &Result{
		OverallScore: overall,
		Level:        classify(overall, rub),
		Diagnosis:    buildDiagnosis(dims, present, rub.DiagnosisCap),
		ExitRules:    deriveExitRules(dims, present, rub),
		Missing:      missing,
	}, nil
}

func classify(overall float64, rub rubric.Rubric) assessment.Level {
	switch {
	case overall >= rub.ExcellentThreshold:
		return assessment.LevelExcellent
	case overall >= rub.PassThreshold:
		return assessment.LevelPass
	default:
		return assessment.LevelNeedImprovement
	}
}

// buildDiagnosis merges issues across dimensions, orders them by severity
// then category priority then criterion, and caps the list while always
// retaining every critical issue.
func buildDiagnosis(dims map[assessment.Category]*assessment.DimensionResult, present []assessment.Category, limit int) []assessment.Issue {
	var merged []assessment.Issue
	for _, cat := range present {
		merged = append(merged, dims[cat].Issues...)
	}
	if len(merged) == 0 {
		return nil
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if a.Category.Priority() != b.Category.Priority() {
			return a.Category.Priority() < b.Category.Priority()
		}
		return a.Criterion < b.Criterion
	})

	if limit <= 0 || len(merged) <= limit {
		return merged
	}

	// Criticals sort first, so the cut point only needs extending when
	// criticals alone exceed the cap.
	cut := limit
	for cut < len(merged) && merged[cut].Severity == assessment.SeverityCritical {
		cut++
	}
	return merged[:cut]
}

// deriveExitRules emits one block-upgrade rule per gating dimension that
// carries a critical issue. Score alone is never sufficient for upgrade
// when a gating rule is present.
func deriveExitRules(dims map[assessment.Category]*assessment.DimensionResult, present []assessment.Category, rub rubric.Rubric) []assessment.ExitRule {
	var rules []assessment.ExitRule
	seen := make(map[string]int)

	for _, cat := range present {
		for _, iss := range dims[cat].Issues {
			if iss.Severity != assessment.SeverityCritical {
				continue
			}
			dim := iss.Dimension()
			if !rub.IsGating(dim) {
				continue
			}
			if idx, ok := seen[dim]; ok {
				if iss.Fix != "" {
					rules[idx].Remedy = append(rules[idx].Remedy, iss.Fix)
				}
				continue
			}
			rule := assessment.ExitRule{
				Rule:         "gating",
				Dimension:    dim,
				BlockUpgrade: true,
			}
			if iss.Fix != "" {
				rule.Remedy = []string{iss.Fix}
			}
			seen[dim] = len(rules)
			rules = append(rules, rule)
		}
	}

	return rules
}

package evaluator

import (
	"context"
	"time"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/rubric"
)

// Mock is an Evaluator for tests. It returns a fixed result or error,
// optionally after a delay, and honors context cancellation.
type Mock struct {
	Cat    assessment.Category
	Result *assessment.DimensionResult
	Err    error
	Delay  time.Duration
}

func (m *Mock) Category() assessment.Category {
	return m.Cat
}

func (m *Mock) Evaluate(ctx context.Context, artifact assessment.Artifact, rub rubric.Rubric) (*assessment.DimensionResult, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	result := *m.Result
	result.Category = m.Cat
	return &result, nil
}

// FixedScore builds a mock that returns the given dimension score with
// uniform sub-scores and no issues.
func FixedScore(cat assessment.Category, score float64) *Mock {
	return &Mock{
		Cat: cat,
		Result: &assessment.DimensionResult{
			Category:  cat,
			Score:     score,
			SubScores: map[string]float64{},
		},
	}
}

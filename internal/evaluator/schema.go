package evaluator

import (
	"sort"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/llm"
)

// buildEvaluationSchema constructs the response schema for one dimension.
// The sub_scores properties are derived from the rubric criteria, so each
// rubric version yields its own schema.
func buildEvaluationSchema(cat assessment.Category, criteria map[string]float64) *llm.Schema {
	names := make([]string, 0, len(criteria))
	for name := range criteria {
		names = append(names, name)
	}
	sort.Strings(names)

	subScoreProps := make(map[string]any, len(names))
	required := make([]any, 0, len(names))
	criterionEnum := make([]any, 0, len(names))
	for _, name := range names {
		subScoreProps[name] = map[string]any{
			"type":        "number",
			"minimum":     0.0,
			"maximum":     100.0,
			"description": "Score for the " + name + " criterion",
		}
		required = append(required, name)
		criterionEnum = append(criterionEnum, name)
	}

	return &llm.Schema{
		Name:        string(cat) + "-evaluation",
		Description: "Per-criterion scores and diagnosis for the " + string(cat) + " dimension",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sub_scores": map[string]any{
					"type":                 "object",
					"properties":           subScoreProps,
					"required":             required,
					"additionalProperties": false,
				},
				"issues": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"criterion": map[string]any{
								"type": "string",
								"enum": criterionEnum,
							},
							"severity": map[string]any{
								"type": "string",
								"enum": []any{"critical", "major", "minor"},
							},
							"summary": map[string]any{
								"type":        "string",
								"description": "One-sentence description of the problem",
							},
							"fix": map[string]any{
								"type":        "string",
								"description": "One-sentence suggested fix",
							},
						},
						"required":             []any{"criterion", "severity", "summary", "fix"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"sub_scores", "issues"},
			"additionalProperties": false,
		},
	}
}

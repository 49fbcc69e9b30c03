package evaluator

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/llm"
	"github.com/codecampus/pathway/internal/rubric"
)

func testRubric(t *testing.T) rubric.Rubric {
	t.Helper()
	set := rubric.DefaultSet()
	r, err := set.Get("")
	if err != nil {
		t.Fatalf("get default rubric: %v", err)
	}
	return r
}

func TestEvaluateCodeDimension(t *testing.T) {
	provider := llm.NewMockProvider()
	provider.AddResponse(json.RawMessage(`{
		"sub_scores": {
			"correctness": 80,
			"robustness": 70,
			"readability": 90,
			"maintainability": 85,
			"architecture": 75,
			"performance": 60,
			"security": 50
		},
		"issues": [
			{"criterion": "security", "severity": "critical", "summary": "API key committed to the repository.", "fix": "Move the key to an environment variable."}
		]
	}`), nil)

	eval := NewCode(provider, DefaultConfig())
	artifact := assessment.Artifact{CodeSnippets: []string{"func main() {}"}}

	result, err := eval.Evaluate(context.Background(), artifact, testRubric(t))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if result.Category != assessment.CategoryCode {
		t.Errorf("category = %q, want %q", result.Category, assessment.CategoryCode)
	}

	// 80*.15 + 70*.15 + 90*.20 + 85*.20 + 75*.15 + 60*.08 + 50*.07
	want := 80*0.15 + 70*0.15 + 90*0.20 + 85*0.20 + 75*0.15 + 60*0.08 + 50*0.07
	if math.Abs(result.Score-want) > 1e-9 {
		t.Errorf("score = %f, want %f", result.Score, want)
	}

	if len(result.Issues) != 1 {
		t.Fatalf("issues = %d, want 1", len(result.Issues))
	}
	if result.Issues[0].Dimension() != "code.security" {
		t.Errorf("issue dimension = %q, want code.security", result.Issues[0].Dimension())
	}
	if result.Issues[0].Severity != assessment.SeverityCritical {
		t.Errorf("issue severity = %q, want critical", result.Issues[0].Severity)
	}
}

func TestEvaluateMissingSubScore(t *testing.T) {
	provider := llm.NewMockProvider()
	provider.AddResponse(json.RawMessage(`{
		"sub_scores": {"innovation": 80},
		"issues": []
	}`), nil)

	eval := NewIdea(provider, DefaultConfig())
	artifact := assessment.Artifact{IdeaText: "A recipe planner."}

	_, err := eval.Evaluate(context.Background(), artifact, testRubric(t))
	if err == nil {
		t.Fatal("expected error for missing sub-scores")
	}
	if !strings.Contains(err.Error(), "missing sub-score") {
		t.Errorf("error = %v, want missing sub-score", err)
	}
}

func TestEvaluateDropsUnknownCriteria(t *testing.T) {
	raw := evaluationOutput{
		SubScores: map[string]float64{
			"innovation":     80,
			"feasibility":    70,
			"learning_value": 90,
		},
		Issues: []issueOutput{
			{Criterion: "innovation", Severity: "minor", Summary: "Common idea.", Fix: "Add a twist."},
			{Criterion: "not_a_criterion", Severity: "major", Summary: "Bogus.", Fix: "Ignore."},
		},
	}

	r := testRubric(t)
	result, err := buildResult(assessment.CategoryIdea, r.CriteriaFor(assessment.CategoryIdea), raw)
	if err != nil {
		t.Fatalf("buildResult: %v", err)
	}
	if len(result.Issues) != 1 {
		t.Errorf("issues = %d, want 1 (unknown criterion dropped)", len(result.Issues))
	}
}

func TestEvaluateInvalidSeverityFallsBackToMinor(t *testing.T) {
	raw := evaluationOutput{
		SubScores: map[string]float64{
			"innovation":     80,
			"feasibility":    70,
			"learning_value": 90,
		},
		Issues: []issueOutput{
			{Criterion: "innovation", Severity: "catastrophic", Summary: "x", Fix: "y"},
		},
	}

	r := testRubric(t)
	result, err := buildResult(assessment.CategoryIdea, r.CriteriaFor(assessment.CategoryIdea), raw)
	if err != nil {
		t.Fatalf("buildResult: %v", err)
	}
	if result.Issues[0].Severity != assessment.SeverityMinor {
		t.Errorf("severity = %q, want minor", result.Issues[0].Severity)
	}
}

func TestEvaluateClampsScores(t *testing.T) {
	raw := evaluationOutput{
		SubScores: map[string]float64{
			"innovation":     150,
			"feasibility":    -20,
			"learning_value": 50,
		},
	}

	r := testRubric(t)
	result, err := buildResult(assessment.CategoryIdea, r.CriteriaFor(assessment.CategoryIdea), raw)
	if err != nil {
		t.Fatalf("buildResult: %v", err)
	}
	if result.SubScores["innovation"] != 100 {
		t.Errorf("innovation = %f, want clamped to 100", result.SubScores["innovation"])
	}
	if result.SubScores["feasibility"] != 0 {
		t.Errorf("feasibility = %f, want clamped to 0", result.SubScores["feasibility"])
	}
}

func TestEvaluateEmptyInput(t *testing.T) {
	eval := NewUI(llm.NewMockProvider(), DefaultConfig())
	_, err := eval.Evaluate(context.Background(), assessment.Artifact{}, testRubric(t))
	if err == nil {
		t.Fatal("expected error for artifact with no UI images")
	}
}

func TestMockEvaluatorHonorsContext(t *testing.T) {
	mock := &Mock{
		Cat:    assessment.CategoryCode,
		Result: &assessment.DimensionResult{Score: 90},
		Delay:  time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Evaluate(ctx, assessment.Artifact{}, testRubric(t))
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

package aggregate

import (
	"errors"
	"math"
	"testing"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/rubric"
)

func testRubric(t *testing.T) rubric.Rubric {
	t.Helper()
	r, err := rubric.DefaultSet().Get("")
	if err != nil {
		t.Fatalf("get default rubric: %v", err)
	}
	return r
}

func dim(cat assessment.Category, score float64, issues ...assessment.Issue) *assessment.DimensionResult {
	return &assessment.DimensionResult{Category: cat, Score: score, Issues: issues}
}

func TestAggregateAllDimensions(t *testing.T) {
	dims := map[assessment.Category]*assessment.DimensionResult{
		assessment.CategoryIdea: dim(assessment.CategoryIdea, 90),
		assessment.CategoryUI:   dim(assessment.CategoryUI, 88),
		assessment.CategoryCode: dim(assessment.CategoryCode, 92),
	}

	result, err := Aggregate(testRubric(t), dims)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	// 90*0.3 + 88*0.3 + 92*0.4 = 90.2
	if math.Abs(result.OverallScore-90.2) > 1e-9 {
		t.Errorf("overall = %f, want 90.2", result.OverallScore)
	}
	if result.Level != assessment.LevelExcellent {
		t.Errorf("level = %q, want excellent", result.Level)
	}
	if len(result.Missing) != 0 {
		t.Errorf("missing = %v, want none", result.Missing)
	}
}

func TestAggregateRedistributesMissingWeight(t *testing.T) {
	dims := map[assessment.Category]*assessment.DimensionResult{
		assessment.CategoryIdea: dim(assessment.CategoryIdea, 70),
		assessment.CategoryUI:   dim(assessment.CategoryUI, 75),
	}

	result, err := Aggregate(testRubric(t), dims)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	// idea and ui each weigh 0.3; redistributed to 0.5 each.
	// 70*0.5 + 75*0.5 = 72.5
	if math.Abs(result.OverallScore-72.5) > 1e-9 {
		t.Errorf("overall = %f, want 72.5", result.OverallScore)
	}
	if len(result.Missing) != 1 || result.Missing[0] != assessment.CategoryCode {
		t.Errorf("missing = %v, want [code]", result.Missing)
	}
	if result.Level != assessment.LevelPass {
		t.Errorf("level = %q, want pass", result.Level)
	}
}

func TestAggregateRedistributionInvariant(t *testing.T) {
	rub := testRubric(t)

	// For every non-empty subset of dimensions, effective weights must
	// sum to 1.0: aggregating all-100 scores must yield exactly 100.
	subsets := [][]assessment.Category{
		{assessment.CategoryIdea},
		{assessment.CategoryUI},
		{assessment.CategoryCode},
		{assessment.CategoryIdea, assessment.CategoryUI},
		{assessment.CategoryIdea, assessment.CategoryCode},
		{assessment.CategoryUI, assessment.CategoryCode},
		{assessment.CategoryIdea, assessment.CategoryUI, assessment.CategoryCode},
	}

	for _, subset := range subsets {
		dims := make(map[assessment.Category]*assessment.DimensionResult)
		for _, cat := range subset {
			dims[cat] = dim(cat, 100)
		}
		result, err := Aggregate(rub, dims)
		if err != nil {
			t.Fatalf("Aggregate(%v): %v", subset, err)
		}
		if math.Abs(result.OverallScore-100) > 1e-9 {
			t.Errorf("subset %v: overall = %f, want 100", subset, result.OverallScore)
		}
	}
}

func TestAggregateMonotonic(t *testing.T) {
	rub := testRubric(t)

	base := map[assessment.Category]*assessment.DimensionResult{
		assessment.CategoryIdea: dim(assessment.CategoryIdea, 50),
		assessment.CategoryUI:   dim(assessment.CategoryUI, 50),
		assessment.CategoryCode: dim(assessment.CategoryCode, 50),
	}
	baseResult, err := Aggregate(rub, base)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	for _, cat := range assessment.AllCategories() {
		prev := baseResult.OverallScore
		for score := 55.0; score <= 100; score += 5 {
			bumped := map[assessment.Category]*assessment.DimensionResult{
				assessment.CategoryIdea: base[assessment.CategoryIdea],
				assessment.CategoryUI:   base[assessment.CategoryUI],
				assessment.CategoryCode: base[assessment.CategoryCode],
			}
			bumped[cat] = dim(cat, score)
			result, err := Aggregate(rub, bumped)
			if err != nil {
				t.Fatalf("Aggregate: %v", err)
			}
			if result.OverallScore < prev {
				t.Errorf("raising %s to %f lowered overall %f -> %f", cat, score, prev, result.OverallScore)
			}
			prev = result.OverallScore
		}
	}
}

func TestAggregateNoDimensions(t *testing.T) {
	_, err := Aggregate(testRubric(t), nil)
	var aggErr *assessment.AggregationError
	if !errors.As(err, &aggErr) {
		t.Fatalf("err = %v, want AggregationError", err)
	}
}

func TestDiagnosisOrderingAndCap(t *testing.T) {
	rub := testRubric(t)
	rub.DiagnosisCap = 3

	issue := func(cat assessment.Category, crit string, sev assessment.Severity) assessment.Issue {
		return assessment.Issue{Category: cat, Criterion: crit, Severity: sev, Summary: "x"}
	}

	dims := map[assessment.Category]*assessment.DimensionResult{
		assessment.CategoryIdea: dim(assessment.CategoryIdea, 80,
			issue(assessment.CategoryIdea, "feasibility", assessment.SeverityCritical),
			issue(assessment.CategoryIdea, "innovation", assessment.SeverityMinor),
		),
		assessment.CategoryUI: dim(assessment.CategoryUI, 80,
			issue(assessment.CategoryUI, "usability", assessment.SeverityMajor),
			issue(assessment.CategoryUI, "compliance", assessment.SeverityMinor),
		),
		assessment.CategoryCode: dim(assessment.CategoryCode, 80,
			issue(assessment.CategoryCode, "security", assessment.SeverityCritical),
			issue(assessment.CategoryCode, "correctness", assessment.SeverityCritical),
			issue(assessment.CategoryCode, "readability", assessment.SeverityMinor),
		),
	}

	result, err := Aggregate(rub, dims)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	// Criticals first: code before idea, criterion alphabetical within
	// the same category. Then majors. Cap of 3 retains all 3 criticals
	// and drops everything after them.
	wantDims := []string{"code.correctness", "code.security", "idea.feasibility"}
	if len(result.Diagnosis) != len(wantDims) {
		t.Fatalf("diagnosis length = %d, want %d: %+v", len(result.Diagnosis), len(wantDims), result.Diagnosis)
	}
	for i, want := range wantDims {
		if got := result.Diagnosis[i].Dimension(); got != want {
			t.Errorf("diagnosis[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestDiagnosisCapRetainsAllCriticals(t *testing.T) {
	rub := testRubric(t)
	rub.DiagnosisCap = 2

	var issues []assessment.Issue
	for _, crit := range []string{"correctness", "robustness", "security", "architecture"} {
		issues = append(issues, assessment.Issue{
			Category: assessment.CategoryCode, Criterion: crit,
			Severity: assessment.SeverityCritical, Summary: "x",
		})
	}
	dims := map[assessment.Category]*assessment.DimensionResult{
		assessment.CategoryCode: dim(assessment.CategoryCode, 20, issues...),
	}

	result, err := Aggregate(rub, dims)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(result.Diagnosis) != 4 {
		t.Errorf("diagnosis length = %d, want 4 (all criticals kept past cap)", len(result.Diagnosis))
	}
}

func TestGatingExitRules(t *testing.T) {
	dims := map[assessment.Category]*assessment.DimensionResult{
		assessment.CategoryCode: dim(assessment.CategoryCode, 95,
			assessment.Issue{
				Category: assessment.CategoryCode, Criterion: "security",
				Severity: assessment.SeverityCritical,
				Summary:  "SQL injection in the login handler.",
				Fix:      "Use parameterized queries.",
			},
			// Critical on a non-gating criterion: no rule.
			assessment.Issue{
				Category: assessment.CategoryCode, Criterion: "performance",
				Severity: assessment.SeverityCritical, Summary: "x",
			},
			// Major on a gating criterion: no rule.
			assessment.Issue{
				Category: assessment.CategoryCode, Criterion: "correctness",
				Severity: assessment.SeverityMajor, Summary: "x",
			},
		),
	}

	result, err := Aggregate(testRubric(t), dims)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if len(result.ExitRules) != 1 {
		t.Fatalf("exit rules = %d, want 1: %+v", len(result.ExitRules), result.ExitRules)
	}
	rule := result.ExitRules[0]
	if rule.Dimension != "code.security" {
		t.Errorf("rule dimension = %q, want code.security", rule.Dimension)
	}
	if !rule.BlockUpgrade {
		t.Error("rule should block upgrade")
	}
	if len(rule.Remedy) != 1 || rule.Remedy[0] != "Use parameterized queries." {
		t.Errorf("remedy = %v", rule.Remedy)
	}
}

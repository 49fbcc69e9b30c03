package assessment

import (
	"testing"
	"time"

	"github.com/codecampus/pathway/internal/pathgraph"
)

func TestArtifactHas(t *testing.T) {
	full := Artifact{
		IdeaText:     "a study planner",
		UIImages:     []string{"home.png"},
		CodeSnippets: []string{"func main() {}"},
	}
	for _, cat := range AllCategories() {
		if !full.Has(cat) {
			t.Errorf("full artifact missing %s", cat)
		}
	}

	repoOnly := Artifact{CodeRepo: "https://example.com/repo.git"}
	if !repoOnly.Has(CategoryCode) {
		t.Error("repo URL alone should count as code material")
	}
	if repoOnly.Has(CategoryIdea) || repoOnly.Has(CategoryUI) {
		t.Error("repo-only artifact should not report idea or ui material")
	}

	if !(Artifact{}).Empty() {
		t.Error("zero artifact should be empty")
	}
	if repoOnly.Empty() {
		t.Error("repo-only artifact should not be empty")
	}
}

func TestStatusTerminal(t *testing.T) {
	for status, want := range map[Status]bool{
		StatusQueued:     false,
		StatusInProgress: false,
		StatusCompleted:  true,
		StatusFailed:     true,
	} {
		if got := status.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", status, got, want)
		}
	}
}

func TestCategoryPriorityOrdering(t *testing.T) {
	if !(CategoryCode.Priority() < CategoryUI.Priority() && CategoryUI.Priority() < CategoryIdea.Priority()) {
		t.Errorf("priority order code=%d ui=%d idea=%d, want code < ui < idea",
			CategoryCode.Priority(), CategoryUI.Priority(), CategoryIdea.Priority())
	}
	if !(SeverityCritical.Rank() < SeverityMajor.Rank() && SeverityMajor.Rank() < SeverityMinor.Rank()) {
		t.Error("severity rank must order critical < major < minor")
	}
}

func TestIssueDimension(t *testing.T) {
	i := Issue{Category: CategoryCode, Criterion: "security"}
	if got := i.Dimension(); got != "code.security" {
		t.Errorf("Dimension() = %s, want code.security", got)
	}
}

func TestRunCloneIsDeep(t *testing.T) {
	score := 72.5
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	run := &Run{
		ID:      "run-1",
		Student: "s-1",
		NodeID:  "api_calling",
		Channel: pathgraph.ChannelB,
		Artifact: Artifact{
			IdeaText: "planner",
			UIImages: []string{"home.png"},
		},
		Status: StatusCompleted,
		Dimensions: map[Category]*DimensionResult{
			CategoryIdea: {
				Category:  CategoryIdea,
				Score:     70,
				SubScores: map[string]float64{"innovation": 70},
				Issues:    []Issue{{Category: CategoryIdea, Criterion: "innovation", Severity: SeverityMinor}},
			},
		},
		MissingDims:     []Category{CategoryCode},
		DimensionErrors: map[Category]string{CategoryCode: "timeout"},
		OverallScore:    &score,
		Diagnosis:       []Issue{{Category: CategoryIdea, Criterion: "innovation", Severity: SeverityMinor}},
		ExitRules:       []ExitRule{{Rule: "gating", Dimension: "code.security", Remedy: []string{"review"}}},
		Decision: &Decision{
			Type:               DecisionKeep,
			RecommendedChannel: pathgraph.ChannelB,
			Warnings:           []string{"dimension unavailable: code"},
		},
		StartedAt: &started,
	}

	clone := run.Clone()

	clone.Artifact.UIImages[0] = "changed.png"
	clone.Dimensions[CategoryIdea].SubScores["innovation"] = 0
	clone.Dimensions[CategoryIdea].Issues[0].Severity = SeverityCritical
	clone.DimensionErrors[CategoryCode] = "changed"
	*clone.OverallScore = 0
	clone.ExitRules[0].Remedy[0] = "changed"
	clone.Decision.Warnings[0] = "changed"
	*clone.StartedAt = clone.StartedAt.Add(time.Hour)

	if run.Artifact.UIImages[0] != "home.png" {
		t.Error("clone shares artifact slices")
	}
	if run.Dimensions[CategoryIdea].SubScores["innovation"] != 70 {
		t.Error("clone shares sub-score maps")
	}
	if run.Dimensions[CategoryIdea].Issues[0].Severity != SeverityMinor {
		t.Error("clone shares dimension issue slices")
	}
	if run.DimensionErrors[CategoryCode] != "timeout" {
		t.Error("clone shares dimension error map")
	}
	if *run.OverallScore != 72.5 {
		t.Error("clone shares the overall score pointer")
	}
	if run.ExitRules[0].Remedy[0] != "review" {
		t.Error("clone shares exit-rule remedy slices")
	}
	if run.Decision.Warnings[0] != "dimension unavailable: code" {
		t.Error("clone shares the decision")
	}
	if !run.StartedAt.Equal(started) {
		t.Error("clone shares the started-at pointer")
	}

	if (*Run)(nil).Clone() != nil {
		t.Error("nil run must clone to nil")
	}
}

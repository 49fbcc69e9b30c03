package decision

import (
	"context"
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/pathgraph"
	"github.com/codecampus/pathway/internal/store"
)

func newEngine(t *testing.T) (*Engine, *store.MemoryProgressRepo) {
	t.Helper()
	repo := store.NewMemoryProgressRepo()
	return New(pathgraph.Default(), repo, DefaultConfig(), zap.NewNop().Sugar()), repo
}

func seedProgress(t *testing.T, repo *store.MemoryProgressRepo, p *store.StudentProgress) {
	t.Helper()
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
}

func completedRun(student, node string, channel pathgraph.Channel, level assessment.Level) *assessment.Run {
	score := 75.0
	return &assessment.Run{
		ID: "run-1", Student: student, NodeID: node, Channel: channel,
		Status: assessment.StatusCompleted, Level: level, OverallScore: &score,
	}
}

func TestGatingOverridesExcellentScore(t *testing.T) {
	eng, repo := newEngine(t)
	seedProgress(t, repo, &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "api_calling", CurrentChannel: pathgraph.ChannelB,
	})

	run := completedRun("s1", "api_calling", pathgraph.ChannelB, assessment.LevelExcellent)
	score := 95.0
	run.OverallScore = &score
	run.ExitRules = []assessment.ExitRule{
		{Rule: "gating", Dimension: "code.security", BlockUpgrade: true, Remedy: []string{"Use parameterized queries."}},
	}

	d, err := eng.Decide(context.Background(), run)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.Type != assessment.DecisionDowngradeWithScaffold {
		t.Errorf("decision = %q, want downgrade_with_scaffold (rule 1 overrides rule 2)", d.Type)
	}
	if d.RecommendedChannel != pathgraph.ChannelA {
		t.Errorf("channel = %q, want A", d.RecommendedChannel)
	}
	if len(d.ScaffoldResources) == 0 {
		t.Error("scaffold resources should not be empty")
	}
	if d.NextNodeID != "" {
		t.Errorf("next node = %q, want no advancement on gated run", d.NextNodeID)
	}
}

func TestExcellentUpgradesOneStep(t *testing.T) {
	eng, repo := newEngine(t)
	seedProgress(t, repo, &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "model_deployment", CurrentChannel: pathgraph.ChannelA,
		FrustrationLevel: 0.2,
		CompletedNodes:   []string{"api_calling"},
	})

	d, err := eng.Decide(context.Background(),
		completedRun("s1", "model_deployment", pathgraph.ChannelA, assessment.LevelExcellent))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.Type != assessment.DecisionUpgrade {
		t.Errorf("decision = %q, want upgrade", d.Type)
	}
	if d.RecommendedChannel != pathgraph.ChannelB {
		t.Errorf("channel = %q, want B (stepwise, never skipping)", d.RecommendedChannel)
	}
}

func TestExcellentWithHighFrustrationKeeps(t *testing.T) {
	eng, repo := newEngine(t)
	seedProgress(t, repo, &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "model_deployment", CurrentChannel: pathgraph.ChannelB,
		FrustrationLevel: 0.6,
		CompletedNodes:   []string{"api_calling"},
	})

	d, err := eng.Decide(context.Background(),
		completedRun("s1", "model_deployment", pathgraph.ChannelB, assessment.LevelExcellent))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.Type != assessment.DecisionKeep {
		t.Errorf("decision = %q, want keep (frustration 0.6 blocks upgrade)", d.Type)
	}
}

func TestChannelBounds(t *testing.T) {
	t.Run("upgrade capped at C", func(t *testing.T) {
		eng, repo := newEngine(t)
		seedProgress(t, repo, &store.StudentProgress{
			StudentID: "s1", CurrentNodeID: "model_deployment", CurrentChannel: pathgraph.ChannelC,
			CompletedNodes: []string{"api_calling"},
		})
		d, err := eng.Decide(context.Background(),
			completedRun("s1", "model_deployment", pathgraph.ChannelC, assessment.LevelExcellent))
		if err != nil {
			t.Fatalf("Decide: %v", err)
		}
		if d.RecommendedChannel != pathgraph.ChannelC {
			t.Errorf("channel = %q, want C (ceiling)", d.RecommendedChannel)
		}
	})

	t.Run("downgrade floored at A", func(t *testing.T) {
		eng, repo := newEngine(t)
		seedProgress(t, repo, &store.StudentProgress{
			StudentID: "s1", CurrentNodeID: "api_calling", CurrentChannel: pathgraph.ChannelA,
		})
		d, err := eng.Decide(context.Background(),
			completedRun("s1", "api_calling", pathgraph.ChannelA, assessment.LevelNeedImprovement))
		if err != nil {
			t.Fatalf("Decide: %v", err)
		}
		if d.RecommendedChannel != pathgraph.ChannelA {
			t.Errorf("channel = %q, want A (floor)", d.RecommendedChannel)
		}
	})
}

func TestRetryLimitForcesScaffold(t *testing.T) {
	eng, repo := newEngine(t)
	seedProgress(t, repo, &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "api_calling", CurrentChannel: pathgraph.ChannelB,
		RetryCount: 3,
	})

	d, err := eng.Decide(context.Background(),
		completedRun("s1", "api_calling", pathgraph.ChannelB, assessment.LevelNeedImprovement))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.Type != assessment.DecisionDowngradeWithScaffold {
		t.Errorf("decision = %q, want downgrade_with_scaffold, not plain downgrade", d.Type)
	}

	after, err := repo.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if after.RetryCount != 4 {
		t.Errorf("retry count = %d, want 4", after.RetryCount)
	}
}

func TestRetryLimitReadsStoredCount(t *testing.T) {
	eng, repo := newEngine(t)
	seedProgress(t, repo, &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "api_calling", CurrentChannel: pathgraph.ChannelB,
		RetryCount: 2,
	})

	// Stored count 2 is below max_retries 3: a plain downgrade. This
	// failure's own increment only counts from the next verdict onward.
	d, err := eng.Decide(context.Background(),
		completedRun("s1", "api_calling", pathgraph.ChannelB, assessment.LevelNeedImprovement))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.Type != assessment.DecisionDowngrade {
		t.Errorf("decision = %q, want plain downgrade at stored count 2", d.Type)
	}

	after, err := repo.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if after.RetryCount != 3 {
		t.Errorf("retry count = %d, want 3 after this failure", after.RetryCount)
	}
}

func TestNeedImprovementDowngrades(t *testing.T) {
	eng, repo := newEngine(t)
	seedProgress(t, repo, &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "api_calling", CurrentChannel: pathgraph.ChannelC,
	})

	d, err := eng.Decide(context.Background(),
		completedRun("s1", "api_calling", pathgraph.ChannelC, assessment.LevelNeedImprovement))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.Type != assessment.DecisionDowngrade {
		t.Errorf("decision = %q, want downgrade", d.Type)
	}
	if d.RecommendedChannel != pathgraph.ChannelB {
		t.Errorf("channel = %q, want B", d.RecommendedChannel)
	}
}

func TestFrustrationDynamics(t *testing.T) {
	ctx := context.Background()

	t.Run("decays on pass", func(t *testing.T) {
		eng, repo := newEngine(t)
		seedProgress(t, repo, &store.StudentProgress{
			StudentID: "s1", CurrentNodeID: "model_deployment", CurrentChannel: pathgraph.ChannelB,
			FrustrationLevel: 0.8,
			CompletedNodes:   []string{"api_calling"},
		})
		if _, err := eng.Decide(ctx, completedRun("s1", "model_deployment", pathgraph.ChannelB, assessment.LevelPass)); err != nil {
			t.Fatalf("Decide: %v", err)
		}
		after, _ := repo.Get(ctx, "s1")
		if math.Abs(after.FrustrationLevel-0.56) > 1e-9 {
			t.Errorf("frustration = %f, want 0.56 (0.8 * 0.7)", after.FrustrationLevel)
		}
	})

	t.Run("rises and clamps on fail", func(t *testing.T) {
		eng, repo := newEngine(t)
		seedProgress(t, repo, &store.StudentProgress{
			StudentID: "s1", CurrentNodeID: "api_calling", CurrentChannel: pathgraph.ChannelB,
			FrustrationLevel: 0.95,
		})
		if _, err := eng.Decide(ctx, completedRun("s1", "api_calling", pathgraph.ChannelB, assessment.LevelNeedImprovement)); err != nil {
			t.Fatalf("Decide: %v", err)
		}
		after, _ := repo.Get(ctx, "s1")
		if after.FrustrationLevel != 1.0 {
			t.Errorf("frustration = %f, want clamped to 1.0", after.FrustrationLevel)
		}
	})
}

func TestPassAdvancesSingleSuccessor(t *testing.T) {
	eng, repo := newEngine(t)
	seedProgress(t, repo, &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "model_deployment", CurrentChannel: pathgraph.ChannelB,
		CompletedNodes: []string{"api_calling"},
	})

	d, err := eng.Decide(context.Background(),
		completedRun("s1", "model_deployment", pathgraph.ChannelB, assessment.LevelPass))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.Type != assessment.DecisionKeep {
		t.Errorf("decision = %q, want keep", d.Type)
	}
	if d.NextNodeID != "rag_system" {
		t.Errorf("next node = %q, want rag_system", d.NextNodeID)
	}

	after, _ := repo.Get(context.Background(), "s1")
	if after.CurrentNodeID != "rag_system" {
		t.Errorf("current node = %q, want rag_system", after.CurrentNodeID)
	}
	if !after.Completed("model_deployment") {
		t.Error("model_deployment should be marked completed")
	}
	if after.ChannelUsed["model_deployment"] != pathgraph.ChannelB {
		t.Errorf("channel used = %q, want B", after.ChannelUsed["model_deployment"])
	}
}

func TestPassHoldsOnBranchChoice(t *testing.T) {
	eng, repo := newEngine(t)
	seedProgress(t, repo, &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "api_calling", CurrentChannel: pathgraph.ChannelB,
	})

	// api_calling unlocks both model_deployment and no_code_ai; the
	// branch is an explicit student choice, not automatic.
	d, err := eng.Decide(context.Background(),
		completedRun("s1", "api_calling", pathgraph.ChannelB, assessment.LevelPass))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.NextNodeID != "" {
		t.Errorf("next node = %q, want hold for branch choice", d.NextNodeID)
	}
	if len(d.UnlockedNodes) != 2 {
		t.Errorf("unlocked = %v, want two branches", d.UnlockedNodes)
	}
	found := false
	for _, w := range d.Warnings {
		if strings.Contains(w, "branch choice required") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want branch choice warning", d.Warnings)
	}

	after, _ := repo.Get(context.Background(), "s1")
	if after.CurrentNodeID != "api_calling" {
		t.Errorf("current node = %q, want api_calling (held)", after.CurrentNodeID)
	}
}

func TestLeafNodeWarnsIncompleteGraph(t *testing.T) {
	eng, repo := newEngine(t)
	seedProgress(t, repo, &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "backend_dev", CurrentChannel: pathgraph.ChannelB,
		CompletedNodes: []string{"api_calling", "model_deployment", "rag_system"},
	})

	d, err := eng.Decide(context.Background(),
		completedRun("s1", "backend_dev", pathgraph.ChannelB, assessment.LevelPass))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}

	found := false
	for _, w := range d.Warnings {
		if strings.Contains(w, "no mapped successor") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want incomplete-graph warning", d.Warnings)
	}

	after, _ := repo.Get(context.Background(), "s1")
	if after.CurrentNodeID != "backend_dev" {
		t.Errorf("current node = %q, want backend_dev (remains)", after.CurrentNodeID)
	}
}

// conflictRepo loses every CAS.
type conflictRepo struct {
	*store.MemoryProgressRepo
}

func (r *conflictRepo) CompareAndSwap(ctx context.Context, expected int64, p *store.StudentProgress) (bool, error) {
	return false, nil
}

func TestCASExhaustionReturnsDecisionWithWarning(t *testing.T) {
	inner := store.NewMemoryProgressRepo()
	repo := &conflictRepo{inner}
	eng := New(pathgraph.Default(), repo, DefaultConfig(), zap.NewNop().Sugar())

	if err := inner.Create(context.Background(), &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "api_calling", CurrentChannel: pathgraph.ChannelB,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	d, err := eng.Decide(context.Background(),
		completedRun("s1", "api_calling", pathgraph.ChannelB, assessment.LevelPass))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d == nil {
		t.Fatal("decision should be returned despite conflicts")
	}

	found := false
	for _, w := range d.Warnings {
		if strings.Contains(w, "conflict") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want progress conflict warning", d.Warnings)
	}
}

func TestDecideRejectsNonTerminalRun(t *testing.T) {
	eng, repo := newEngine(t)
	seedProgress(t, repo, &store.StudentProgress{
		StudentID: "s1", CurrentNodeID: "api_calling", CurrentChannel: pathgraph.ChannelB,
	})

	run := completedRun("s1", "api_calling", pathgraph.ChannelB, assessment.LevelPass)
	run.Status = assessment.StatusInProgress
	if _, err := eng.Decide(context.Background(), run); err == nil {
		t.Fatal("expected error for non-completed run")
	}
}

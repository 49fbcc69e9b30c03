package scheduler

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/decision"
	"github.com/codecampus/pathway/internal/evaluator"
	"github.com/codecampus/pathway/internal/metrics"
	"github.com/codecampus/pathway/internal/pathgraph"
	"github.com/codecampus/pathway/internal/rubric"
	"github.com/codecampus/pathway/internal/store"
)

type fixture struct {
	sched    *Scheduler
	progress *store.MemoryProgressRepo
	runs     *store.MemoryRunRepo
}

func newFixture(t *testing.T, cfg Config, evals []evaluator.Evaluator) *fixture {
	t.Helper()
	graph := pathgraph.Default()
	progress := store.NewMemoryProgressRepo()
	runs := store.NewMemoryRunRepo()
	log := zap.NewNop().Sugar()
	engine := decision.New(graph, progress, decision.DefaultConfig(), log)

	s := New(graph, rubric.DefaultSet(), evals, runs, progress, engine,
		metrics.New("pathway_test"), log, cfg)
	t.Cleanup(s.Stop)

	return &fixture{sched: s, progress: progress, runs: runs}
}

func (f *fixture) seedStudent(t *testing.T, id string) {
	t.Helper()
	err := f.progress.Create(context.Background(), &store.StudentProgress{
		StudentID: id, CurrentNodeID: "api_calling", CurrentChannel: pathgraph.ChannelB,
	})
	if err != nil {
		t.Fatalf("seed student %s: %v", id, err)
	}
}

func fullArtifact() assessment.Artifact {
	return assessment.Artifact{
		IdeaText:     "A study planner that schedules revision sessions.",
		UIImages:     []string{"home.png"},
		CodeSnippets: []string{"def plan(): ..."},
	}
}

func request(student string) SubmitRequest {
	return SubmitRequest{
		Student:  student,
		NodeID:   "api_calling",
		Channel:  pathgraph.ChannelB,
		Artifact: fullArtifact(),
	}
}

func scoringEvaluators(idea, ui, code float64) []evaluator.Evaluator {
	return []evaluator.Evaluator{
		evaluator.FixedScore(assessment.CategoryIdea, idea),
		evaluator.FixedScore(assessment.CategoryUI, ui),
		evaluator.FixedScore(assessment.CategoryCode, code),
	}
}

func waitTerminal(t *testing.T, s *Scheduler, runID string) *assessment.Run {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		run, err := s.Get(context.Background(), runID)
		if err != nil {
			t.Fatalf("Get %s: %v", runID, err)
		}
		if run.Status.Terminal() {
			return run
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("run %s did not settle", runID)
	return nil
}

func TestSubmitToCompletion(t *testing.T) {
	f := newFixture(t, DefaultConfig(), scoringEvaluators(90, 88, 92))
	f.seedStudent(t, "s1")

	runID, err := f.sched.Submit(context.Background(), request("s1"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	run := waitTerminal(t, f.sched, runID)
	if run.Status != assessment.StatusCompleted {
		t.Fatalf("status = %q (%s), want completed", run.Status, run.ErrorMessage)
	}
	if run.OverallScore == nil || math.Abs(*run.OverallScore-90.2) > 1e-9 {
		t.Errorf("overall = %v, want 90.2", run.OverallScore)
	}
	if run.Level != assessment.LevelExcellent {
		t.Errorf("level = %q, want excellent", run.Level)
	}
	if run.Decision == nil {
		t.Fatal("completed run should carry a decision")
	}
	if run.Decision.Type != assessment.DecisionUpgrade {
		t.Errorf("decision = %q, want upgrade", run.Decision.Type)
	}
	if run.StartedAt == nil || run.CompletedAt == nil {
		t.Error("timestamps not set")
	}
}

func TestDimensionTimeoutDegradesGracefully(t *testing.T) {
	evals := []evaluator.Evaluator{
		evaluator.FixedScore(assessment.CategoryIdea, 70),
		evaluator.FixedScore(assessment.CategoryUI, 75),
		&evaluator.Mock{
			Cat:    assessment.CategoryCode,
			Result: &assessment.DimensionResult{Score: 100},
			Delay:  time.Second,
		},
	}
	f := newFixture(t, Config{Workers: 10, DimensionTimeout: 30 * time.Millisecond}, evals)
	f.seedStudent(t, "s1")

	runID, err := f.sched.Submit(context.Background(), request("s1"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	run := waitTerminal(t, f.sched, runID)
	if run.Status != assessment.StatusCompleted {
		t.Fatalf("status = %q, want completed despite code timeout", run.Status)
	}
	if run.OverallScore == nil || math.Abs(*run.OverallScore-72.5) > 1e-9 {
		t.Errorf("overall = %v, want 72.5 (weights redistributed)", run.OverallScore)
	}
	if len(run.MissingDims) != 1 || run.MissingDims[0] != assessment.CategoryCode {
		t.Errorf("missing = %v, want [code]", run.MissingDims)
	}
	if run.DimensionErrors[assessment.CategoryCode] == "" {
		t.Error("code dimension error not recorded")
	}
}

func TestAllDimensionsFailedRunFails(t *testing.T) {
	evals := []evaluator.Evaluator{
		&evaluator.Mock{Cat: assessment.CategoryIdea, Err: errors.New("boom")},
		&evaluator.Mock{Cat: assessment.CategoryUI, Err: errors.New("boom")},
		&evaluator.Mock{Cat: assessment.CategoryCode, Err: errors.New("boom")},
	}
	f := newFixture(t, DefaultConfig(), evals)
	f.seedStudent(t, "s1")

	runID, err := f.sched.Submit(context.Background(), request("s1"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	run := waitTerminal(t, f.sched, runID)
	if run.Status != assessment.StatusFailed {
		t.Fatalf("status = %q, want failed when nothing settles", run.Status)
	}
	if run.ErrorMessage == "" {
		t.Error("failed run should carry error_message")
	}
}

func TestDuplicateSubmissionReturnsSameRunID(t *testing.T) {
	evals := []evaluator.Evaluator{
		&evaluator.Mock{
			Cat:    assessment.CategoryIdea,
			Result: &assessment.DimensionResult{Score: 80},
			Delay:  200 * time.Millisecond,
		},
	}
	f := newFixture(t, DefaultConfig(), evals)
	f.seedStudent(t, "s1")

	req := SubmitRequest{
		Student: "s1", NodeID: "api_calling", Channel: pathgraph.ChannelB,
		Artifact: assessment.Artifact{IdeaText: "An idea."},
	}
	first, err := f.sched.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	second, err := f.sched.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if first != second {
		t.Errorf("run IDs differ: %s vs %s, want dedup while in flight", first, second)
	}

	// After settling, a new submission creates a new run.
	waitTerminal(t, f.sched, first)
	third, err := f.sched.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if third == first {
		t.Error("settled run should not absorb new submissions")
	}
}

func TestSubmitValidation(t *testing.T) {
	f := newFixture(t, DefaultConfig(), scoringEvaluators(80, 80, 80))
	f.seedStudent(t, "s1")
	ctx := context.Background()

	cases := []struct {
		name string
		req  SubmitRequest
	}{
		{"unknown student", request("ghost")},
		{"unknown node", SubmitRequest{Student: "s1", NodeID: "nope", Channel: pathgraph.ChannelB, Artifact: fullArtifact()}},
		{"bad channel", SubmitRequest{Student: "s1", NodeID: "api_calling", Channel: "Z", Artifact: fullArtifact()}},
		{"unknown rubric", SubmitRequest{Student: "s1", NodeID: "api_calling", Channel: pathgraph.ChannelB, RubricVersion: "v9.9.9", Artifact: fullArtifact()}},
		{"empty artifact", SubmitRequest{Student: "s1", NodeID: "api_calling", Channel: pathgraph.ChannelB}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.sched.Submit(ctx, tc.req)
			var vErr *assessment.ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestCancelQueuedRun(t *testing.T) {
	// A blocked single-slot scheduler keeps later submissions queued.
	gate := make(chan struct{})
	evals := []evaluator.Evaluator{&gateEvaluator{cat: assessment.CategoryIdea, gate: gate}}
	f := newFixture(t, Config{Workers: 1, DimensionTimeout: 5 * time.Second}, evals)
	f.seedStudent(t, "s1")
	f.seedStudent(t, "s2")

	blocker, err := f.sched.Submit(context.Background(), SubmitRequest{
		Student: "s1", NodeID: "api_calling", Channel: pathgraph.ChannelB,
		Artifact: assessment.Artifact{IdeaText: "x"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	queued, err := f.sched.Submit(context.Background(), SubmitRequest{
		Student: "s2", NodeID: "api_calling", Channel: pathgraph.ChannelB,
		Artifact: assessment.Artifact{IdeaText: "x"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Give the dispatcher time to occupy the slot with the blocker.
	time.Sleep(50 * time.Millisecond)

	if err := f.sched.Cancel(context.Background(), queued); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	run, err := f.sched.Get(context.Background(), queued)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if run.Status != assessment.StatusFailed {
		t.Errorf("status = %q, want failed", run.Status)
	}
	if run.ErrorMessage != "cancelled before dispatch" {
		t.Errorf("error = %q", run.ErrorMessage)
	}

	// The in-flight blocker cannot be cancelled.
	if err := f.sched.Cancel(context.Background(), blocker); err == nil {
		t.Error("cancelling an in-flight run should fail")
	}

	close(gate)
	waitTerminal(t, f.sched, blocker)
}

// gateEvaluator blocks until its gate closes, then scores 80.
type gateEvaluator struct {
	cat   assessment.Category
	gate  chan struct{}
	order *orderRecorder
}

func (g *gateEvaluator) Category() assessment.Category { return g.cat }

func (g *gateEvaluator) Evaluate(ctx context.Context, artifact assessment.Artifact, rub rubric.Rubric) (*assessment.DimensionResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-g.gate:
	}
	if g.order != nil {
		g.order.record(artifact.IdeaText)
	}
	return &assessment.DimensionResult{Category: g.cat, Score: 80}, nil
}

type orderRecorder struct {
	mu    sync.Mutex
	order []string
}

func (o *orderRecorder) record(tag string) {
	o.mu.Lock()
	o.order = append(o.order, tag)
	o.mu.Unlock()
}

func TestPriorityOrderWithFIFOTieBreak(t *testing.T) {
	gate := make(chan struct{})
	rec := &orderRecorder{}
	evals := []evaluator.Evaluator{&gateEvaluator{cat: assessment.CategoryIdea, gate: gate, order: rec}}
	f := newFixture(t, Config{Workers: 1, DimensionTimeout: 5 * time.Second}, evals)

	submit := func(student, tag string, priority int) string {
		f.seedStudent(t, student)
		id, err := f.sched.Submit(context.Background(), SubmitRequest{
			Student: student, NodeID: "api_calling", Channel: pathgraph.ChannelB,
			Priority: priority,
			Artifact: assessment.Artifact{IdeaText: tag},
		})
		if err != nil {
			t.Fatalf("Submit %s: %v", student, err)
		}
		return id
	}

	// The blocker occupies the single slot while the rest queue up.
	blockerID := submit("s0", "blocker", 0)
	time.Sleep(50 * time.Millisecond)

	aID := submit("sa", "a", 1)
	bID := submit("sb", "b", 5)
	cID := submit("sc", "c", 1)

	close(gate)
	for _, id := range []string{blockerID, aID, bID, cID} {
		waitTerminal(t, f.sched, id)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	want := []string{"blocker", "b", "a", "c"}
	if len(rec.order) != len(want) {
		t.Fatalf("order = %v, want %v", rec.order, want)
	}
	for i := range want {
		if rec.order[i] != want[i] {
			t.Fatalf("order = %v, want %v (priority desc, FIFO within equal)", rec.order, want)
		}
	}
}

// concurrencyEvaluator tracks the high-water mark of simultaneous calls.
type concurrencyEvaluator struct {
	cat     assessment.Category
	current atomic.Int64
	peak    atomic.Int64
}

func (c *concurrencyEvaluator) Category() assessment.Category { return c.cat }

func (c *concurrencyEvaluator) Evaluate(ctx context.Context, artifact assessment.Artifact, rub rubric.Rubric) (*assessment.DimensionResult, error) {
	n := c.current.Add(1)
	for {
		p := c.peak.Load()
		if n <= p || c.peak.CompareAndSwap(p, n) {
			break
		}
	}
	defer c.current.Add(-1)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(20 * time.Millisecond):
	}
	return &assessment.DimensionResult{Category: c.cat, Score: 75}, nil
}

func TestConcurrencyCapUnder50Submissions(t *testing.T) {
	counter := &concurrencyEvaluator{cat: assessment.CategoryIdea}
	f := newFixture(t, DefaultConfig(), []evaluator.Evaluator{counter})

	ids := make([]string, 50)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		student := fmt.Sprintf("s%02d", i)
		f.seedStudent(t, student)
		wg.Add(1)
		go func(i int, student string) {
			defer wg.Done()
			id, err := f.sched.Submit(context.Background(), SubmitRequest{
				Student: student, NodeID: "api_calling", Channel: pathgraph.ChannelB,
				Artifact: assessment.Artifact{IdeaText: "x"},
			})
			if err != nil {
				t.Errorf("Submit %s: %v", student, err)
				return
			}
			ids[i] = id
		}(i, student)
	}
	wg.Wait()

	for _, id := range ids {
		if id == "" {
			continue
		}
		run := waitTerminal(t, f.sched, id)
		if run.Status != assessment.StatusCompleted {
			t.Errorf("run %s status = %q (%s)", id, run.Status, run.ErrorMessage)
		}
	}

	// One run dispatches one idea evaluation, so evaluator concurrency
	// equals run concurrency here.
	if peak := counter.peak.Load(); peak > 10 {
		t.Errorf("peak concurrency = %d, exceeds cap of 10", peak)
	}
}

func TestIdempotentReRead(t *testing.T) {
	f := newFixture(t, DefaultConfig(), scoringEvaluators(90, 88, 92))
	f.seedStudent(t, "s1")

	runID, err := f.sched.Submit(context.Background(), request("s1"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	waitTerminal(t, f.sched, runID)

	first, err := f.sched.Get(context.Background(), runID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := f.sched.Get(context.Background(), runID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if *first.OverallScore != *second.OverallScore ||
		first.Status != second.Status ||
		first.Level != second.Level ||
		!first.CompletedAt.Equal(*second.CompletedAt) {
		t.Errorf("re-reads differ: %+v vs %+v", first, second)
	}
}

func TestFirstTerminalReadCarriesDecision(t *testing.T) {
	f := newFixture(t, DefaultConfig(), scoringEvaluators(90, 88, 92))
	f.seedStudent(t, "s1")

	runID, err := f.sched.Submit(context.Background(), request("s1"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// The very first observation of a terminal status must already carry
	// the decision; a later read must be identical.
	first := waitTerminal(t, f.sched, runID)
	if first.Decision == nil {
		t.Fatal("run observed as completed without a decision")
	}

	later, err := f.sched.Get(context.Background(), runID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(first, later) {
		t.Errorf("terminal reads differ:\nfirst: %+v\nlater: %+v", first, later)
	}
}

func TestQueueOrdering(t *testing.T) {
	var q runQueue
	heap.Push(&q, &queueItem{runID: "low-1", priority: 1, seq: 1})
	heap.Push(&q, &queueItem{runID: "high", priority: 9, seq: 2})
	heap.Push(&q, &queueItem{runID: "low-2", priority: 1, seq: 3})
	heap.Push(&q, &queueItem{runID: "gone", priority: 9, seq: 4})

	// Cancelled entries are skipped transparently.
	for _, item := range q {
		if item.runID == "gone" {
			item.cancelled = true
		}
	}

	want := []string{"high", "low-1", "low-2"}
	for _, w := range want {
		item := popNext(&q)
		if item == nil || item.runID != w {
			t.Fatalf("popped %v, want %s", item, w)
		}
	}
	if item := popNext(&q); item != nil {
		t.Errorf("popped %v from drained queue", item)
	}
}

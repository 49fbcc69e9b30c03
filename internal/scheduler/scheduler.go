// Package scheduler owns the lifecycle of assessment runs: admission,
// priority dispatch under a global concurrency cap, parallel dimension
// evaluation with per-call timeouts, and finalization.
package scheduler

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/codecampus/pathway/internal/aggregate"
	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/decision"
	"github.com/codecampus/pathway/internal/evaluator"
	"github.com/codecampus/pathway/internal/metrics"
	"github.com/codecampus/pathway/internal/pathgraph"
	"github.com/codecampus/pathway/internal/rubric"
	"github.com/codecampus/pathway/internal/store"
)

// Config holds scheduler tuning.
type Config struct {
	// Workers caps simultaneous in-flight runs.
	Workers int64

	// DimensionTimeout bounds each individual evaluator call.
	DimensionTimeout time.Duration
}

// DefaultConfig returns the standard scheduler configuration.
func DefaultConfig() Config {
	return Config{
		Workers:          10,
		DimensionTimeout: 30 * time.Second,
	}
}

// SubmitRequest describes one submission to assess.
type SubmitRequest struct {
	Student       string
	NodeID        string
	Channel       pathgraph.Channel
	RubricVersion string
	Artifact      assessment.Artifact
	Priority      int
}

// Scheduler admits, dispatches, and finalizes runs.
type Scheduler struct {
	graph      *pathgraph.Graph
	rubrics    *rubric.Set
	evaluators map[assessment.Category]evaluator.Evaluator
	runs       store.RunRepo
	progress   store.ProgressRepo
	engine     *decision.Engine
	metrics    *metrics.Metrics
	log        *zap.SugaredLogger
	cfg        Config

	budget *semaphore.Weighted

	mu       sync.Mutex
	queue    runQueue
	items    map[string]*queueItem        // runID -> queued item
	live     map[string]*assessment.Run   // runID -> non-terminal run
	inFlight map[string]string            // student+node -> runID
	seq      uint64

	notify   chan struct{}
	stopOnce sync.Once
	stopCtx  context.Context
	stopFn   context.CancelFunc
	done     chan struct{}
	wg       sync.WaitGroup
}

// New creates a scheduler and starts its dispatch loop.
func New(
	graph *pathgraph.Graph,
	rubrics *rubric.Set,
	evaluators []evaluator.Evaluator,
	runs store.RunRepo,
	progress store.ProgressRepo,
	engine *decision.Engine,
	m *metrics.Metrics,
	log *zap.SugaredLogger,
	cfg Config,
) *Scheduler {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.DimensionTimeout <= 0 {
		cfg.DimensionTimeout = DefaultConfig().DimensionTimeout
	}

	byCat := make(map[assessment.Category]evaluator.Evaluator, len(evaluators))
	for _, ev := range evaluators {
		byCat[ev.Category()] = ev
	}

	stopCtx, stopFn := context.WithCancel(context.Background())
	s := &Scheduler{
		graph:      graph,
		rubrics:    rubrics,
		evaluators: byCat,
		runs:       runs,
		progress:   progress,
		engine:     engine,
		metrics:    m,
		log:        log,
		cfg:        cfg,
		budget:     semaphore.NewWeighted(cfg.Workers),
		items:      make(map[string]*queueItem),
		live:       make(map[string]*assessment.Run),
		inFlight:   make(map[string]string),
		notify:     make(chan struct{}, 1),
		stopCtx:    stopCtx,
		stopFn:     stopFn,
		done:       make(chan struct{}),
	}

	go s.dispatch()
	return s
}

// Submit validates and admits a run, returning its ID. Submitting the
// same (student, node) while a run is in flight returns the existing
// run ID instead of creating a duplicate.
func (s *Scheduler) Submit(ctx context.Context, req SubmitRequest) (string, error) {
	if err := s.validate(ctx, req); err != nil {
		return "", err
	}

	s.mu.Lock()
	key := req.Student + "\x00" + req.NodeID
	if existing, ok := s.inFlight[key]; ok {
		s.mu.Unlock()
		return existing, nil
	}

	run := &assessment.Run{
		ID:         uuid.NewString(),
		Student:    req.Student,
		NodeID:     req.NodeID,
		Channel:    req.Channel,
		Priority:   req.Priority,
		Rubric:     req.RubricVersion,
		Artifact:   req.Artifact,
		Status:     assessment.StatusQueued,
		EnqueuedAt: time.Now(),
	}

	s.seq++
	item := &queueItem{runID: run.ID, priority: req.Priority, seq: s.seq}
	heap.Push(&s.queue, item)
	s.items[run.ID] = item
	s.live[run.ID] = run
	s.inFlight[key] = run.ID
	s.mu.Unlock()

	if err := s.runs.Insert(ctx, run); err != nil {
		s.log.Errorw("persist admitted run", "run", run.ID, "error", err)
	}

	s.metrics.RunsQueued.Inc()
	s.log.Infow("run admitted",
		"run", run.ID, "student", req.Student, "node", req.NodeID,
		"priority", req.Priority)
	s.wake()
	return run.ID, nil
}

// Get returns a snapshot of a run. Terminal runs come back immutable:
// fetching a completed run twice yields identical results.
func (s *Scheduler) Get(ctx context.Context, runID string) (*assessment.Run, error) {
	s.mu.Lock()
	if run, ok := s.live[runID]; ok {
		cp := run.Clone()
		s.mu.Unlock()
		return cp, nil
	}
	s.mu.Unlock()
	return s.runs.Get(ctx, runID)
}

// Cancel aborts a run that has not yet been dispatched. In-flight and
// terminal runs cannot be cancelled.
func (s *Scheduler) Cancel(ctx context.Context, runID string) error {
	s.mu.Lock()
	item, ok := s.items[runID]
	if !ok || item.cancelled {
		s.mu.Unlock()
		return fmt.Errorf("run %q is not queued", runID)
	}
	item.cancelled = true
	delete(s.items, runID)

	run := s.live[runID]
	now := time.Now()
	run.Status = assessment.StatusFailed
	run.ErrorMessage = "cancelled before dispatch"
	run.CompletedAt = &now
	delete(s.live, runID)
	delete(s.inFlight, run.Student+"\x00"+run.NodeID)
	s.mu.Unlock()

	s.metrics.RunsQueued.Dec()
	s.metrics.RunsTotal.WithLabelValues(string(assessment.StatusFailed)).Inc()
	if err := s.runs.Finalize(ctx, run); err != nil {
		return fmt.Errorf("persist cancelled run: %w", err)
	}
	s.log.Infow("run cancelled", "run", runID)
	return nil
}

// Stop shuts down the dispatch loop and waits for in-flight runs to
// finish. Queued runs stay queued in the store.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.stopFn()
		<-s.done
		s.wg.Wait()
	})
}

func (s *Scheduler) validate(ctx context.Context, req SubmitRequest) error {
	if req.Student == "" {
		return &assessment.ValidationError{Field: "student", Reason: "must not be empty"}
	}
	if _, err := s.progress.Get(ctx, req.Student); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &assessment.ValidationError{Field: "student", Reason: fmt.Sprintf("unknown student %q", req.Student)}
		}
		return fmt.Errorf("look up student: %w", err)
	}
	if !s.graph.Has(req.NodeID) {
		return &assessment.ValidationError{Field: "node", Reason: fmt.Sprintf("unknown node %q", req.NodeID)}
	}
	if !req.Channel.Valid() {
		return &assessment.ValidationError{Field: "channel", Reason: fmt.Sprintf("unknown channel %q", req.Channel)}
	}
	if _, err := s.rubrics.Get(req.RubricVersion); err != nil {
		return &assessment.ValidationError{Field: "rubric_version", Reason: err.Error()}
	}
	if req.Artifact.Empty() {
		return &assessment.ValidationError{Field: "artifact", Reason: "submission carries no material in any dimension"}
	}
	return nil
}

func (s *Scheduler) wake() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// dispatch pops runs while both queue entries and concurrency budget are
// available. The budget slot is acquired before popping, so the queue
// order decides who gets the next free slot.
func (s *Scheduler) dispatch() {
	defer close(s.done)
	for {
		select {
		case <-s.stopCtx.Done():
			return
		case <-s.notify:
		}

		for {
			if err := s.budget.Acquire(s.stopCtx, 1); err != nil {
				return
			}

			s.mu.Lock()
			item := popNext(&s.queue)
			if item == nil {
				s.mu.Unlock()
				s.budget.Release(1)
				break
			}
			delete(s.items, item.runID)
			run := s.live[item.runID]
			now := time.Now()
			run.Status = assessment.StatusInProgress
			run.StartedAt = &now
			s.mu.Unlock()

			s.metrics.RunsQueued.Dec()
			s.metrics.RunsInFlight.Inc()

			s.wg.Add(1)
			go s.execute(run)
		}
	}
}

// execute evaluates all applicable dimensions, aggregates, decides, and
// finalizes. The budget slot is released exactly once on every exit
// path, including panics.
func (s *Scheduler) execute(run *assessment.Run) {
	defer s.wg.Done()
	defer s.budget.Release(1)
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorw("run panicked", "run", run.ID, "panic", r)
			s.finalize(run, assessment.StatusFailed, fmt.Sprintf("internal error: %v", r))
		}
	}()

	rub, err := s.rubrics.Get(run.Rubric)
	if err != nil {
		// Validated at submit; the rubric set does not shrink at runtime.
		s.finalize(run, assessment.StatusFailed, err.Error())
		return
	}

	s.evaluateDimensions(run, rub)

	result, err := aggregate.Aggregate(rub, run.Dimensions)
	if err != nil {
		s.finalize(run, assessment.StatusFailed, err.Error())
		return
	}

	s.mu.Lock()
	run.OverallScore = &result.OverallScore
	run.Level = result.Level
	run.Diagnosis = result.Diagnosis
	run.ExitRules = result.ExitRules
	run.MissingDims = result.Missing
	snapshot := run.Clone()
	s.mu.Unlock()

	// Decide against a settled view while the live run stays in_progress:
	// the run must never be observable as completed without its decision.
	now := time.Now()
	snapshot.Status = assessment.StatusCompleted
	snapshot.CompletedAt = &now

	d, err := s.engine.Decide(context.Background(), snapshot)
	if err != nil {
		s.log.Errorw("decision failed", "run", run.ID, "error", err)
	}

	s.mu.Lock()
	if d != nil {
		run.Decision = d
	}
	s.mu.Unlock()

	s.finalize(run, assessment.StatusCompleted, "")
}

// evaluateDimensions fans out one goroutine per applicable dimension and
// waits for all of them to settle. A dimension's failure or timeout never
// aborts the others.
func (s *Scheduler) evaluateDimensions(run *assessment.Run, rub rubric.Rubric) {
	type settled struct {
		cat    assessment.Category
		result *assessment.DimensionResult
		err    error
	}

	var wg sync.WaitGroup
	results := make(chan settled, len(s.evaluators))

	for _, cat := range assessment.AllCategories() {
		ev, ok := s.evaluators[cat]
		if !ok || !run.Artifact.Has(cat) {
			continue
		}
		wg.Add(1)
		go func(cat assessment.Category, ev evaluator.Evaluator) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), s.cfg.DimensionTimeout)
			defer cancel()

			result, err := ev.Evaluate(ctx, run.Artifact, rub)
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					err = &assessment.EvaluatorTimeout{Category: cat, Timeout: s.cfg.DimensionTimeout}
					s.metrics.EvaluatorCalls.WithLabelValues(string(cat), "timeout").Inc()
				} else {
					err = &assessment.EvaluatorFailure{Category: cat, Err: err}
					s.metrics.EvaluatorCalls.WithLabelValues(string(cat), "error").Inc()
				}
				results <- settled{cat: cat, err: err}
				return
			}
			s.metrics.EvaluatorCalls.WithLabelValues(string(cat), "success").Inc()
			results <- settled{cat: cat, result: result}
		}(cat, ev)
	}

	wg.Wait()
	close(results)

	s.mu.Lock()
	defer s.mu.Unlock()
	for r := range results {
		if r.err != nil {
			if run.DimensionErrors == nil {
				run.DimensionErrors = make(map[assessment.Category]string)
			}
			run.DimensionErrors[r.cat] = r.err.Error()
			s.log.Warnw("dimension did not settle cleanly",
				"run", run.ID, "category", r.cat, "error", r.err)
			continue
		}
		if run.Dimensions == nil {
			run.Dimensions = make(map[assessment.Category]*assessment.DimensionResult)
		}
		run.Dimensions[r.cat] = r.result
	}
}

// finalize publishes the run's terminal state and releases its dedup key.
func (s *Scheduler) finalize(run *assessment.Run, status assessment.Status, errMsg string) {
	s.mu.Lock()
	run.Status = status
	if errMsg != "" {
		run.ErrorMessage = errMsg
	}
	if run.CompletedAt == nil {
		now := time.Now()
		run.CompletedAt = &now
	}
	snapshot := run.Clone()
	s.mu.Unlock()

	// Persist before dropping the live entry so Get never observes a
	// stale pre-terminal state from the store.
	if err := s.runs.Finalize(context.Background(), snapshot); err != nil {
		s.log.Errorw("persist finalized run", "run", run.ID, "error", err)
	}

	s.mu.Lock()
	delete(s.live, run.ID)
	delete(s.inFlight, run.Student+"\x00"+run.NodeID)
	s.mu.Unlock()

	s.metrics.RunsInFlight.Dec()
	s.metrics.RunsTotal.WithLabelValues(string(status)).Inc()
	if snapshot.StartedAt != nil {
		s.metrics.RunDuration.Observe(snapshot.CompletedAt.Sub(*snapshot.StartedAt).Seconds())
	}

	score := 0.0
	if snapshot.OverallScore != nil {
		score = *snapshot.OverallScore
	}
	s.log.Infow("run finalized",
		"run", run.ID, "status", status, "score", score,
		"level", snapshot.Level, "missing", snapshot.MissingDims)
}

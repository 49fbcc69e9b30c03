package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/codecampus/pathway/internal/assessment"
)

// MemoryProgressRepo is an in-memory ProgressRepo for tests and
// ephemeral runs. Safe for concurrent use.
type MemoryProgressRepo struct {
	mu      sync.Mutex
	records map[string]*StudentProgress
}

// NewMemoryProgressRepo creates an empty in-memory progress repo.
func NewMemoryProgressRepo() *MemoryProgressRepo {
	return &MemoryProgressRepo{records: make(map[string]*StudentProgress)}
}

func (r *MemoryProgressRepo) Get(ctx context.Context, studentID string) (*StudentProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[studentID]
	if !ok {
		return nil, fmt.Errorf("progress for student %q: %w", studentID, ErrNotFound)
	}
	return rec.Clone(), nil
}

func (r *MemoryProgressRepo) Create(ctx context.Context, p *StudentProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[p.StudentID]; exists {
		return fmt.Errorf("progress for student %q already exists", p.StudentID)
	}
	rec := p.Clone()
	rec.Version = 1
	rec.UpdatedAt = time.Now()
	r.records[p.StudentID] = rec
	return nil
}

func (r *MemoryProgressRepo) CompareAndSwap(ctx context.Context, expected int64, p *StudentProgress) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[p.StudentID]
	if !ok {
		return false, fmt.Errorf("progress for student %q: %w", p.StudentID, ErrNotFound)
	}
	if rec.Version != expected {
		return false, nil
	}
	next := p.Clone()
	next.Version = expected + 1
	next.UpdatedAt = time.Now()
	r.records[p.StudentID] = next
	return true, nil
}

// MemoryRunRepo is an in-memory RunRepo for tests and ephemeral runs.
// Safe for concurrent use.
type MemoryRunRepo struct {
	mu   sync.Mutex
	runs map[string]*assessment.Run
}

// NewMemoryRunRepo creates an empty in-memory run repo.
func NewMemoryRunRepo() *MemoryRunRepo {
	return &MemoryRunRepo{runs: make(map[string]*assessment.Run)}
}

func (r *MemoryRunRepo) Insert(ctx context.Context, run *assessment.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.runs[run.ID]; exists {
		return fmt.Errorf("run %q already exists", run.ID)
	}
	r.runs[run.ID] = run.Clone()
	return nil
}

func (r *MemoryRunRepo) Finalize(ctx context.Context, run *assessment.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.runs[run.ID]; !ok {
		return fmt.Errorf("run %q: %w", run.ID, ErrNotFound)
	}
	r.runs[run.ID] = run.Clone()
	return nil
}

func (r *MemoryRunRepo) Get(ctx context.Context, runID string) (*assessment.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run %q: %w", runID, ErrNotFound)
	}
	return run.Clone(), nil
}

func (r *MemoryRunRepo) ListByStudent(ctx context.Context, studentID string, limit int) ([]*assessment.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var runs []*assessment.Run
	for _, run := range r.runs {
		if run.Student == studentID {
			runs = append(runs, run.Clone())
		}
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].EnqueuedAt.After(runs[j].EnqueuedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

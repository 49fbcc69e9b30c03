package store

import (
	"context"
	"errors"
	"time"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/pathgraph"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// StudentProgress is the durable per-student learning-path record.
// Exactly one live record per student; mutated only through
// CompareAndSwap after a run completes, never deleted.
type StudentProgress struct {
	StudentID        string
	CurrentNodeID    string
	CurrentChannel   pathgraph.Channel
	FrustrationLevel float64
	RetryCount       int
	CompletedNodes   []string
	ChannelUsed      map[string]pathgraph.Channel

	// Version is the optimistic-concurrency token. Every successful
	// CompareAndSwap increments it by one.
	Version   int64
	UpdatedAt time.Time
}

// Completed reports whether the student has completed the given node.
func (p *StudentProgress) Completed(nodeID string) bool {
	for _, id := range p.CompletedNodes {
		if id == nodeID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the progress record.
func (p *StudentProgress) Clone() *StudentProgress {
	if p == nil {
		return nil
	}
	out := *p
	out.CompletedNodes = append([]string(nil), p.CompletedNodes...)
	if p.ChannelUsed != nil {
		out.ChannelUsed = make(map[string]pathgraph.Channel, len(p.ChannelUsed))
		for k, v := range p.ChannelUsed {
			out.ChannelUsed[k] = v
		}
	}
	return &out
}

// ProgressRepo manages student progress records with optimistic
// concurrency.
type ProgressRepo interface {
	// Get returns the progress record for a student, or ErrNotFound.
	Get(ctx context.Context, studentID string) (*StudentProgress, error)

	// Create inserts a new progress record at version 1. Fails if a
	// record for the student already exists.
	Create(ctx context.Context, p *StudentProgress) error

	// CompareAndSwap replaces the student's record only if its stored
	// version equals expected. Returns false (and no error) when the
	// version moved under us.
	CompareAndSwap(ctx context.Context, expected int64, p *StudentProgress) (bool, error)
}

// RunRepo persists assessment runs.
type RunRepo interface {
	// Insert stores a newly admitted run.
	Insert(ctx context.Context, run *assessment.Run) error

	// Finalize overwrites a run with its terminal state.
	Finalize(ctx context.Context, run *assessment.Run) error

	// Get returns a run by ID, or ErrNotFound.
	Get(ctx context.Context, runID string) (*assessment.Run, error)

	// ListByStudent returns a student's runs, most recent first.
	ListByStudent(ctx context.Context, studentID string, limit int) ([]*assessment.Run, error)
}

package assessment

import (
	"fmt"
	"time"
)

// ValidationError indicates a submission was malformed or referenced an
// unknown student, node, or channel. Rejected before admission, not retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// EvaluatorTimeout indicates a single dimension evaluation exceeded its
// deadline. Recovered via graceful degradation, never retried within a run.
type EvaluatorTimeout struct {
	Category Category
	Timeout  time.Duration
}

func (e *EvaluatorTimeout) Error() string {
	return fmt.Sprintf("%s evaluation timed out after %s", e.Category, e.Timeout)
}

// EvaluatorFailure indicates a single dimension evaluation failed.
// Recovered via graceful degradation, never retried within a run.
type EvaluatorFailure struct {
	Category Category
	Err      error
}

func (e *EvaluatorFailure) Error() string {
	return fmt.Sprintf("%s evaluation failed: %v", e.Category, e.Err)
}

func (e *EvaluatorFailure) Unwrap() error { return e.Err }

// AggregationError indicates the run could not be scored at all, e.g.
// malformed rubric weights or no settled dimension. Fatal to the run.
type AggregationError struct {
	Reason string
	Err    error
}

func (e *AggregationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aggregation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("aggregation failed: %s", e.Reason)
}

func (e *AggregationError) Unwrap() error { return e.Err }

// ProgressConflict indicates the optimistic-concurrency update of a
// student's progress record kept colliding. Retried internally with
// bounded attempts before surfacing as a warning.
type ProgressConflict struct {
	StudentID string
	Attempts  int
}

func (e *ProgressConflict) Error() string {
	return fmt.Sprintf("progress update for student %q conflicted after %d attempts", e.StudentID, e.Attempts)
}

// IncompleteGraphWarning indicates the node graph has no mapped successor
// for a node a student just passed. Non-fatal: the decision is still
// returned and the student remains on the current node.
type IncompleteGraphWarning struct {
	NodeID string
}

func (e *IncompleteGraphWarning) Error() string {
	return fmt.Sprintf("node %q has no mapped successor", e.NodeID)
}

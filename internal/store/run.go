package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codecampus/pathway/ent"
	"github.com/codecampus/pathway/ent/assessmentrun"
	"github.com/codecampus/pathway/internal/assessment"
)

// runRepo implements RunRepo using the ent client.
type runRepo struct {
	client *ent.Client
}

func (r *runRepo) Insert(ctx context.Context, run *assessment.Run) error {
	payload, err := runToMap(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	_, err = r.client.AssessmentRun.Create().
		SetRunID(run.ID).
		SetStudentID(run.Student).
		SetNodeID(run.NodeID).
		SetStatus(string(run.Status)).
		SetPayload(payload).
		SetEnqueuedAt(run.EnqueuedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *runRepo) Finalize(ctx context.Context, run *assessment.Run) error {
	payload, err := runToMap(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	update := r.client.AssessmentRun.Update().
		Where(assessmentrun.RunID(run.ID)).
		SetStatus(string(run.Status)).
		SetPayload(payload)
	if run.CompletedAt != nil {
		update = update.SetCompletedAt(*run.CompletedAt)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("finalize run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %q: %w", run.ID, ErrNotFound)
	}
	return nil
}

func (r *runRepo) Get(ctx context.Context, runID string) (*assessment.Run, error) {
	rec, err := r.client.AssessmentRun.Query().
		Where(assessmentrun.RunID(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("run %q: %w", runID, ErrNotFound)
		}
		return nil, fmt.Errorf("query run: %w", err)
	}
	return mapToRun(rec.Payload)
}

func (r *runRepo) ListByStudent(ctx context.Context, studentID string, limit int) ([]*assessment.Run, error) {
	q := r.client.AssessmentRun.Query().
		Where(assessmentrun.StudentID(studentID)).
		Order(ent.Desc(assessmentrun.FieldEnqueuedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	recs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	runs := make([]*assessment.Run, 0, len(recs))
	for _, rec := range recs {
		run, err := mapToRun(rec.Payload)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// runToMap converts a run to map[string]any for ent JSON storage.
func runToMap(run *assessment.Run) (map[string]any, error) {
	b, err := json.Marshal(run)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToRun converts stored JSON back to a run.
func mapToRun(payload map[string]any) (*assessment.Run, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	var run assessment.Run
	if err := json.Unmarshal(b, &run); err != nil {
		return nil, fmt.Errorf("unmarshal run: %w", err)
	}
	return &run, nil
}

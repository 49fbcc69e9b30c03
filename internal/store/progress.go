package store

import (
	"context"
	"fmt"
	"time"

	"github.com/codecampus/pathway/ent"
	"github.com/codecampus/pathway/ent/studentprogress"
	"github.com/codecampus/pathway/internal/pathgraph"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, studentID string) (*StudentProgress, error) {
	rec, err := r.client.StudentProgress.Query().
		Where(studentprogress.StudentID(studentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("progress for student %q: %w", studentID, ErrNotFound)
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToProgress(rec), nil
}

func (r *progressRepo) Create(ctx context.Context, p *StudentProgress) error {
	_, err := r.client.StudentProgress.Create().
		SetStudentID(p.StudentID).
		SetCurrentNodeID(p.CurrentNodeID).
		SetCurrentChannel(string(p.CurrentChannel)).
		SetFrustrationLevel(p.FrustrationLevel).
		SetRetryCount(p.RetryCount).
		SetCompletedNodes(p.CompletedNodes).
		SetChannelUsed(channelUsedToMap(p.ChannelUsed)).
		SetVersion(1).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("progress for student %q already exists", p.StudentID)
		}
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

func (r *progressRepo) CompareAndSwap(ctx context.Context, expected int64, p *StudentProgress) (bool, error) {
	// Conditional update on the version column; affected-row count
	// tells us whether we won the race.
	n, err := r.client.StudentProgress.Update().
		Where(
			studentprogress.StudentID(p.StudentID),
			studentprogress.Version(expected),
		).
		SetCurrentNodeID(p.CurrentNodeID).
		SetCurrentChannel(string(p.CurrentChannel)).
		SetFrustrationLevel(p.FrustrationLevel).
		SetRetryCount(p.RetryCount).
		SetCompletedNodes(p.CompletedNodes).
		SetChannelUsed(channelUsedToMap(p.ChannelUsed)).
		SetVersion(expected + 1).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("compare-and-swap progress: %w", err)
	}
	return n == 1, nil
}

func entProgressToProgress(rec *ent.StudentProgress) *StudentProgress {
	channelUsed := make(map[string]pathgraph.Channel, len(rec.ChannelUsed))
	for node, ch := range rec.ChannelUsed {
		channelUsed[node] = pathgraph.Channel(ch)
	}
	return &StudentProgress{
		StudentID:        rec.StudentID,
		CurrentNodeID:    rec.CurrentNodeID,
		CurrentChannel:   pathgraph.Channel(rec.CurrentChannel),
		FrustrationLevel: rec.FrustrationLevel,
		RetryCount:       rec.RetryCount,
		CompletedNodes:   rec.CompletedNodes,
		ChannelUsed:      channelUsed,
		Version:          rec.Version,
		UpdatedAt:        rec.UpdatedAt,
	}
}

func channelUsedToMap(in map[string]pathgraph.Channel) map[string]string {
	out := make(map[string]string, len(in))
	for node, ch := range in {
		out[node] = string(ch)
	}
	return out
}

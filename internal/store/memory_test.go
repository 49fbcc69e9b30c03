package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/pathgraph"
)

func TestMemoryProgressCAS(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProgressRepo()

	p := &StudentProgress{
		StudentID:      "s1",
		CurrentNodeID:  "api_calling",
		CurrentChannel: pathgraph.ChannelB,
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Version != 1 {
		t.Errorf("version = %d, want 1", got.Version)
	}

	got.RetryCount = 1
	ok, err := repo.CompareAndSwap(ctx, got.Version, got)
	if err != nil {
		t.Fatalf("CompareAndSwap: %v", err)
	}
	if !ok {
		t.Fatal("CAS with current version should succeed")
	}

	// Stale version loses.
	got.RetryCount = 99
	ok, err = repo.CompareAndSwap(ctx, 1, got)
	if err != nil {
		t.Fatalf("CompareAndSwap: %v", err)
	}
	if ok {
		t.Error("CAS with stale version should fail")
	}

	after, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if after.Version != 2 {
		t.Errorf("version = %d, want 2", after.Version)
	}
	if after.RetryCount != 1 {
		t.Errorf("retry count = %d, want 1 (stale write rejected)", after.RetryCount)
	}
}

func TestMemoryProgressCASConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProgressRepo()

	if err := repo.Create(ctx, &StudentProgress{
		StudentID:      "s1",
		CurrentNodeID:  "api_calling",
		CurrentChannel: pathgraph.ChannelB,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// N racers all read version 1 and try to swap; exactly one wins.
	const racers = 20
	var wg sync.WaitGroup
	wins := make(chan struct{}, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := repo.Get(ctx, "s1")
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			ok, err := repo.CompareAndSwap(ctx, 1, p)
			if err != nil {
				t.Errorf("CompareAndSwap: %v", err)
				return
			}
			if ok {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Errorf("CAS winners = %d, want exactly 1", count)
	}
}

func TestMemoryProgressNotFound(t *testing.T) {
	repo := NewMemoryProgressRepo()
	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryRunRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRunRepo()

	run := &assessment.Run{
		ID:         "r1",
		Student:    "s1",
		NodeID:     "api_calling",
		Channel:    pathgraph.ChannelB,
		Status:     assessment.StatusQueued,
		EnqueuedAt: time.Now(),
	}
	if err := repo.Insert(ctx, run); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// Mutating the original must not leak into the stored copy.
	run.Status = assessment.StatusInProgress
	got, err := repo.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != assessment.StatusQueued {
		t.Errorf("status = %q, want queued (stored copy isolated)", got.Status)
	}

	score := 90.2
	run.Status = assessment.StatusCompleted
	run.OverallScore = &score
	if err := repo.Finalize(ctx, run); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	final, err := repo.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if final.Status != assessment.StatusCompleted || final.OverallScore == nil {
		t.Errorf("finalized run not stored: %+v", final)
	}
}

func TestMemoryRunRepoListByStudent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRunRepo()

	base := time.Now()
	for i, id := range []string{"r1", "r2", "r3"} {
		err := repo.Insert(ctx, &assessment.Run{
			ID: id, Student: "s1", NodeID: "api_calling",
			EnqueuedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := repo.Insert(ctx, &assessment.Run{ID: "other", Student: "s2", NodeID: "api_calling", EnqueuedAt: base}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	runs, err := repo.ListByStudent(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("ListByStudent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	if runs[0].ID != "r3" || runs[1].ID != "r2" {
		t.Errorf("order = [%s %s], want [r3 r2]", runs[0].ID, runs[1].ID)
	}
}

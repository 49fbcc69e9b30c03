// Package decision turns a completed assessment run plus the student's
// progress record into a progression decision, and applies the resulting
// progress mutation with optimistic concurrency.
package decision

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/pathgraph"
	"github.com/codecampus/pathway/internal/store"
)

// Config holds the decision thresholds and frustration dynamics.
type Config struct {
	// MaxRetries is the retry count at which repeated need_improvement
	// verdicts force scaffolding instead of a plain downgrade.
	MaxRetries int

	// FrustrationCeiling blocks upgrades when the student's frustration
	// level is at or above it.
	FrustrationCeiling float64

	// PassDecay multiplies frustration on a pass/excellent verdict.
	PassDecay float64

	// FailIncrement is added to frustration on a need_improvement verdict.
	FailIncrement float64

	// CASAttempts bounds the compare-and-swap retry loop.
	CASAttempts int
}

// DefaultConfig returns the standard decision configuration.
func DefaultConfig() Config {
	return Config{
		MaxRetries:         3,
		FrustrationCeiling: 0.5,
		PassDecay:          0.7,
		FailIncrement:      0.2,
		CASAttempts:        3,
	}
}

// Engine evaluates the decision rules and mutates student progress.
type Engine struct {
	graph    *pathgraph.Graph
	progress store.ProgressRepo
	cfg      Config
	log      *zap.SugaredLogger

	conflictHook func()
}

// OnConflict registers a hook invoked when a progress mutation is
// abandoned after exhausting its CAS attempts.
func (e *Engine) OnConflict(fn func()) {
	e.conflictHook = fn
}

// New creates a decision engine over the given path graph and progress
// repo.
func New(graph *pathgraph.Graph, progress store.ProgressRepo, cfg Config, log *zap.SugaredLogger) *Engine {
	return &Engine{graph: graph, progress: progress, cfg: cfg, log: log}
}

// Decide computes the progression decision for a completed run and
// applies the progress mutation via compare-and-swap. When the swap loses
// the race CASAttempts times, the decision is still returned, carrying a
// conflict warning, and the progress record is left untouched.
func (e *Engine) Decide(ctx context.Context, run *assessment.Run) (*assessment.Decision, error) {
	if run.Status != assessment.StatusCompleted {
		return nil, fmt.Errorf("decide on run %s: status is %q, want completed", run.ID, run.Status)
	}

	var decision *assessment.Decision
	for attempt := 0; attempt < e.cfg.CASAttempts; attempt++ {
		progress, err := e.progress.Get(ctx, run.Student)
		if err != nil {
			return nil, fmt.Errorf("load progress: %w", err)
		}

		var next *store.StudentProgress
		decision, next = e.evaluate(run, progress)

		ok, err := e.progress.CompareAndSwap(ctx, progress.Version, next)
		if err != nil {
			return nil, fmt.Errorf("apply progress mutation: %w", err)
		}
		if ok {
			return decision, nil
		}

		e.log.Debugw("progress CAS lost, retrying",
			"student", run.Student, "attempt", attempt+1)
	}

	conflict := &assessment.ProgressConflict{
		StudentID: run.Student,
		Attempts:  e.cfg.CASAttempts,
	}
	e.log.Warnw("progress mutation abandoned after conflicts",
		"student", run.Student, "attempts", e.cfg.CASAttempts)
	if e.conflictHook != nil {
		e.conflictHook()
	}
	decision.Warnings = append(decision.Warnings, conflict.Error())
	return decision, nil
}

// evaluate runs the ordered rule chain and builds the mutated progress
// record. Pure function of (run, progress); CAS retries re-invoke it on
// a fresh read.
func (e *Engine) evaluate(run *assessment.Run, progress *store.StudentProgress) (*assessment.Decision, *store.StudentProgress) {
	next := progress.Clone()
	gating := blockingRules(run.ExitRules)
	passed := run.Level == assessment.LevelExcellent || run.Level == assessment.LevelPass

	// Frustration dynamics and retry counting are keyed on the verdict
	// alone, regardless of which rule fires below.
	if passed {
		next.FrustrationLevel = clamp01(next.FrustrationLevel * e.cfg.PassDecay)
	} else {
		next.FrustrationLevel = clamp01(next.FrustrationLevel + e.cfg.FailIncrement)
		next.RetryCount++
	}

	var d *assessment.Decision
	switch {
	case len(gating) > 0:
		// Safety overrides score: gating issues force scaffolding even
		// on a passing number.
		d = e.scaffoldDecision(run, progress, gating)

	case run.Level == assessment.LevelExcellent && progress.FrustrationLevel < e.cfg.FrustrationCeiling:
		d = &assessment.Decision{
			Type:               assessment.DecisionUpgrade,
			RecommendedChannel: progress.CurrentChannel.Up(),
			Reasoning: fmt.Sprintf(
				"excellent verdict with frustration %.2f below %.2f: upgrade %s",
				progress.FrustrationLevel, e.cfg.FrustrationCeiling,
				channelStep(progress.CurrentChannel, progress.CurrentChannel.Up())),
		}

	case run.Level == assessment.LevelNeedImprovement && progress.RetryCount >= e.cfg.MaxRetries:
		// Rules read the stored state; this run's own failure counts from
		// the next verdict onward (the increment above lands on next).
		d = &assessment.Decision{
			Type:               assessment.DecisionDowngradeWithScaffold,
			RecommendedChannel: progress.CurrentChannel.Down(),
			ScaffoldResources:  e.scaffoldResources(run, nil),
			Reasoning: fmt.Sprintf(
				"need_improvement with %d retries (max %d): scaffolded downgrade %s",
				progress.RetryCount, e.cfg.MaxRetries,
				channelStep(progress.CurrentChannel, progress.CurrentChannel.Down())),
		}

	case run.Level == assessment.LevelNeedImprovement:
		d = &assessment.Decision{
			Type:               assessment.DecisionDowngrade,
			RecommendedChannel: progress.CurrentChannel.Down(),
			Reasoning: fmt.Sprintf(
				"need_improvement verdict: downgrade %s",
				channelStep(progress.CurrentChannel, progress.CurrentChannel.Down())),
		}

	default:
		d = &assessment.Decision{
			Type:               assessment.DecisionKeep,
			RecommendedChannel: progress.CurrentChannel,
			Reasoning:          fmt.Sprintf("%s verdict: keep channel %s", run.Level, progress.CurrentChannel),
		}
	}

	next.CurrentChannel = d.RecommendedChannel

	// Node completion and advancement only on a clean pass.
	if passed && len(gating) == 0 {
		e.advance(run, next, d)
	}

	return d, next
}

// scaffoldDecision builds the rule-1 outcome from the gating exit rules.
func (e *Engine) scaffoldDecision(run *assessment.Run, progress *store.StudentProgress, gating []assessment.ExitRule) *assessment.Decision {
	dims := make([]string, len(gating))
	for i, rule := range gating {
		dims[i] = rule.Dimension
	}
	return &assessment.Decision{
		Type:               assessment.DecisionDowngradeWithScaffold,
		RecommendedChannel: progress.CurrentChannel.Down(),
		ScaffoldResources:  e.scaffoldResources(run, gating),
		Reasoning: fmt.Sprintf(
			"gating issue on %s blocks progression regardless of score: scaffolded downgrade %s",
			strings.Join(dims, ", "),
			channelStep(progress.CurrentChannel, progress.CurrentChannel.Down())),
	}
}

// scaffoldResources merges the node's remedy resources with the fixes
// attached to gating rules.
func (e *Engine) scaffoldResources(run *assessment.Run, gating []assessment.ExitRule) []string {
	var out []string
	if node, err := e.graph.Node(run.NodeID); err == nil {
		out = append(out, node.RemedyResources...)
	}
	for _, rule := range gating {
		out = append(out, rule.Remedy...)
	}
	return out
}

// advance marks the node completed and moves the student forward when
// the graph offers exactly one unlocked successor. Multiple unlocked
// successors hold the student for an explicit branch choice; a node with
// no successors at all is reported as an incomplete-graph warning.
func (e *Engine) advance(run *assessment.Run, next *store.StudentProgress, d *assessment.Decision) {
	if !next.Completed(run.NodeID) {
		next.CompletedNodes = append(next.CompletedNodes, run.NodeID)
		sort.Strings(next.CompletedNodes)
	}
	if next.ChannelUsed == nil {
		next.ChannelUsed = make(map[string]pathgraph.Channel)
	}
	next.ChannelUsed[run.NodeID] = run.Channel

	successors := e.graph.Successors(run.NodeID)
	if len(successors) == 0 {
		warn := &assessment.IncompleteGraphWarning{NodeID: run.NodeID}
		e.log.Warnw("no successor mapped for completed node", "node", run.NodeID)
		d.Warnings = append(d.Warnings, warn.Error())
		return
	}

	completed := make(map[string]bool, len(next.CompletedNodes))
	for _, id := range next.CompletedNodes {
		completed[id] = true
	}

	var unlocked []string
	for _, succID := range successors {
		if e.graph.IsUnlocked(succID, completed) && !completed[succID] {
			unlocked = append(unlocked, succID)
		}
	}
	d.UnlockedNodes = unlocked

	switch len(unlocked) {
	case 0:
		// Successors exist but remain locked behind other prerequisites.
	case 1:
		d.NextNodeID = unlocked[0]
		next.CurrentNodeID = unlocked[0]
	default:
		d.Warnings = append(d.Warnings, fmt.Sprintf(
			"branch choice required between: %s", strings.Join(unlocked, ", ")))
	}
}

// blockingRules filters exit rules down to those that block upgrade.
func blockingRules(rules []assessment.ExitRule) []assessment.ExitRule {
	var out []assessment.ExitRule
	for _, r := range rules {
		if r.BlockUpgrade {
			out = append(out, r)
		}
	}
	return out
}

func channelStep(from, to pathgraph.Channel) string {
	if from == to {
		return fmt.Sprintf("(already at channel %s)", from)
	}
	return fmt.Sprintf("%s -> %s", from, to)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

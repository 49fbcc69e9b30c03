package assessment

import (
	"time"

	"github.com/codecampus/pathway/internal/pathgraph"
)

// Category identifies one of the three evaluation dimensions.
type Category string

const (
	CategoryIdea Category = "idea"
	CategoryUI   Category = "ui"
	CategoryCode Category = "code"
)

// AllCategories returns the dimensions in submission order.
func AllCategories() []Category {
	return []Category{CategoryIdea, CategoryUI, CategoryCode}
}

// Priority returns the diagnosis ordering priority for a category.
// Code issues outrank UI issues, which outrank idea issues.
func (c Category) Priority() int {
	switch c {
	case CategoryCode:
		return 0
	case CategoryUI:
		return 1
	case CategoryIdea:
		return 2
	default:
		return 3
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryIdea, CategoryUI, CategoryCode:
		return true
	}
	return false
}

// Severity classifies how serious a diagnosis issue is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// Rank returns the sort rank for a severity; lower sorts first.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityMajor:
		return 1
	case SeverityMinor:
		return 2
	default:
		return 3
	}
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor:
		return true
	}
	return false
}

// Issue is a single diagnosis item produced by a dimension evaluator.
type Issue struct {
	Category  Category `json:"category"`
	Criterion string   `json:"criterion"`
	Severity  Severity `json:"severity"`
	Summary   string   `json:"summary"`
	Fix       string   `json:"fix,omitempty"`
}

// Dimension returns the dotted dimension key, e.g. "code.security".
func (i Issue) Dimension() string {
	return string(i.Category) + "." + i.Criterion
}

// DimensionResult is the outcome of evaluating one artifact dimension.
// Produced once per dimension per run, owned by the run that requested it.
type DimensionResult struct {
	Category  Category           `json:"category"`
	Score     float64            `json:"score"`
	SubScores map[string]float64 `json:"sub_scores"`
	Issues    []Issue            `json:"issues"`
	Model     string             `json:"model,omitempty"`
	ElapsedMs int64              `json:"elapsed_ms,omitempty"`
}

// Artifact is the multi-part student submission under assessment.
type Artifact struct {
	IdeaText     string   `json:"idea_text"`
	UIImages     []string `json:"ui_images,omitempty"`
	CodeRepo     string   `json:"code_repo,omitempty"`
	CodeSnippets []string `json:"code_snippets,omitempty"`
}

// Has reports whether the artifact carries material for a dimension.
// Dimensions with no material are skipped and their weight redistributed.
func (a Artifact) Has(cat Category) bool {
	switch cat {
	case CategoryIdea:
		return a.IdeaText != ""
	case CategoryUI:
		return len(a.UIImages) > 0
	case CategoryCode:
		return a.CodeRepo != "" || len(a.CodeSnippets) > 0
	}
	return false
}

// Empty reports whether the artifact carries no material at all.
func (a Artifact) Empty() bool {
	return !a.Has(CategoryIdea) && !a.Has(CategoryUI) && !a.Has(CategoryCode)
}

// Status is the lifecycle state of an assessment run.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status is a terminal state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Level is the verdict classification of a completed run.
type Level string

const (
	LevelExcellent       Level = "excellent"
	LevelPass            Level = "pass"
	LevelNeedImprovement Level = "need_improvement"
)

// ExitRule is a derived directive controlling node/channel transition
// beyond the raw score.
type ExitRule struct {
	Rule         string   `json:"rule"`
	Dimension    string   `json:"dimension"`
	BlockUpgrade bool     `json:"block_upgrade"`
	Remedy       []string `json:"remedy,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

// DecisionType is the progression decision for a student after a run.
type DecisionType string

const (
	DecisionKeep                  DecisionType = "keep"
	DecisionUpgrade               DecisionType = "upgrade"
	DecisionDowngrade             DecisionType = "downgrade"
	DecisionDowngradeWithScaffold DecisionType = "downgrade_with_scaffold"
)

// Decision is the progression outcome derived from a completed run plus
// the student's history. Always attached to the run that produced it.
type Decision struct {
	Type               DecisionType      `json:"decision_type"`
	RecommendedChannel pathgraph.Channel `json:"recommended_channel"`
	NextNodeID         string            `json:"next_node_id,omitempty"`
	Reasoning          string            `json:"reasoning"`
	ScaffoldResources  []string          `json:"scaffold_resources,omitempty"`
	UnlockedNodes      []string          `json:"unlocked_nodes,omitempty"`
	Warnings           []string          `json:"warnings,omitempty"`
}

// Run is one execution of the three-dimension evaluation for a single
// submission. Terminal runs are immutable; Clone is used for reads.
type Run struct {
	ID       string            `json:"run_id"`
	Student  string            `json:"student_id"`
	NodeID   string            `json:"node_id"`
	Channel  pathgraph.Channel `json:"channel"`
	Priority int               `json:"priority"`
	Rubric   string            `json:"rubric_version"`
	Artifact Artifact          `json:"artifact"`

	Status          Status                        `json:"status"`
	Dimensions      map[Category]*DimensionResult `json:"dimensions,omitempty"`
	MissingDims     []Category                    `json:"dimensions_missing,omitempty"`
	DimensionErrors map[Category]string           `json:"dimension_errors,omitempty"`
	OverallScore    *float64                      `json:"overall_score,omitempty"`
	Level           Level                         `json:"assessment_level,omitempty"`
	Diagnosis       []Issue                       `json:"diagnosis,omitempty"`
	ExitRules       []ExitRule                    `json:"exit_rules,omitempty"`
	Decision        *Decision                     `json:"decision,omitempty"`
	ErrorMessage    string                        `json:"error_message,omitempty"`

	EnqueuedAt  time.Time  `json:"enqueued_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Clone returns a deep copy of the run.
func (r *Run) Clone() *Run {
	if r == nil {
		return nil
	}
	out := *r
	out.Artifact.UIImages = cloneSlice(r.Artifact.UIImages)
	out.Artifact.CodeSnippets = cloneSlice(r.Artifact.CodeSnippets)
	if r.Dimensions != nil {
		out.Dimensions = make(map[Category]*DimensionResult, len(r.Dimensions))
		for cat, dr := range r.Dimensions {
			cp := *dr
			cp.SubScores = cloneMap(dr.SubScores)
			cp.Issues = cloneSlice(dr.Issues)
			out.Dimensions[cat] = &cp
		}
	}
	out.MissingDims = cloneSlice(r.MissingDims)
	if r.DimensionErrors != nil {
		out.DimensionErrors = make(map[Category]string, len(r.DimensionErrors))
		for cat, msg := range r.DimensionErrors {
			out.DimensionErrors[cat] = msg
		}
	}
	if r.OverallScore != nil {
		score := *r.OverallScore
		out.OverallScore = &score
	}
	out.Diagnosis = cloneSlice(r.Diagnosis)
	out.ExitRules = cloneExitRules(r.ExitRules)
	if r.Decision != nil {
		d := *r.Decision
		d.ScaffoldResources = cloneSlice(r.Decision.ScaffoldResources)
		d.UnlockedNodes = cloneSlice(r.Decision.UnlockedNodes)
		d.Warnings = cloneSlice(r.Decision.Warnings)
		out.Decision = &d
	}
	if r.StartedAt != nil {
		t := *r.StartedAt
		out.StartedAt = &t
	}
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		out.CompletedAt = &t
	}
	return &out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneMap(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneExitRules(in []ExitRule) []ExitRule {
	if in == nil {
		return nil
	}
	out := make([]ExitRule, len(in))
	for i, er := range in {
		out[i] = er
		out[i].Remedy = cloneSlice(er.Remedy)
		out[i].Requirements = cloneSlice(er.Requirements)
	}
	return out
}

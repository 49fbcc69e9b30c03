// Package evaluator scores one dimension of a student submission.
// Each Evaluator owns a single dimension (idea, ui, code) and produces
// per-criterion sub-scores plus a diagnosis of concrete issues.
package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"text/template"
	"time"

	"github.com/codecampus/pathway/internal/assessment"
	"github.com/codecampus/pathway/internal/llm"
	"github.com/codecampus/pathway/internal/rubric"
)

// Evaluator scores one dimension of an artifact against a rubric.
type Evaluator interface {
	// Category returns the dimension this evaluator covers.
	Category() assessment.Category

	// Evaluate scores the artifact's material for this dimension. The
	// rubric supplies the criteria and their weights. Implementations
	// must honor ctx cancellation.
	Evaluate(ctx context.Context, artifact assessment.Artifact, rub rubric.Rubric) (*assessment.DimensionResult, error)
}

// Config holds LLM generation parameters shared by the evaluators.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for evaluation calls.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}

// llmEvaluator is the shared LLM-backed implementation. The three
// dimensions differ only in prompt and input rendering.
type llmEvaluator struct {
	category assessment.Category
	provider llm.Provider
	cfg      Config
	system   string
	render   func(artifact assessment.Artifact) (string, error)
}

// NewIdea creates the idea-dimension evaluator.
func NewIdea(provider llm.Provider, cfg Config) Evaluator {
	return &llmEvaluator{
		category: assessment.CategoryIdea,
		provider: provider,
		cfg:      cfg,
		system:   ideaSystemPrompt,
		render:   renderIdeaInput,
	}
}

// NewUI creates the UI-dimension evaluator.
func NewUI(provider llm.Provider, cfg Config) Evaluator {
	return &llmEvaluator{
		category: assessment.CategoryUI,
		provider: provider,
		cfg:      cfg,
		system:   uiSystemPrompt,
		render:   renderUIInput,
	}
}

// NewCode creates the code-dimension evaluator.
func NewCode(provider llm.Provider, cfg Config) Evaluator {
	return &llmEvaluator{
		category: assessment.CategoryCode,
		provider: provider,
		cfg:      cfg,
		system:   codeSystemPrompt,
		render:   renderCodeInput,
	}
}

func (e *llmEvaluator) Category() assessment.Category {
	return e.category
}

// evaluationOutput is the raw LLM response.
type evaluationOutput struct {
	SubScores map[string]float64 `json:"sub_scores"`
	Issues    []issueOutput      `json:"issues"`
}

type issueOutput struct {
	Criterion string `json:"criterion"`
	Severity  string `json:"severity"`
	Summary   string `json:"summary"`
	Fix       string `json:"fix"`
}

func (e *llmEvaluator) Evaluate(ctx context.Context, artifact assessment.Artifact, rub rubric.Rubric) (*assessment.DimensionResult, error) {
	ctx = llm.WithPurpose(ctx, string(e.category)+"-evaluation")
	start := time.Now()

	criteria := rub.CriteriaFor(e.category)
	if len(criteria) == 0 {
		return nil, fmt.Errorf("rubric %s has no criteria for %s", rub.Version, e.category)
	}

	input, err := e.render(artifact)
	if err != nil {
		return nil, fmt.Errorf("render %s input: %w", e.category, err)
	}

	userMsg, err := buildUserMessage(e.category, criteria, input)
	if err != nil {
		return nil, fmt.Errorf("build %s prompt: %w", e.category, err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: e.system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      buildEvaluationSchema(e.category, criteria),
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s evaluation failed: %w", e.category, err)
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse %s evaluation response: %w", e.category, err)
	}

	result, err := buildResult(e.category, criteria, raw)
	if err != nil {
		return nil, err
	}
	result.Model = resp.Model
	result.ElapsedMs = time.Since(start).Milliseconds()
	return result, nil
}

// buildResult converts the raw LLM output into a DimensionResult,
// computing the weighted dimension score from the sub-scores.
func buildResult(cat assessment.Category, criteria map[string]float64, raw evaluationOutput) (*assessment.DimensionResult, error) {
	subScores := make(map[string]float64, len(criteria))
	score := 0.0
	for name, weight := range criteria {
		sub, ok := raw.SubScores[name]
		if !ok {
			return nil, fmt.Errorf("%s evaluation missing sub-score for criterion %q", cat, name)
		}
		sub = clampScore(sub)
		subScores[name] = sub
		score += weight * sub
	}

	issues := make([]assessment.Issue, 0, len(raw.Issues))
	for _, iss := range raw.Issues {
		// Drop issues referencing criteria outside the rubric.
		if _, ok := criteria[iss.Criterion]; !ok {
			continue
		}
		sev := assessment.Severity(iss.Severity)
		if !sev.Valid() {
			sev = assessment.SeverityMinor
		}
		issues = append(issues, assessment.Issue{
			Category:  cat,
			Criterion: iss.Criterion,
			Severity:  sev,
			Summary:   iss.Summary,
			Fix:       iss.Fix,
		})
	}

	return &assessment.DimensionResult{
		Category:  cat,
		Score:     clampScore(score),
		SubScores: subScores,
		Issues:    issues,
	}, nil
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// criterionRow is one entry of the criteria table shown to the LLM.
type criterionRow struct {
	Name   string
	Weight float64
}

type promptInput struct {
	Category string
	Criteria []criterionRow
	Input    string
}

var userTemplate = template.Must(template.New("evaluation").Parse(`Evaluate the {{.Category}} dimension of the submission below.

Criteria (score each 0-100):
{{range .Criteria}}- {{.Name}} (weight {{printf "%.2f" .Weight}})
{{end}}
Submission:
{{.Input}}`))

func buildUserMessage(cat assessment.Category, criteria map[string]float64, input string) (string, error) {
	rows := make([]criterionRow, 0, len(criteria))
	for name, weight := range criteria {
		rows = append(rows, criterionRow{Name: name, Weight: weight})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	var buf bytes.Buffer
	err := userTemplate.Execute(&buf, promptInput{
		Category: string(cat),
		Criteria: rows,
		Input:    input,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

package rubric

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codecampus/pathway/internal/assessment"
)

func validRubric(version string) Rubric {
	return Rubric{
		Version: version,
		Weights: map[assessment.Category]float64{
			assessment.CategoryIdea: 0.3,
			assessment.CategoryUI:   0.3,
			assessment.CategoryCode: 0.4,
		},
		Criteria: map[assessment.Category]map[string]float64{
			assessment.CategoryIdea: {"innovation": 0.5, "feasibility": 0.5},
			assessment.CategoryUI:   {"usability": 1.0},
			assessment.CategoryCode: {"correctness": 0.6, "security": 0.4},
		},
		PassThreshold:      60,
		ExcellentThreshold: 85,
		DiagnosisCap:       10,
		Gating:             []string{"code.security"},
	}
}

func TestValidateAcceptsWellFormedRubric(t *testing.T) {
	if err := validRubric("v1.0.0").Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Rubric)
		wantMsg string
	}{
		{
			name:    "bad version",
			mutate:  func(r *Rubric) { r.Version = "1.0" },
			wantMsg: "not a valid semantic version",
		},
		{
			name:    "missing category weight",
			mutate:  func(r *Rubric) { delete(r.Weights, assessment.CategoryUI) },
			wantMsg: "missing weight",
		},
		{
			name:    "weights do not sum to one",
			mutate:  func(r *Rubric) { r.Weights[assessment.CategoryCode] = 0.9 },
			wantMsg: "weights sum to",
		},
		{
			name:    "criteria do not sum to one",
			mutate:  func(r *Rubric) { r.Criteria[assessment.CategoryCode]["correctness"] = 0.9 },
			wantMsg: "criteria weights",
		},
		{
			name:    "empty criteria",
			mutate:  func(r *Rubric) { delete(r.Criteria, assessment.CategoryIdea) },
			wantMsg: "no criteria",
		},
		{
			name:    "excellent below pass",
			mutate:  func(r *Rubric) { r.ExcellentThreshold = 50 },
			wantMsg: "below pass_threshold",
		},
		{
			name:    "zero diagnosis cap",
			mutate:  func(r *Rubric) { r.DiagnosisCap = 0 },
			wantMsg: "diagnosis_cap",
		},
		{
			name:    "malformed gating entry",
			mutate:  func(r *Rubric) { r.Gating = []string{"security"} },
			wantMsg: "not of the form",
		},
		{
			name:    "gating references unknown criterion",
			mutate:  func(r *Rubric) { r.Gating = []string{"code.style"} },
			wantMsg: "unknown criterion",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRubric("v1.0.0")
			tc.mutate(&r)
			err := r.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tc.wantMsg)
			}
		})
	}
}

func TestIsGating(t *testing.T) {
	r := validRubric("v1.0.0")
	if !r.IsGating("code.security") {
		t.Error("code.security should gate")
	}
	if r.IsGating("code.correctness") {
		t.Error("code.correctness should not gate")
	}
}

func TestSetLatestBySemver(t *testing.T) {
	set, err := NewSet([]Rubric{
		validRubric("v1.2.0"),
		validRubric("v1.10.0"),
		validRubric("v1.9.0"),
	})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	// Semver, not lexicographic: v1.10.0 > v1.9.0.
	if got := set.Latest().Version; got != "v1.10.0" {
		t.Errorf("Latest() = %s, want v1.10.0", got)
	}

	r, err := set.Get("")
	if err != nil {
		t.Fatalf("Get(\"\"): %v", err)
	}
	if r.Version != "v1.10.0" {
		t.Errorf("Get(\"\") = %s, want latest", r.Version)
	}

	if _, err := set.Get("v2.0.0"); err == nil {
		t.Error("expected error for unknown version")
	}

	want := []string{"v1.2.0", "v1.9.0", "v1.10.0"}
	got := set.Versions()
	if len(got) != len(want) {
		t.Fatalf("Versions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Versions()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNewSetRejectsDuplicatesAndInvalid(t *testing.T) {
	if _, err := NewSet(nil); err == nil {
		t.Error("expected error for empty set")
	}
	if _, err := NewSet([]Rubric{validRubric("v1.0.0"), validRubric("v1.0.0")}); err == nil {
		t.Error("expected error for duplicate version")
	}
	bad := validRubric("v1.0.0")
	bad.DiagnosisCap = 0
	if _, err := NewSet([]Rubric{bad}); err == nil {
		t.Error("expected error for invalid member rubric")
	}
}

func TestDefaultSet(t *testing.T) {
	set := DefaultSet()
	r := set.Latest()

	if r.Version != "v1.0.0" {
		t.Errorf("default version = %s, want v1.0.0", r.Version)
	}
	if w := r.Weights[assessment.CategoryCode]; w != 0.4 {
		t.Errorf("code weight = %f, want 0.4", w)
	}
	if !r.IsGating("ui.usability") {
		t.Error("ui.usability should gate in the default rubric")
	}
	if r.PassThreshold != 60 || r.ExcellentThreshold != 85 {
		t.Errorf("thresholds = %.0f/%.0f, want 60/85", r.PassThreshold, r.ExcellentThreshold)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "rubrics.yaml")
	doc := `rubrics:
  - version: v2.0.0
    weights:
      idea: 0.2
      ui: 0.3
      code: 0.5
    criteria:
      idea:
        innovation: 1.0
      ui:
        usability: 1.0
      code:
        correctness: 1.0
    pass_threshold: 65
    excellent_threshold: 90
    diagnosis_cap: 5
    gating:
      - code.correctness
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := set.Latest().Version; got != "v2.0.0" {
		t.Errorf("loaded version = %s, want v2.0.0", got)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	badPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("rubrics: [not a rubric"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(badPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

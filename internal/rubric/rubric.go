// Package rubric holds the versioned scoring configuration: category
// weights, per-category criteria weights, verdict thresholds, and the
// gating criteria that block upgrades regardless of score.
package rubric

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/codecampus/pathway/internal/assessment"
)

// Rubric is one version of the scoring configuration.
type Rubric struct {
	Version            string                                    `yaml:"version"`
	Weights            map[assessment.Category]float64           `yaml:"weights"`
	Criteria           map[assessment.Category]map[string]float64 `yaml:"criteria"`
	PassThreshold      float64                                   `yaml:"pass_threshold"`
	ExcellentThreshold float64                                   `yaml:"excellent_threshold"`
	DiagnosisCap       int                                       `yaml:"diagnosis_cap"`
	Gating             []string                                  `yaml:"gating"`
}

// IsGating reports whether the dotted dimension key (e.g. "code.security")
// is configured as a gating criterion.
func (r Rubric) IsGating(dimension string) bool {
	for _, g := range r.Gating {
		if g == dimension {
			return true
		}
	}
	return false
}

// CriteriaFor returns the criteria weight table for a category.
func (r Rubric) CriteriaFor(cat assessment.Category) map[string]float64 {
	return r.Criteria[cat]
}

// Validate checks the rubric's internal consistency.
// Returns a combined error describing all problems found, or nil if valid.
func (r Rubric) Validate() error {
	var errs []string

	if r.Version == "" {
		errs = append(errs, "version is empty")
	} else if !semver.IsValid(r.Version) {
		errs = append(errs, fmt.Sprintf("version %q is not a valid semantic version", r.Version))
	}

	sum := 0.0
	for _, cat := range assessment.AllCategories() {
		w, ok := r.Weights[cat]
		if !ok {
			errs = append(errs, fmt.Sprintf("missing weight for category %q", cat))
			continue
		}
		if w < 0 {
			errs = append(errs, fmt.Sprintf("negative weight for category %q: %f", cat, w))
		}
		sum += w
	}
	if !sumsToOne(sum) {
		errs = append(errs, fmt.Sprintf("category weights sum to %f, want 1.0", sum))
	}

	for _, cat := range assessment.AllCategories() {
		crit := r.Criteria[cat]
		if len(crit) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no criteria", cat))
			continue
		}
		critSum := 0.0
		for name, w := range crit {
			if w < 0 {
				errs = append(errs, fmt.Sprintf("negative weight for criterion %s.%s: %f", cat, name, w))
			}
			critSum += w
		}
		if !sumsToOne(critSum) {
			errs = append(errs, fmt.Sprintf("criteria weights for %q sum to %f, want 1.0", cat, critSum))
		}
	}

	if r.PassThreshold < 0 || r.PassThreshold > 100 {
		errs = append(errs, fmt.Sprintf("pass_threshold %f out of range [0, 100]", r.PassThreshold))
	}
	if r.ExcellentThreshold < 0 || r.ExcellentThreshold > 100 {
		errs = append(errs, fmt.Sprintf("excellent_threshold %f out of range [0, 100]", r.ExcellentThreshold))
	}
	if r.ExcellentThreshold < r.PassThreshold {
		errs = append(errs, fmt.Sprintf("excellent_threshold %f below pass_threshold %f", r.ExcellentThreshold, r.PassThreshold))
	}
	if r.DiagnosisCap <= 0 {
		errs = append(errs, fmt.Sprintf("diagnosis_cap must be > 0, got %d", r.DiagnosisCap))
	}

	for _, g := range r.Gating {
		cat, crit, ok := strings.Cut(g, ".")
		if !ok {
			errs = append(errs, fmt.Sprintf("gating entry %q is not of the form category.criterion", g))
			continue
		}
		weights, catOK := r.Criteria[assessment.Category(cat)]
		if !catOK {
			errs = append(errs, fmt.Sprintf("gating entry %q references unknown category %q", g, cat))
			continue
		}
		if _, critOK := weights[crit]; !critOK {
			errs = append(errs, fmt.Sprintf("gating entry %q references unknown criterion %q", g, crit))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("rubric %s validation failed:\n  %s", r.Version, strings.Join(errs, "\n  "))
	}
	return nil
}

// sumsToOne compares a weight sum against 1.0 with a small tolerance for
// float accumulation.
func sumsToOne(sum float64) bool {
	const eps = 1e-9
	return sum > 1.0-eps && sum < 1.0+eps
}

// Set is a collection of rubric versions.
type Set struct {
	byVersion map[string]Rubric
	latest    string
}

// NewSet builds a Set from rubrics, validating each one.
func NewSet(rubrics []Rubric) (*Set, error) {
	if len(rubrics) == 0 {
		return nil, fmt.Errorf("rubric set is empty")
	}

	s := &Set{byVersion: make(map[string]Rubric, len(rubrics))}
	versions := make([]string, 0, len(rubrics))
	for _, r := range rubrics {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byVersion[r.Version]; dup {
			return nil, fmt.Errorf("duplicate rubric version %q", r.Version)
		}
		s.byVersion[r.Version] = r
		versions = append(versions, r.Version)
	}

	sort.Slice(versions, func(i, j int) bool {
		return semver.Compare(versions[i], versions[j]) < 0
	})
	s.latest = versions[len(versions)-1]

	return s, nil
}

// Get returns the rubric for a version, or an error if unknown.
// An empty version selects the latest.
func (s *Set) Get(version string) (Rubric, error) {
	if version == "" {
		version = s.latest
	}
	r, ok := s.byVersion[version]
	if !ok {
		return Rubric{}, fmt.Errorf("unknown rubric version: %q", version)
	}
	return r, nil
}

// Latest returns the highest semantic version in the set.
func (s *Set) Latest() Rubric {
	return s.byVersion[s.latest]
}

// Versions returns all versions in ascending semver order.
func (s *Set) Versions() []string {
	versions := make([]string, 0, len(s.byVersion))
	for v := range s.byVersion {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return semver.Compare(versions[i], versions[j]) < 0
	})
	return versions
}

package rubric

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// file is the on-disk rubric document shape.
type file struct {
	Rubrics []Rubric `yaml:"rubrics"`
}

// DefaultSet returns the embedded rubric set.
func DefaultSet() *Set {
	s, err := parse(defaultYAML)
	if err != nil {
		// The embedded default is covered by tests; failing to parse
		// it is a build defect, not a runtime condition.
		panic(err)
	}
	return s
}

// LoadFile reads and validates a rubric set from a YAML file.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rubric file: %w", err)
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("rubric file %s: %w", path, err)
	}
	return s, nil
}

func parse(data []byte) (*Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rubric YAML: %w", err)
	}
	return NewSet(f.Rubrics)
}

// Package choreo loads named animations and sequences from YAML files and
// turns them into anim.Specs bound to host targets.
package choreo

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is one choreography document.
type File struct {
	Name string `yaml:"name"`
	// Easings maps extra easing names to tengo scripts that read t and
	// assign out.
	Easings    map[string]string        `yaml:"easings"`
	Animations map[string]AnimationSpec `yaml:"animations"`
	Sequences  map[string]SequenceSpec  `yaml:"sequences"`
}

type AnimationSpec struct {
	Target     string `yaml:"target"`
	Kind       string `yaml:"kind"`
	DurationMS int    `yaml:"duration_ms"`
	Easing     string `yaml:"easing"`
	Property   string `yaml:"property"`

	From *float64 `yaml:"from"`
	To   *float64 `yaml:"to"`

	FromX float64 `yaml:"from_x"`
	FromY float64 `yaml:"from_y"`
	ToX   float64 `yaml:"to_x"`
	ToY   float64 `yaml:"to_y"`

	Color   *Color `yaml:"color"`
	Restore *Color `yaml:"restore"`

	ScaleFactor float64 `yaml:"scale_factor"`
	Height      float64 `yaml:"height"`
}

type SequenceSpec struct {
	Steps []string `yaml:"steps"`
}

// Parse decodes a choreography document. Unknown keys are rejected so typos
// in field names surface as errors instead of silent defaults.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("choreo: unmarshal: %w", err)
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("choreo: load %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("choreo: %s: %w", path, err)
	}
	return f, nil
}

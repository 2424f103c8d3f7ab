package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario names one of the pre-built ASTs in internal/fixtures. Source is
// illustrative only: this repository has no lexer or parser, so it is never
// parsed back into an AST, only printed alongside the inference result.
type Scenario struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Expect string `yaml:"expect"`
}

// Manifest is the top-level shape of scenarios.yaml.
type Manifest struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadManifest reads and parses a scenario manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	for i, s := range m.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d missing required field: name", i)
		}
	}
	return &m, nil
}

// Find returns the scenario with the given name, if present.
func (m *Manifest) Find(name string) (Scenario, bool) {
	for _, s := range m.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

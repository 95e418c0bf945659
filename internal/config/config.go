// Package config loads knowledge-base definition files.
//
// A definition is a YAML document listing the fact vocabulary, the weighted
// relation edges between facts, and optional saved queries:
//
//	facts: [Socrates, Man, Mortal]
//	relations:
//	  - {name: isA, from: Socrates, to: Man}
//	  - {name: isA, from: Man, to: Mortal, strength: 1.0}
//	queries:
//	  - {fact: Socrates, chain: [isA, isA]}
//
// Strength defaults to 1.0 and must lie within [0, 1].
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/neurosym/internal/kb"
)

// DefaultStrength is used for relations that omit strength.
const DefaultStrength = 1.0

// Definition is a knowledge-base definition.
type Definition struct {
	Facts     []string   `yaml:"facts"`
	Relations []Relation `yaml:"relations"`
	Queries   []Query    `yaml:"queries,omitempty"`
}

// Relation is one directed edge.
type Relation struct {
	Name string `yaml:"name"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
	// Strength is optional; nil means DefaultStrength.
	Strength *float64 `yaml:"strength,omitempty"`
}

// Query is a saved reasoning query.
type Query struct {
	Fact  string   `yaml:"fact"`
	Chain []string `yaml:"chain,omitempty"`
}

// EdgeStrength returns the relation's strength, applying the default.
func (r Relation) EdgeStrength() float64 {
	if r.Strength == nil {
		return DefaultStrength
	}
	return *r.Strength
}

// Parse decodes a YAML definition. Unknown keys are rejected.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	return &def, nil
}

// LoadFromFile reads and parses a definition file. It does not validate.
func LoadFromFile(path string) (*Definition, error) {
	//nolint:gosec // G304: definition path is supplied by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	return Parse(data)
}

// SaveToFile writes the definition as YAML.
func (d *Definition) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create definition directory: %w", err)
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // G306: definitions are not secret
		return fmt.Errorf("failed to write definition file: %w", err)
	}
	return nil
}

// Validate checks the definition and reports every problem it finds.
func (d *Definition) Validate() error {
	var errs []error

	if len(d.Facts) == 0 {
		errs = append(errs, fmt.Errorf("facts: %w", kb.ErrEmptyVocabulary))
	}
	known := make(map[string]bool, len(d.Facts))
	for i, f := range d.Facts {
		if f == "" {
			errs = append(errs, fmt.Errorf("facts[%d]: label is empty", i))
		}
		if known[f] {
			errs = append(errs, fmt.Errorf("facts[%d]: %w: %q", i, kb.ErrDuplicateFact, f))
		}
		known[f] = true
	}

	relations := make(map[string]bool)
	for i, r := range d.Relations {
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("relations[%d]: name is required", i))
		}
		for _, f := range []string{r.From, r.To} {
			if !known[f] {
				errs = append(errs, fmt.Errorf("relations[%d]: %w: %q", i, kb.ErrFactNotFound, f))
			}
		}
		if err := kb.ValidateStrength(r.EdgeStrength()); err != nil {
			errs = append(errs, fmt.Errorf("relations[%d]: %w", i, err))
		}
		relations[r.Name] = true
	}

	for i, q := range d.Queries {
		if !known[q.Fact] {
			errs = append(errs, fmt.Errorf("queries[%d]: %w: %q", i, kb.ErrFactNotFound, q.Fact))
		}
		for _, name := range q.Chain {
			if !relations[name] {
				errs = append(errs, fmt.Errorf("queries[%d]: %w: %q", i, kb.ErrRelationNotFound, name))
			}
		}
	}

	return errors.Join(errs...)
}

// Build validates the definition and constructs the knowledge base it
// describes. Relations are added in file order, so a later edge overwrites an
// earlier one with the same name and endpoints.
func (d *Definition) Build(opts ...kb.Option) (*kb.KnowledgeBase, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	base, err := kb.New(d.Facts, opts...)
	if err != nil {
		return nil, err
	}
	for _, r := range d.Relations {
		if err := base.AddRelation(r.Name, r.From, r.To, r.EdgeStrength()); err != nil {
			return nil, err
		}
	}
	return base, nil
}

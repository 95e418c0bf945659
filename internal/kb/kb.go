// Package kb implements a tensor-backed knowledge base and its reasoner.
//
// Facts form a fixed vocabulary; a fact's position is its basis coordinate.
// Each named relation is an n×n adjacency matrix whose [from][to] entry holds
// the directed strength of from -> to. Reasoning seeds a one-hot vector at the
// query fact and pushes it through a chain of relations, one matrix-vector
// product per hop.
//
// A KnowledgeBase is not safe for concurrent mutation. Callers sharing one
// across goroutines must serialize AddRelation and SetRelation themselves.
package kb

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/born-ml/neurosym/internal/tensor"
)

// KnowledgeBase stores facts and named relations between them.
type KnowledgeBase struct {
	facts      []string
	index      map[string]int
	factTensor *tensor.Tensor
	relations  map[string]*tensor.Tensor
	logger     *slog.Logger
}

// Option configures a KnowledgeBase.
type Option func(*KnowledgeBase)

// WithLogger sets the logger used for debug tracing of relation updates and
// reasoning steps. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(kb *KnowledgeBase) {
		if logger != nil {
			kb.logger = logger
		}
	}
}

// New creates a knowledge base over facts.
//
// Fact labels must be unique and the list must not be empty.
func New(facts []string, opts ...Option) (*KnowledgeBase, error) {
	if len(facts) == 0 {
		return nil, ErrEmptyVocabulary
	}

	index := make(map[string]int, len(facts))
	for i, fact := range facts {
		if prev, ok := index[fact]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateFact, fact, prev, i)
		}
		index[fact] = i
	}

	identity, err := tensor.Identity(len(facts))
	if err != nil {
		return nil, fmt.Errorf("fact tensor: %w", err)
	}

	kb := &KnowledgeBase{
		facts:      slices.Clone(facts),
		index:      index,
		factTensor: identity,
		relations:  make(map[string]*tensor.Tensor),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(kb)
	}
	return kb, nil
}

// Facts returns a copy of the vocabulary in index order.
func (kb *KnowledgeBase) Facts() []string {
	return slices.Clone(kb.facts)
}

// FactCount returns the vocabulary size.
func (kb *KnowledgeBase) FactCount() int {
	return len(kb.facts)
}

// FactIndex returns the basis coordinate of fact.
func (kb *KnowledgeBase) FactIndex(fact string) (int, error) {
	i, ok := kb.index[fact]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrFactNotFound, fact)
	}
	return i, nil
}

// FactTensor returns the n×n identity matrix with one basis vector per fact.
func (kb *KnowledgeBase) FactTensor() *tensor.Tensor {
	return kb.factTensor
}

// RelationNames returns the names of all relations, sorted.
func (kb *KnowledgeBase) RelationNames() []string {
	names := make([]string, 0, len(kb.relations))
	for name := range kb.relations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Relation returns a copy of the adjacency matrix for name.
func (kb *KnowledgeBase) Relation(name string) (*tensor.Tensor, error) {
	rel, ok := kb.relations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRelationNotFound, name)
	}
	return rel.Clone(), nil
}

// Strength returns the weight of the edge from -> to under name.
// A relation that exists but has no such edge reports 0.
func (kb *KnowledgeBase) Strength(name, from, to string) (float64, error) {
	rel, ok := kb.relations[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrRelationNotFound, name)
	}
	fromIdx, toIdx, err := kb.resolveEdge(from, to)
	if err != nil {
		return 0, err
	}
	return rel.At(fromIdx, toIdx), nil
}

// AddRelation sets the strength of the edge from -> to under name.
//
// The relation matrix is created as all zeros the first time name is used.
// Adding the same edge again overwrites its strength. If either fact is
// unknown the knowledge base is left unchanged.
func (kb *KnowledgeBase) AddRelation(name, from, to string, strength float64) error {
	fromIdx, toIdx, err := kb.resolveEdge(from, to)
	if err != nil {
		return fmt.Errorf("add relation %q: %w", name, err)
	}

	rel, ok := kb.relations[name]
	if !ok {
		rel, err = tensor.Zeros(tensor.Shape{len(kb.facts), len(kb.facts)})
		if err != nil {
			return fmt.Errorf("add relation %q: %w", name, err)
		}
		kb.relations[name] = rel
		kb.logger.Debug("relation created", "relation", name, "facts", len(kb.facts))
	}

	rel.Set(strength, fromIdx, toIdx)
	kb.logger.Debug("edge set", "relation", name, "from", from, "to", to, "strength", strength)
	return nil
}

// SetRelation replaces the whole adjacency matrix for name with a copy of m.
// m must be n×n where n is the vocabulary size.
func (kb *KnowledgeBase) SetRelation(name string, m *tensor.Tensor) error {
	n := len(kb.facts)
	if m == nil || !m.Shape().Equal(tensor.Shape{n, n}) {
		var got tensor.Shape
		if m != nil {
			got = m.Shape()
		}
		return fmt.Errorf("%w: relation %q must be [%d %d], got %v", ErrInvalidRelation, name, n, n, got)
	}
	kb.relations[name] = m.Clone()
	return nil
}

func (kb *KnowledgeBase) resolveEdge(from, to string) (int, int, error) {
	fromIdx, err := kb.FactIndex(from)
	if err != nil {
		return 0, 0, err
	}
	toIdx, err := kb.FactIndex(to)
	if err != nil {
		return 0, 0, err
	}
	return fromIdx, toIdx, nil
}

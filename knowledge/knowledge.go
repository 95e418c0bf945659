// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package knowledge provides the symbolic reasoning engine: a knowledge base
// of facts and weighted relations, queried by multi-hop inference.
//
// Example:
//
//	base, _ := knowledge.New([]string{"Rain", "Clouds", "Wet"})
//	_ = knowledge.AddRelation(base, "causes", "Rain", "Clouds", 0.8)
//	_ = knowledge.AddRelation(base, "causes", "Clouds", "Wet", 0.6)
//	res, _ := base.Reason("Rain", []string{"causes", "causes"}) // Wet: 0.48
package knowledge

import (
	"log/slog"

	"github.com/born-ml/neurosym/internal/kb"
)

// KnowledgeBase stores facts and named relations between them.
type KnowledgeBase = kb.KnowledgeBase

// Result is the outcome of a reasoning query.
type Result = kb.Result

// Inference is a fact reached by reasoning, with its confidence.
type Inference = kb.Inference

// Option configures a KnowledgeBase.
type Option = kb.Option

// Errors returned by knowledge-base operations.
var (
	ErrFactNotFound     = kb.ErrFactNotFound
	ErrRelationNotFound = kb.ErrRelationNotFound
	ErrDuplicateFact    = kb.ErrDuplicateFact
	ErrEmptyVocabulary  = kb.ErrEmptyVocabulary
	ErrInvalidStrength  = kb.ErrInvalidStrength
	ErrInvalidRelation  = kb.ErrInvalidRelation
)

// DefaultStrength is the conventional strength of an unqualified edge.
const DefaultStrength = 1.0

// New creates a knowledge base over unique fact labels.
func New(facts []string, opts ...Option) (*KnowledgeBase, error) {
	return kb.New(facts, opts...)
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return kb.WithLogger(logger)
}

// AddRelation adds the edge from -> to under name with the given strength.
//
// Strength must lie within [0, 1]; anything else is rejected with
// ErrInvalidStrength before the knowledge base is touched.
func AddRelation(base *KnowledgeBase, name, from, to string, strength float64) error {
	if err := kb.ValidateStrength(strength); err != nil {
		return err
	}
	return base.AddRelation(name, from, to, strength)
}

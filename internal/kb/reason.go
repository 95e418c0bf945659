package kb

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/born-ml/neurosym/internal/tensor"
)

// Inference is a fact reached by reasoning, with its accumulated confidence.
type Inference struct {
	Fact       string  `json:"fact"`
	Confidence float64 `json:"confidence"`
}

// Result is the outcome of a reasoning query.
type Result struct {
	Query     string      `json:"query"`
	Relations []string    `json:"relations"`
	Results   []Inference `json:"results"`
}

// Confidence returns the confidence inferred for fact, if it was reached.
func (r *Result) Confidence(fact string) (float64, bool) {
	for _, inf := range r.Results {
		if inf.Fact == fact {
			return inf.Confidence, true
		}
	}
	return 0, false
}

// Reason propagates confidence from query along chain.
//
// The query fact is seeded as a one-hot vector v. Each relation R in chain
// is applied in order as v' = Rᵀv, so confidence flows from source to target
// scaled by edge strength and adds up where several predecessors reach the
// same fact. Along a single path the strengths multiply.
//
// Every fact whose final confidence is > 0 is returned, ranked by confidence
// (highest first, ties in fact order). An empty chain yields only the query
// at confidence 1. Reason never modifies the knowledge base.
//
// Example:
//
//	base, _ := kb.New([]string{"Socrates", "Man", "Mortal"})
//	_ = base.AddRelation("isA", "Socrates", "Man", 1)
//	_ = base.AddRelation("isA", "Man", "Mortal", 1)
//	res, _ := base.Reason("Socrates", []string{"isA", "isA"}) // Mortal: 1
func (kb *KnowledgeBase) Reason(query string, chain []string) (*Result, error) {
	start, err := kb.FactIndex(query)
	if err != nil {
		return nil, fmt.Errorf("reason: %w", err)
	}

	steps := make([]*tensor.Tensor, len(chain))
	for i, name := range chain {
		rel, ok := kb.relations[name]
		if !ok {
			return nil, fmt.Errorf("reason: step %d: %w: %q", i, ErrRelationNotFound, name)
		}
		steps[i] = rel
	}

	n := len(kb.facts)
	v, err := tensor.Zeros(tensor.Shape{n, 1})
	if err != nil {
		return nil, fmt.Errorf("reason: %w", err)
	}
	v.Set(1, start, 0)

	for i, rel := range steps {
		v, err = propagate(rel, v)
		if err != nil {
			return nil, fmt.Errorf("reason: step %d (%s): %w", i, chain[i], err)
		}
		kb.logger.Debug("reasoning step", "query", query, "step", i, "relation", chain[i],
			"active", countPositive(v.Data()))
	}

	return &Result{
		Query:     query,
		Relations: append([]string{}, chain...),
		Results:   kb.rank(v.Data()),
	}, nil
}

// propagate computes Rᵀv: out[i] = sum_j R[j][i] * v[j].
func propagate(rel, v *tensor.Tensor) (*tensor.Tensor, error) {
	rt, err := tensor.Transpose(rel)
	if err != nil {
		return nil, err
	}
	return tensor.Multiply(rt, v)
}

func (kb *KnowledgeBase) rank(confidence []float64) []Inference {
	results := make([]Inference, 0)
	for i, c := range confidence {
		if c > 0 {
			results = append(results, Inference{Fact: kb.facts[i], Confidence: c})
		}
	}
	slices.SortStableFunc(results, func(a, b Inference) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})
	return results
}

func countPositive(values []float64) int {
	n := 0
	for _, v := range values {
		if v > 0 {
			n++
		}
	}
	return n
}

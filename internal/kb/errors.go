package kb

import (
	"errors"
	"fmt"
)

// Knowledge base errors.
var (
	ErrFactNotFound     = errors.New("fact not found")
	ErrRelationNotFound = errors.New("relation not found")
	ErrDuplicateFact    = errors.New("duplicate fact")
	ErrEmptyVocabulary  = errors.New("knowledge base needs at least one fact")
	ErrInvalidStrength  = errors.New("strength must be within [0, 1]")
	ErrInvalidRelation  = errors.New("invalid relation matrix")
)

// ValidateStrength rejects edge strengths outside [0, 1] (and NaN).
//
// The engine stores any weight it is given; this check belongs to the
// boundary that accepts strengths from callers.
func ValidateStrength(strength float64) error {
	if !(strength >= 0 && strength <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidStrength, strength)
	}
	return nil
}

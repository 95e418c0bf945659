package tensor

import "errors"

// Tensor engine errors. Returned errors wrap one of these; test with errors.Is.
var (
	ErrInvalidShape      = errors.New("invalid shape")
	ErrIncompatibleTypes = errors.New("incompatible types")
	ErrIncompatibleShape = errors.New("incompatible shape")
	ErrUnsupportedRank   = errors.New("unsupported rank")
	ErrValueMismatch     = errors.New("values do not match shape")
	ErrEmptyInput        = errors.New("empty input")
)

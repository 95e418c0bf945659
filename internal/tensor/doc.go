// Package tensor provides the dense tensor value type used by the engine.
//
// Tensors hold float64 values in row-major order and support rank 1
// (vectors) and rank 2 (matrices) only. Higher ranks are rejected at
// construction with ErrUnsupportedRank.
package tensor

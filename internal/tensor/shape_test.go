package tensor

import (
	"errors"
	"testing"
)

func TestShapeSizeIsSumOfDimensions(t *testing.T) {
	tests := []struct {
		shape    Shape
		size     int
		elements int
	}{
		{Shape{3}, 3, 3},
		{Shape{2, 3}, 5, 6},
		{Shape{4, 4}, 8, 16},
		{Shape{1, 7}, 8, 7},
	}

	for _, tt := range tests {
		if got := tt.shape.Size(); got != tt.size {
			t.Errorf("%v.Size() = %d, want %d", tt.shape, got, tt.size)
		}
		if got := tt.shape.NumElements(); got != tt.elements {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.elements)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		err   error
	}{
		{"vector", Shape{3}, nil},
		{"matrix", Shape{2, 3}, nil},
		{"empty", Shape{}, ErrInvalidShape},
		{"nil", nil, ErrInvalidShape},
		{"zero dim", Shape{2, 0}, ErrInvalidShape},
		{"negative dim", Shape{-1}, ErrInvalidShape},
		{"rank 3", Shape{2, 2, 2}, ErrUnsupportedRank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.err == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{3, 4}.ComputeStrides()
	if len(strides) != 2 || strides[0] != 4 || strides[1] != 1 {
		t.Errorf("expected strides [4 1], got %v", strides)
	}
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Errorf("clone shares memory with original: %v", s)
	}
	if !s.Equal(Shape{2, 3}) || s.Equal(c) {
		t.Errorf("Equal returned wrong result for %v vs %v", s, c)
	}
}

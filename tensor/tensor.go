// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
)

// Tensor is a row-major N-d array of float32.
type Tensor struct {
	Data  []float32
	Shape []int
	Name  string
}

// New builds a Tensor from shape and data. Both slices are copied.
//
// Errors:
//   - ErrInvalidShape if shape is empty or any dimension is ≤ 0.
//   - ErrShapeMismatch if len(data) != Π shape.
func New(shape []int, data []float32) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("New: %w", ErrInvalidShape)
	}
	size := 1
	for axis, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("New: axis %d has dim %d: %w", axis, dim, ErrInvalidShape)
		}
		size *= dim
	}
	if len(data) != size {
		return nil, fmt.Errorf("New: len(data)=%d, want %d: %w", len(data), size, ErrShapeMismatch)
	}

	t := &Tensor{
		Data:  make([]float32, size),
		Shape: make([]int, len(shape)),
	}
	copy(t.Data, data)
	copy(t.Shape, shape)

	return t, nil
}

// Rank returns the number of axes.
func (t *Tensor) Rank() int { return len(t.Shape) }

// Index maps coordinates to the flat offset in Data.
//
// Errors:
//   - ErrRank if len(coords) != Rank().
//   - ErrOutOfRange if any coordinate is negative or ≥ its dimension.
func (t *Tensor) Index(coords ...int) (int, error) {
	if len(coords) != len(t.Shape) {
		return 0, fmt.Errorf("Tensor.Index: got %d coords for rank %d: %w", len(coords), len(t.Shape), ErrRank)
	}
	offset := 0
	for axis, c := range coords {
		dim := t.Shape[axis]
		if c < 0 || c >= dim {
			return 0, fmt.Errorf("Tensor.Index: axis %d coord %d not in [0,%d): %w", axis, c, dim, ErrOutOfRange)
		}
		offset = offset*dim + c
	}

	return offset, nil
}

// At returns the element at coords.
func (t *Tensor) At(coords ...int) (float32, error) {
	k, err := t.Index(coords...)
	if err != nil {
		return 0, err
	}

	return t.Data[k], nil
}

// LpNorm returns (Σ x^p)^(1/p) with raw power semantics (no absolute value).
func (t *Tensor) LpNorm(p int) float32 {
	var sum float32
	for _, x := range t.Data {
		sum += float32(math.Pow(float64(x), float64(p)))
	}

	return float32(math.Pow(float64(sum), 1/float64(p)))
}

// FrobeniusNorm returns sqrt(Σ x²).
func (t *Tensor) FrobeniusNorm() float32 {
	var sum float32
	for _, x := range t.Data {
		sum += x * x
	}

	return float32(math.Sqrt(float64(sum)))
}

// Dot returns Σ x_i·y_i for tensors of identical shape.
func Dot(x, y *Tensor) (float32, error) {
	if x == nil || y == nil {
		return 0, fmt.Errorf("Dot: %w", ErrNilTensor)
	}
	if !sameShape(x.Shape, y.Shape) {
		return 0, fmt.Errorf("Dot: %v vs %v: %w", x.Shape, y.Shape, ErrShapeMismatch)
	}
	var sum float32
	for i, v := range x.Data {
		sum += v * y.Data[i]
	}

	return sum, nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"math"
)

// ErrEmpty indicates a reduction that needs at least one element.
var ErrEmpty = errors.New("vector: empty vector")

// Vector is a named float32 sequence. The zero value is an empty vector.
type Vector struct {
	Data []float32
	Name string
}

// New returns a Vector holding a copy of values.
func New(name string, values ...float32) *Vector {
	data := make([]float32, len(values))
	copy(data, values)

	return &Vector{Data: data, Name: name}
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.Data) }

// LpNorm returns (Σ x^p)^(1/p). An empty vector yields 0 for p > 0.
func (v *Vector) LpNorm(p int) float32 {
	var sum float32
	for _, x := range v.Data {
		sum += float32(math.Pow(float64(x), float64(p)))
	}

	return float32(math.Pow(float64(sum), 1/float64(p)))
}

// EuclidNorm is LpNorm(2).
func (v *Vector) EuclidNorm() float32 { return v.LpNorm(2) }

// MaxNorm returns the largest element (signed, not the largest magnitude).
// NaN elements are skipped unless every element is NaN.
//
// Errors:
//   - ErrEmpty for a vector with no elements.
func (v *Vector) MaxNorm() (float32, error) {
	if len(v.Data) == 0 {
		return 0, ErrEmpty
	}
	best := v.Data[0]
	for _, x := range v.Data[1:] {
		if x > best || isNaN(best) {
			best = x
		}
	}

	return best, nil
}

func isNaN(x float32) bool { return x != x }

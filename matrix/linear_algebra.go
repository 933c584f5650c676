// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels: element-wise addition and
// subtraction, scaling (pure and in-place), norms, trace, transpose, matrix
// multiplication, dot product and inversion. All functions perform strict
// fail-fast validation and return sentinel errors wrapped with an op tag.
//
// Purpose:
//   - Keep the arithmetic the power-iteration engine is built on in one file.
//   - Preserve the API asymmetry: ScalarProduct mutates, everything else allocates.
//
// Notes:
//   - Accumulation happens in float32, in index order, so results are bit-stable.
//   - Zero operands are NOT skipped in MatMul: NaN/Inf must propagate.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum float32 = 0.0

// SingularEpsilon is the relative pivot threshold used by Inverse: a pivot
// whose magnitude is ≤ SingularEpsilon·max|a_ij| is treated as zero.
const SingularEpsilon = 1e-6

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatMul    = "MatMul"
	opDot       = "Dot"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1} on a fresh Dense.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..r*c-1 over both backing slices.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, sign float32, opTag, name string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense{m: a.m, n: a.n, data: make([]float32, len(a.data)), name: name}
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
// Broadcasting is not supported: shapes must be identical.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd, "addition") }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub, "subtraction") }

// ScalarProduct multiplies every element by k IN PLACE.
// This is the only mutating kernel; use Scale for a fresh copy.
// Complexity: O(r*c).
func (d *Dense) ScalarProduct(k float32) {
	for idx := range d.data {
		d.data[idx] *= k
	}
}

// Scale returns a new matrix whose elements are k * d[i,j]; d is untouched.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(d *Dense, k float32) (*Dense, error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := d.Clone()
	res.ScalarProduct(k)

	return res, nil
}

// FrobeniusNorm returns sqrt(Σ x²) over all elements.
// Non-negative; zero iff every element is zero (for finite data).
// Complexity: O(r*c).
func (d *Dense) FrobeniusNorm() float32 {
	sum := ZeroSum
	for _, v := range d.data {
		sum += v * v
	}

	return float32(math.Sqrt(float64(sum)))
}

// LpNorm returns (Σ x^p)^(1/p) over all elements.
// This is a raw power sum, not Σ|x|^p: odd p lets negative terms cancel and a
// negative sum raised to 1/p yields NaN. Callers wanting the absolute-value
// norm must pass non-negative data.
// Complexity: O(r*c).
func (d *Dense) LpNorm(p int) float32 {
	sum := ZeroSum
	for _, v := range d.data {
		sum += float32(math.Pow(float64(v), float64(p)))
	}

	return float32(math.Pow(float64(sum), 1/float64(p)))
}

// Trace returns the sum of the diagonal entries d[i,i] for i < min(m,n).
// Well-defined for non-square matrices.
// Complexity: O(min(m,n)).
func (d *Dense) Trace() float32 {
	sum := ZeroSum
	k := min(d.m, d.n)
	for i := 0; i < k; i++ {
		sum += d.data[i*d.n+i]
	}

	return sum
}

// Transpose returns a new n×m matrix y with y[j,i] = x[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(x *Dense) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := x.m, x.n
	res := &Dense{m: cols, n: rows, data: make([]float32, rows*cols), name: "transpose matrix"}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = x.data[baseSrc+j]
		}
	}

	return res, nil
}

// MatMul performs the standard product Z = X × Y.
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, x.Cols == y.Rows).
//   - Stage 2: i→k→j loops over flat row-major buffers; each z[i,j]
//     accumulates its k terms in ascending k order.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (never a wrong-shaped result).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MatMul(x, y *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(x, y); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	xRows, inner, yCols := x.m, x.n, y.n
	res := &Dense{m: xRows, n: yCols, data: make([]float32, xRows*yCols), name: "mult_output"}

	var (
		i, j, k                     int
		xv                          float32
		rowOffX, rowOffY, rowOffRes int
	)
	for i = 0; i < xRows; i++ {
		rowOffX = i * inner
		rowOffRes = i * yCols
		for k = 0; k < inner; k++ {
			xv = x.data[rowOffX+k]
			rowOffY = k * yCols
			for j = 0; j < yCols; j++ {
				res.data[rowOffRes+j] += xv * y.data[rowOffY+j]
			}
		}
	}

	return res, nil
}

// Dot returns Σ x[i,j]*y[i,j] for equally shaped x and y.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Dot(x, y *Dense) (float32, error) {
	if err := ValidateBinarySameShape(x, y); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	sum := ZeroSum
	for idx := range x.data {
		sum += x.data[idx] * y.data[idx]
	}

	return sum, nil
}

// Inverse returns A⁻¹ for a square, non-singular A.
// Implementation:
//   - Stage 1: validate non-nil and square (ErrNonSquare).
//   - Stage 2: Doolittle LU with partial (row) pivoting on a float64 working copy.
//   - Stage 3: for each identity column e_col, solve L·y = P·e_col then U·x = y.
//   - Stage 4: narrow the columns back to float32.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (|pivot| ≤ SingularEpsilon·max|a_ij|).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - The input is never mutated.
func Inverse(a *Dense) (*Dense, error) {
	if err := ValidateSquare(a, ErrNonSquare); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := a.n

	// Stage 2: LU factorization in a float64 workspace; lu holds L (unit, below
	// the diagonal) and U (on and above it). perm maps factor row → source row.
	lu := make([]float64, n*n)
	scale := 0.0
	for idx, v := range a.data {
		lu[idx] = float64(v)
		scale = math.Max(scale, math.Abs(lu[idx]))
	}
	threshold := SingularEpsilon * scale
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var pivot, factor float64
	for k = 0; k < n; k++ {
		// choose the largest remaining |a[i,k]| as pivot
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(lu[i*n+k]) > math.Abs(lu[p*n+k]) {
				p = i
			}
		}
		pivot = lu[p*n+k]
		if scale == 0 || math.Abs(pivot) <= threshold {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i = k + 1; i < n; i++ {
			factor = lu[i*n+k] / pivot
			lu[i*n+k] = factor
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= factor * lu[k*n+j]
			}
		}
	}

	// Stage 3: substitution per column of the identity.
	inv := &Dense{m: n, n: n, data: make([]float32, n*n), name: "inverse"}
	y := make([]float64, n)
	x := make([]float64, n)
	var col int
	var sum float64
	for col = 0; col < n; col++ {
		// Forward: L·y = P·e_col
		for i = 0; i < n; i++ {
			sum = 0
			if perm[i] == col {
				sum = 1
			}
			for k = 0; k < i; k++ {
				sum -= lu[i*n+k] * y[k]
			}
			y[i] = sum
		}
		// Backward: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for k = i + 1; k < n; k++ {
				sum -= lu[i*n+k] * x[k]
			}
			x[i] = sum / lu[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = float32(x[i])
		}
	}

	return inv, nil
}

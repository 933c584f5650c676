// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat float32 row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: Index/At/Set return errors instead of panicking.
//   - Enforce len(data) == rows*cols at construction; a Dense always owns its buffer.
//
// Complexity quicksheet:
//   - NewDense/NewDenseFrom: O(r*c); Index/At/Set: O(1); Clone/Data: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxIndex = "Index" // method tag used in error wrappers
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel survives via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major float32 matrix.
//   - m,n hold dimensions (rows, cols).
//   - data is a flat buffer of length m*n in row-major order (offset = i*n + j).
//   - name is a diagnostic label with no semantic role.
type Dense struct {
	m, n int       // row and column counts (> 0)
	data []float32 // contiguous row-major storage (len == m*n)
	name string    // opaque diagnostic label
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of length rows*cols.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{m: rows, n: cols, data: make([]float32, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// MAIN DESCRIPTION:
//   - The validating constructor: the only way to bring external values in bulk.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: validate len(data) == rows*cols.
//   - Stage 3: copy data into a fresh buffer (the caller keeps its slice).
//
// Errors:
//   - ErrInvalidDimensions for non-positive dims.
//   - ErrShapeMismatch when len(data) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float32) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): len(data)=%d: %w", rows, cols, len(data), ErrShapeMismatch)
	}
	buf := make([]float32, len(data))
	copy(buf, data)

	return &Dense{m: rows, n: cols, data: buf}, nil
}

// NewDenseRows builds a matrix from a rectangular slice of rows.
// Every row must have the same non-zero length; ragged input yields ErrShapeMismatch.
// Complexity: O(r*c).
func NewDenseRows(rows [][]float32) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]float32, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseRows: row %d has %d values, want %d: %w", i, len(row), c, ErrShapeMismatch)
		}
		buf = append(buf, row...)
	}

	return &Dense{m: r, n: c, data: buf}, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}
	id.name = "identity"

	return id, nil
}

// ColumnOnes returns an n×1 column vector filled with ones, the power-iteration seed.
// Complexity: O(n).
func ColumnOnes(n int) (*Dense, error) {
	x, err := NewDense(n, 1)
	if err != nil {
		return nil, fmt.Errorf("ColumnOnes: %w", err)
	}
	for i := range x.data {
		x.data[i] = 1
	}
	x.name = "eigen_vector"

	return x, nil
}

// Rows returns the row count. Complexity: O(1).
func (d *Dense) Rows() int { return d.m }

// Cols returns the column count. Complexity: O(1).
func (d *Dense) Cols() int { return d.n }

// Shape packs Rows() and Cols() into a single call for convenience.
func (d *Dense) Shape() (rows, cols int) { return d.m, d.n }

// Name returns the diagnostic label.
func (d *Dense) Name() string { return d.name }

// SetName replaces the diagnostic label and returns the receiver for chaining.
func (d *Dense) SetName(name string) *Dense {
	d.name = name
	return d
}

// Index maps the 2-D coordinate (i,j) to its row-major flat offset i*n + j.
// MAIN DESCRIPTION:
//   - Bounds-checked coordinate translation.
//
// Implementation:
//   - Stage 1: validate 0 ≤ i < m and 0 ≤ j < n.
//   - Stage 2: compute i*n + j.
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates) when indices are invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (d *Dense) Index(i, j int) (int, error) {
	off, err := d.offset(i, j)
	if err != nil {
		return 0, denseErrorf(ctxIndex, i, j, err)
	}

	return off, nil
}

// offset is the unwrapped bounds check shared by Index/At/Set.
func (d *Dense) offset(i, j int) (int, error) {
	if i < 0 || i >= d.m {
		return 0, ErrOutOfRange
	}
	if j < 0 || j >= d.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return i*d.n + j, nil
}

// At returns the value at (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (d *Dense) At(i, j int) (float32, error) {
	off, err := d.offset(i, j)
	if err != nil {
		return 0, denseErrorf(ctxAt, i, j, err)
	}

	return d.data[off], nil
}

// Set stores v at (i, j) or returns ErrOutOfRange.
// Non-finite values are accepted: power iteration relies on NaN propagating.
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float32) error {
	off, err := d.offset(i, j)
	if err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}
	d.data[off] = v

	return nil
}

// Data returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (d *Dense) Data() []float32 {
	cp := make([]float32, len(d.data))
	copy(cp, d.data)

	return cp
}

// Clone returns a deep copy (new buffer, same shape and name).
// Mutations of the clone never reach the original.
// Complexity: O(r*c).
func (d *Dense) Clone() *Dense {
	cp := make([]float32, len(d.data))
	copy(cp, d.data)

	return &Dense{m: d.m, n: d.n, data: cp, name: d.name}
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Complexity: O(r*c).
func (d *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < d.m; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * d.n
		for j = 0; j < d.n; j++ {
			b.WriteString(strconv.FormatFloat(float64(d.data[base+j]), 'g', -1, 32))
			if j+1 < d.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

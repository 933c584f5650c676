// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No exported function
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
// Kernels wrap with fmt.Errorf("<Op>: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> iteration count -> numeric (singular, degenerate norm).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Index/At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible operand shapes: Add/Sub/Dot with
	// different shapes, MatMul where x.Cols != y.Rows, or a data buffer whose
	// length is not rows*cols.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidIterations is returned when a power-iteration count is negative.
	ErrInvalidIterations = errors.New("matrix: iteration count must be >= 0")

	// ErrDegenerateNorm is returned when normalization meets a zero or
	// non-finite norm. Only surfaced when WithDegenerateNormCheck is set;
	// otherwise NaN/Inf propagate through the result.
	ErrDegenerateNorm = errors.New("matrix: degenerate norm during normalization")

	// ErrSingular is returned when inversion meets a pivot below SingularEpsilon.
	ErrSingular = errors.New("matrix: singular matrix")
)

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name; kernels add their own op tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if d == nil. Complexity: O(1).
func ValidateNotNil(d *Dense) error {
	if d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.m != b.m {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Used by Add, Sub and Dot.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible is the composite NotNil(x) → NotNil(y) → x.Cols == y.Rows.
// Complexity: O(1).
func ValidateMulCompatible(x, y *Dense) error {
	if err := ValidateNotNil(x); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(y); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if x.n != y.m {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", x.m, x.n, y.m, y.n),
			ErrShapeMismatch,
		)
	}

	return nil
}

// ValidateSquare checks that d is square, reporting the violation as the given sentinel.
// Power iteration reports ErrShapeMismatch (x := A·x cannot be repeated);
// inversion reports ErrNonSquare.
func ValidateSquare(d *Dense, sentinel error) error {
	if err := ValidateNotNil(d); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if d.m != d.n {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", d.m, d.n), sentinel)
	}

	return nil
}

// ValidateIterations rejects negative iteration counts. Zero is legal.
func ValidateIterations(iterations int) error {
	if iterations < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateIterations(%d)", iterations), ErrInvalidIterations)
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package matrix - power iteration & successive deflation.
//
// Purpose:
//   - DominantEigens: one dominant eigenpair by repeated x := A·x, x := x/‖x‖.
//   - DominantEigenValue: the eigenvalue half of that pair.
//   - EigenValues: the approximate spectrum by deflation A := A − λ·v·vᵀ.
//
// Preconditions (documented, NOT checked):
//   - A has a real, strictly dominant eigenvalue for the pair to converge.
//   - Deflation is only valid for (near) symmetric A with an orthogonal
//     eigenbasis. Symmetry is never verified here.
//
// Determinism:
//   - Every call is a pure function of (A, iterations, options). Nothing is
//     cached between calls and the input is never mutated.

package matrix

import (
	"fmt"
	"math"
)

const (
	opDominantEigens = "DominantEigens"
	opEigenValues    = "EigenValues"
)

// DominantEigens approximates the dominant eigenpair of a square matrix.
// MAIN DESCRIPTION:
//   - Bounded iterative refinement: exactly `iterations` rounds unless
//     WithTolerance asks for an early stop.
//
// Implementation:
//   - Stage 1: validate non-nil, square (ErrShapeMismatch) and iterations ≥ 0.
//   - Stage 2: seed x as an n×1 column of ones.
//   - Stage 3: repeat: x := A·x; x := x · (1/‖x‖_F).
//   - Stage 4: eigenvalue := xᵀ·A·x (Rayleigh quotient; x is unit-norm once
//     at least one iteration ran).
//
// Behavior highlights:
//   - A zero intermediate norm yields NaN/Inf in the result unless
//     WithDegenerateNormCheck is set, in which case ErrDegenerateNorm is returned.
//   - With iterations == 0 the seed is not normalized, so the estimate is the
//     sum of all elements of A.
//
// Returns:
//   - float32: eigenvalue estimate.
//   - *Dense : eigenvector estimate (n×1, unit Frobenius norm).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrInvalidIterations, ErrDegenerateNorm.
//
// Complexity:
//   - Time O(iterations·n²), Space O(n).
func DominantEigens(a *Dense, iterations int, opts ...PowerOption) (float32, *Dense, error) {
	if err := ValidateSquare(a, ErrShapeMismatch); err != nil {
		return 0, nil, matrixErrorf(opDominantEigens, err)
	}
	if err := ValidateIterations(iterations); err != nil {
		return 0, nil, matrixErrorf(opDominantEigens, err)
	}
	cfg := gatherPowerOptions(opts...)

	x, err := ColumnOnes(a.n)
	if err != nil {
		return 0, nil, matrixErrorf(opDominantEigens, err)
	}

	var (
		iter      int
		norm      float32
		estimate  float32
		previous  float32
		haveFirst bool
	)
	for iter = 0; iter < iterations; iter++ {
		if x, err = MatMul(a, x); err != nil {
			return 0, nil, matrixErrorf(opDominantEigens, err)
		}
		norm = x.FrobeniusNorm()
		if cfg.checkNorm && !isUsableNorm(norm) {
			return 0, nil, matrixErrorf(opDominantEigens,
				fmt.Errorf("iteration %d: norm=%v: %w", iter+1, norm, ErrDegenerateNorm))
		}
		x.ScalarProduct(1 / norm)

		if !cfg.tracksEstimate() {
			continue
		}
		if estimate, err = rayleigh(a, x); err != nil {
			return 0, nil, matrixErrorf(opDominantEigens, err)
		}
		if cfg.observer != nil {
			cfg.observer(iter+1, estimate)
		}
		if cfg.tolerance > 0 && haveFirst && abs32(estimate-previous) <= cfg.tolerance {
			break
		}
		previous, haveFirst = estimate, true
	}

	if estimate, err = rayleigh(a, x); err != nil {
		return 0, nil, matrixErrorf(opDominantEigens, err)
	}
	x.name = "eigen_vector"

	return estimate, x, nil
}

// DominantEigenValue returns only the eigenvalue of DominantEigens.
// Errors: same as DominantEigens.
func DominantEigenValue(a *Dense, iterations int, opts ...PowerOption) (float32, error) {
	value, _, err := DominantEigens(a, iterations, opts...)
	if err != nil {
		return 0, err
	}

	return value, nil
}

// EigenValues approximates all n eigenvalues of a (near) symmetric matrix by
// successive deflation.
// MAIN DESCRIPTION:
//   - Work on a private copy W of A; for i in 0..n: (λ,v) := DominantEigens(W),
//     record λ at position i, then W := W − λ·v·vᵀ.
//
// Behavior highlights:
//   - Returns exactly n values, in extraction order (roughly decreasing |λ|).
//   - Options apply to every inner DominantEigens call; an Observer therefore
//     sees n consecutive runs.
//   - The first error aborts the whole computation; no partial result is returned.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrInvalidIterations, ErrDegenerateNorm.
//
// Complexity:
//   - Time O(n·(iterations·n² + n²)), Space O(n²).
func EigenValues(a *Dense, iterations int, opts ...PowerOption) ([]float32, error) {
	if err := ValidateSquare(a, ErrShapeMismatch); err != nil {
		return nil, matrixErrorf(opEigenValues, err)
	}
	if err := ValidateIterations(iterations); err != nil {
		return nil, matrixErrorf(opEigenValues, err)
	}

	n := a.n
	eigens := make([]float32, n)
	work := a.Clone().SetName("get eigens")

	var (
		lambda float32
		v, vt  *Dense
		outer  *Dense
		err    error
	)
	for i := 0; i < n; i++ {
		if lambda, v, err = DominantEigens(work, iterations, opts...); err != nil {
			return nil, matrixErrorf(opEigenValues, fmt.Errorf("step %d: %w", i, err))
		}
		eigens[i] = lambda

		// Deflate: W := W − λ·v·vᵀ.
		if vt, err = Transpose(v); err != nil {
			return nil, matrixErrorf(opEigenValues, fmt.Errorf("step %d: %w", i, err))
		}
		if outer, err = MatMul(v, vt); err != nil {
			return nil, matrixErrorf(opEigenValues, fmt.Errorf("step %d: %w", i, err))
		}
		outer.ScalarProduct(lambda)
		if work, err = Sub(work, outer); err != nil {
			return nil, matrixErrorf(opEigenValues, fmt.Errorf("step %d: %w", i, err))
		}
	}

	return eigens, nil
}

// rayleigh computes xᵀ·A·x as the single entry of a 1×1 product.
func rayleigh(a, x *Dense) (float32, error) {
	xt, err := Transpose(x)
	if err != nil {
		return 0, err
	}
	left, err := MatMul(xt, a)
	if err != nil {
		return 0, err
	}
	q, err := MatMul(left, x)
	if err != nil {
		return 0, err
	}

	return q.data[0], nil
}

// isUsableNorm reports whether dividing by norm keeps the vector finite.
func isUsableNorm(norm float32) bool {
	v := float64(norm)
	return norm != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

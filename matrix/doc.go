// Package matrix offers a dense float32 matrix and a power-iteration eigen engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float32 matrix that owns its buffer and enforces
//     len(data) == rows*cols at construction.
//   - Kernels: Add, Sub, Scale, Transpose, MatMul, Dot, Inverse, plus the
//     in-place ScalarProduct and the FrobeniusNorm / LpNorm / Trace reductions.
//   - DominantEigens / DominantEigenValue: power iteration with a fixed
//     iteration count and a Rayleigh-quotient estimate.
//   - EigenValues: the approximate spectrum of a (near) symmetric matrix by
//     successive deflation.
//
// Every failure is reported as a sentinel error from errors.go (match with
// errors.Is); no exported function panics on user input. Option constructors
// panic on nonsensical values, which are programmer errors.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom(3, 3, []float32{1, 1, 1, 1, 2, 3, 1, 3, 5})
//	lambda, _ := matrix.DominantEigenValue(a, 10) // ≈ 7.1623 (4 + √10)
//	spectrum, _ := matrix.EigenValues(a, 50)
package matrix

// Package spectra is a small dense linear-algebra toolkit built around
// power iteration: estimate the dominant eigenvalue of a square matrix,
// then peel off the rest of the spectrum one deflation step at a time.
//
// 🚀 What is spectra?
//
//	A float32, row-major, single-threaded library that brings together:
//		• Dense matrices: construction, bounds-checked access, Add/Sub, scaling
//		• Reductions: Frobenius and Lp norms, trace, element-wise dot
//		• Products: transpose and 2-D matrix multiplication
//		• Inverse: LU with partial pivoting
//		• Eigen: dominant eigenpair by power iteration, full spectrum by deflation
//		• Vectors and N-d tensors with the same norm semantics
//
// ✨ Why choose spectra?
//
//   - Small surface - every operation is a plain function or method
//   - Explicit errors - sentinels matched with errors.Is, never panics on input
//   - Observable - hook each power-iteration step with WithObserver
//
// Packages:
//
//	matrix/       Dense type, kernels, Inverse, power iteration & deflation
//	vector/       float32 Vector with Lp / Euclid / Max norms
//	tensor/       N-d Tensor with row-major Index, norms and Dot
//	cmd/spectra/ CLI reporting eigenvalues, trace, scaled inverse and convergence
//
// Quick example:
//
//	a, _ := matrix.NewDenseRows([][]float32{{1, 1, 1}, {1, 2, 3}, {1, 3, 5}})
//	lambda, _ := matrix.DominantEigenValue(a, 10) // ≈ 7.162 (4 + √10)
//
// Deflation assumes a symmetric input; for other matrices only the dominant
// eigenvalue is meaningful.
//
//	go get github.com/katalvlaran/spectra
package spectra

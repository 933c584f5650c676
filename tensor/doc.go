// SPDX-License-Identifier: MIT

// Package tensor provides an N-dimensional float32 tensor stored row-major.
//
// A Tensor pairs a flat Data buffer with a Shape. Element (c0, c1, ..., ck)
// lives at Σ c_i·stride_i where stride_k = 1 and stride_i = stride_{i+1}·shape_{i+1}.
//
// ✨ Key features:
//   - New validates that len(data) equals the product of the dimensions.
//   - Index checks rank and per-axis bounds and returns sentinel errors.
//   - LpNorm / FrobeniusNorm / Dot mirror the matrix package semantics.
//
// Two-dimensional products live in package matrix; Tensor has no matmul.
package tensor

// SPDX-License-Identifier: MIT

// Package vector provides a minimal float32 vector with the norms the rest of
// spectra reports: the raw power-sum Lp norm, its Euclidean special case and
// the max norm.
//
// ⚙️ Usage:
//
//	v := vector.New("weights", 3, 4)
//	v.EuclidNorm() // 5
//	v.LpNorm(1)    // 7
//
// LpNorm is (Σ x^p)^(1/p) without absolute values, matching matrix.Dense.LpNorm;
// negative data with odd p may produce NaN.
package vector

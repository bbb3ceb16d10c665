// SPDX-License-Identifier: MIT

package numutil

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// InvSqrtH computes the inverse square root of a symmetric positive
// definite matrix: with x = V·diag(λ)·Vᵀ, the result is
// V·diag(λ^{-1/2})·Vᵀ, so result·x·result ≈ I.
//
// The input is not mutated; the result is a freshly allocated Dense.
//
// Errors:
//   - ErrEmptyMatrix          — x is nil or zero-sized.
//   - ErrEigenFailed          — the eigendecomposition did not converge.
//   - ErrNotPositiveDefinite  — an eigenvalue ≤ 0 was found.
func InvSqrtH(x *mat.SymDense) (*mat.Dense, error) {
	if x == nil {
		return nil, numutilErrorf(opInvSqrtH, ErrEmptyMatrix)
	}
	n, _ := x.Dims()
	if n == 0 {
		return nil, numutilErrorf(opInvSqrtH, ErrEmptyMatrix)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(x, true); !ok {
		return nil, numutilErrorf(opInvSqrtH, ErrEigenFailed)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Scale eigenvector columns by λ^{-1/2}, rejecting non-positive
	// eigenvalues before any allocation-heavy work continues.
	scaled := mat.NewDense(n, n, nil)
	var i, j int
	var s float64
	for j = 0; j < n; j++ {
		if vals[j] <= 0 {
			return nil, numutilErrorf(opInvSqrtH, ErrNotPositiveDefinite)
		}
		s = 1 / math.Sqrt(vals[j])
		for i = 0; i < n; i++ {
			scaled.Set(i, j, vecs.At(i, j)*s)
		}
	}

	var out mat.Dense
	out.Mul(scaled, vecs.T())

	return &out, nil
}

// SPDX-License-Identifier: MIT

package numutil

import "gonum.org/v1/gonum/mat"

// machEps is the float64 machine epsilon used in the rank cutoff.
const machEps = 2.220446049250313e-16

// HasConstant reports whether the regressor matrix x contains a constant
// column, explicit or implicit.
//
// Detection runs in three stages, first match wins:
//  1. an all-ones column → (true, its index);
//  2. a flat non-zero column (every entry identical, not all zero) →
//     (true, its index);
//  3. rank([1|x]) == rank(x), i.e. the column span already contains the
//     constant vector (complementary dummy sets) → (true, -1).
//
// loc is -1 whenever no single column is the constant. Ranks use an SVD
// with the standard max(r,c)·eps·σmax cutoff.
//
// Errors:
//   - ErrEmptyMatrix — x is nil or zero-sized.
//   - ErrSVDFailed   — a rank computation did not converge.
func HasConstant(x mat.Matrix) (bool, int, error) {
	if x == nil {
		return false, -1, numutilErrorf(opHasConstant, ErrEmptyMatrix)
	}
	r, c := x.Dims()
	if r == 0 || c == 0 {
		return false, -1, numutilErrorf(opHasConstant, ErrEmptyMatrix)
	}

	// Stage 1: explicit all-ones column, fixed j→i order.
	var i, j int
	for j = 0; j < c; j++ {
		ones := true
		for i = 0; i < r; i++ {
			if x.At(i, j) != 1 {
				ones = false

				break
			}
		}
		if ones {
			return true, j, nil
		}
	}

	// Stage 2: flat non-zero column (all entries equal the first).
	var v0 float64
	for j = 0; j < c; j++ {
		v0 = x.At(0, j)
		flat := true
		for i = 1; i < r; i++ {
			if x.At(i, j) != v0 {
				flat = false

				break
			}
		}
		if flat && v0 != 0 {
			return true, j, nil
		}
	}

	// Stage 3: implicit constant. Augment with a leading ones column; if
	// the rank does not grow, the span already contains the constant.
	aug := mat.NewDense(r, c+1, nil)
	for i = 0; i < r; i++ {
		aug.Set(i, 0, 1)
		for j = 0; j < c; j++ {
			aug.Set(i, j+1, x.At(i, j))
		}
	}
	rankX, err := matrixRank(x)
	if err != nil {
		return false, -1, numutilErrorf(opHasConstant, err)
	}
	rankAug, err := matrixRank(aug)
	if err != nil {
		return false, -1, numutilErrorf(opHasConstant, err)
	}

	return rankX == rankAug, -1, nil
}

// matrixRank computes the numerical rank of a via singular values.
func matrixRank(a mat.Matrix) (int, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return 0, ErrSVDFailed
	}
	sv := svd.Values(nil)
	if len(sv) == 0 {
		return 0, nil
	}

	// Singular values arrive in descending order; sv[0] is σmax.
	r, c := a.Dims()
	tol := float64(max(r, c)) * machEps * sv[0]
	rank := 0
	for _, s := range sv {
		if s > tol {
			rank++
		}
	}

	return rank, nil
}

// SPDX-License-Identifier: MIT
// Package numutil: sentinel error set. All helpers return these sentinels
// (wrapped with an operation tag at the facade) and tests check them via
// errors.Is. No helper panics on user-triggered error conditions.

package numutil

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMatrix indicates a nil or zero-sized matrix input.
	ErrEmptyMatrix = errors.New("numutil: matrix is nil or empty")

	// ErrDimensionMismatch indicates ragged or incompatible input dimensions.
	ErrDimensionMismatch = errors.New("numutil: dimension mismatch")

	// ErrEigenFailed indicates an eigendecomposition that did not converge.
	ErrEigenFailed = errors.New("numutil: eigendecomposition failed")

	// ErrSVDFailed indicates a singular value decomposition that did not
	// converge during a rank computation.
	ErrSVDFailed = errors.New("numutil: singular value decomposition failed")

	// ErrNotPositiveDefinite indicates a matrix with a non-positive
	// eigenvalue where positive definiteness is required.
	ErrNotPositiveDefinite = errors.New("numutil: matrix is not positive definite")
)

// Operation name constants for unified error wrapping.
const (
	opHasConstant  = "HasConstant"
	opInvSqrtH     = "InvSqrtH"
	opPanelToFrame = "PanelToFrame"
)

// numutilErrorf wraps err with an operation tag, preserving the sentinel
// for errors.Is. Call only with err != nil.
func numutilErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

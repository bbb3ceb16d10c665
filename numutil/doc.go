// SPDX-License-Identifier: MIT
// Package numutil collects the small numeric and formatting helpers the
// toolkit's estimators lean on. Each helper is an independent leaf with its
// own input/output contract; none of them depends on the attrmap container.
//
// The helpers:
//
//   - HasConstant        — detect an explicit or implicit constant column
//     in a regressor matrix (rank test catches complementary dummies).
//   - InvSqrtH           — inverse square root of a symmetric positive
//     definite matrix via eigendecomposition.
//   - EnsureUniqueColumn — derive a column name that does not collide with
//     an existing set.
//   - FormatWide         — pack labels into display rows within a width
//     budget.
//   - MissingWarning     — count missing observations and warn through a
//     pluggable, gateable handler.
//   - PanelToFrame       — reshape a 3-D panel into a long-format table.
//
// Linear algebra is delegated to gonum/mat; all validation is fail-fast
// with package-level sentinel errors checked via errors.Is.
package numutil

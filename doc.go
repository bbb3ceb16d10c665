// Package statkit is a small toolkit for statistical estimation support:
// an ordered, dual-access result container plus the numeric and formatting
// helpers that estimation code leans on.
//
// 🚀 What is statkit?
//
//	A focused library that brings together:
//		• attrmap  — insertion-ordered map with item-style and attribute-style
//		  access over one backing store, and a protected protocol namespace
//		• stattest — immutable hypothesis-test results (Wald statistic with
//		  chi-squared or F reference distribution, plus invalid/inapplicable
//		  sentinels) that publish their critical values through attrmap
//		• numutil  — leaf utilities: constant-column detection, symmetric
//		  inverse square root, unique column naming, wide formatting,
//		  missing-data warnings, panel reshaping
//
// ✨ Why choose statkit?
//
//   - Deterministic – insertion order is the iteration order, everywhere
//   - Fail-fast – sentinel errors per package, matched with errors.Is
//   - Single-threaded by contract – no hidden locks, callers own exclusion
//
// Under the hood, everything is organized under three subpackages:
//
//	attrmap/  — the ordered dual-access container (the toolkit's core)
//	stattest/ — test-statistic value objects built on gonum distributions
//	numutil/  — numeric & formatting helpers built on gonum/mat
//
//	go get github.com/quantfold/statkit
package statkit

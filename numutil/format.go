// SPDX-License-Identifier: MIT
// String-shaping helpers: unique column naming and wide-list formatting.

package numutil

import "unicode/utf8"

// defaultAddition wraps colliding column names when no addition is given.
const defaultAddition = "_"

// sepWidth is the display width of the ", " separator FormatWide assumes
// between labels on one row.
const sepWidth = 2

// EnsureUniqueColumn returns a column name derived from col that does not
// collide with existing: the candidate is wrapped with addition (default
// "_" when empty) until it is unique. "a" against {a, b} yields "_a_";
// against {a, _a_} it yields "__a__".
func EnsureUniqueColumn(col string, existing []string, addition string) string {
	if addition == "" {
		addition = defaultAddition
	}
	seen := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		seen[name] = struct{}{}
	}

	out := col
	for {
		if _, dup := seen[out]; !dup {
			return out
		}
		out = addition + out + addition
	}
}

// FormatWide packs labels into display rows whose joined width — label
// widths plus ", " separators — stays within width. A label's width is its
// rune count, so non-ASCII names occupy what they display. Labels keep
// their input order; a label longer than the budget gets a row of its own.
// A width below 1 is treated as 1.
func FormatWide(labels []string, width int) [][]string {
	if width < 1 {
		width = 1
	}

	var (
		rows      [][]string
		row       []string
		lineWidth int
	)
	for _, label := range labels {
		w := utf8.RuneCountInString(label)
		if len(row) > 0 && lineWidth+sepWidth+w > width {
			rows = append(rows, row)
			row = nil
			lineWidth = 0
		}
		if len(row) > 0 {
			lineWidth += sepWidth
		}
		row = append(row, label)
		lineWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return rows
}

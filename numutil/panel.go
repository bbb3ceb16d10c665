// SPDX-License-Identifier: MIT

package numutil

import "math"

// Frame is a long-format table produced from a 3-D panel: one row per
// (outer, inner) index pair and one column per panel item.
type Frame struct {
	// Columns are the item names, one per data column.
	Columns []string

	// Outer holds the first index level of each row.
	Outer []string

	// Inner holds the second index level of each row.
	Inner []string

	// Data is row-major: Data[i] has one value per column.
	Data [][]float64
}

// Rows returns the number of rows in the frame.
func (f *Frame) Rows() int { return len(f.Data) }

// PanelToFrame reshapes the 3-D panel x — indexed [item][outer][inner] —
// into a long-format Frame.
//
// With swap=false the row order is outer-major (for each outer label, every
// inner label) and rows containing NaN are dropped, the conventional
// filtered long view. With swap=true the index levels trade places: rows
// are inner-major, the Outer column carries the inner labels, and no rows
// are dropped.
//
// Errors:
//   - ErrDimensionMismatch — x is empty, ragged, or its extents disagree
//     with the label slices.
func PanelToFrame(x [][][]float64, items, outer, inner []string, swap bool) (*Frame, error) {
	if len(x) == 0 || len(x) != len(items) {
		return nil, numutilErrorf(opPanelToFrame, ErrDimensionMismatch)
	}
	for _, plane := range x {
		if len(plane) != len(outer) {
			return nil, numutilErrorf(opPanelToFrame, ErrDimensionMismatch)
		}
		for _, row := range plane {
			if len(row) != len(inner) {
				return nil, numutilErrorf(opPanelToFrame, ErrDimensionMismatch)
			}
		}
	}

	k := len(items)
	f := &Frame{Columns: append([]string(nil), items...)}

	// gather copies the column values at (j, l); reports whether any is NaN.
	gather := func(j, l int) ([]float64, bool) {
		vals := make([]float64, k)
		hasNaN := false
		for it := 0; it < k; it++ {
			vals[it] = x[it][j][l]
			if math.IsNaN(vals[it]) {
				hasNaN = true
			}
		}

		return vals, hasNaN
	}

	if !swap {
		for j, oLabel := range outer {
			for l, iLabel := range inner {
				vals, hasNaN := gather(j, l)
				if hasNaN {
					continue // filtered view drops incomplete observations
				}
				f.Outer = append(f.Outer, oLabel)
				f.Inner = append(f.Inner, iLabel)
				f.Data = append(f.Data, vals)
			}
		}

		return f, nil
	}

	for l, iLabel := range inner {
		for j, oLabel := range outer {
			vals, _ := gather(j, l)
			f.Outer = append(f.Outer, iLabel)
			f.Inner = append(f.Inner, oLabel)
			f.Data = append(f.Data, vals)
		}
	}

	return f, nil
}

package numutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/statkit/numutil"
)

// testPanel builds a 2-item 2×2 panel: item "a" holds 1..4, item "b" 5..8.
func testPanel() [][][]float64 {
	return [][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	}
}

// TestPanelToFrame_Default verifies outer-major row order and per-row
// column gathering.
func TestPanelToFrame_Default(t *testing.T) {
	f, err := numutil.PanelToFrame(testPanel(), []string{"a", "b"}, []string{"r0", "r1"}, []string{"c0", "c1"}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, f.Columns)
	assert.Equal(t, 4, f.Rows())
	assert.Equal(t, []string{"r0", "r0", "r1", "r1"}, f.Outer)
	assert.Equal(t, []string{"c0", "c1", "c0", "c1"}, f.Inner)
	assert.Equal(t, [][]float64{{1, 5}, {2, 6}, {3, 7}, {4, 8}}, f.Data)
}

// TestPanelToFrame_DropsNaN verifies that the filtered view drops any row
// with a missing value.
func TestPanelToFrame_DropsNaN(t *testing.T) {
	x := testPanel()
	x[0][0][1] = math.NaN()

	f, err := numutil.PanelToFrame(x, []string{"a", "b"}, []string{"r0", "r1"}, []string{"c0", "c1"}, false)
	require.NoError(t, err)

	assert.Equal(t, 3, f.Rows(), "the (r0,c1) row carries a NaN and must drop")
	assert.Equal(t, []string{"r0", "r1", "r1"}, f.Outer)
	assert.Equal(t, []string{"c0", "c0", "c1"}, f.Inner)
}

// TestPanelToFrame_Swap verifies the swapped view: inner-major order,
// index levels traded, no NaN filtering.
func TestPanelToFrame_Swap(t *testing.T) {
	x := testPanel()
	x[0][0][1] = math.NaN()

	f, err := numutil.PanelToFrame(x, []string{"a", "b"}, []string{"r0", "r1"}, []string{"c0", "c1"}, true)
	require.NoError(t, err)

	assert.Equal(t, 4, f.Rows(), "swapped view keeps incomplete rows")
	assert.Equal(t, []string{"c0", "c0", "c1", "c1"}, f.Outer, "index levels swap")
	assert.Equal(t, []string{"r0", "r1", "r0", "r1"}, f.Inner)
	assert.Equal(t, []float64{1, 5}, f.Data[0])
	assert.True(t, math.IsNaN(f.Data[2][0]))
}

// TestPanelToFrame_DimensionMismatch verifies fail-fast validation of
// ragged input and wrong label extents.
func TestPanelToFrame_DimensionMismatch(t *testing.T) {
	_, err := numutil.PanelToFrame(nil, nil, nil, nil, false)
	assert.ErrorIs(t, err, numutil.ErrDimensionMismatch)

	_, err = numutil.PanelToFrame(testPanel(), []string{"a"}, []string{"r0", "r1"}, []string{"c0", "c1"}, false)
	assert.ErrorIs(t, err, numutil.ErrDimensionMismatch, "item label count must match")

	_, err = numutil.PanelToFrame(testPanel(), []string{"a", "b"}, []string{"r0"}, []string{"c0", "c1"}, false)
	assert.ErrorIs(t, err, numutil.ErrDimensionMismatch, "outer label count must match")

	ragged := testPanel()
	ragged[1][1] = []float64{7}
	_, err = numutil.PanelToFrame(ragged, []string{"a", "b"}, []string{"r0", "r1"}, []string{"c0", "c1"}, false)
	assert.ErrorIs(t, err, numutil.ErrDimensionMismatch, "ragged rows must reject")
}

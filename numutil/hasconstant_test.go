package numutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/quantfold/statkit/numutil"
)

// TestHasConstant_ExplicitOnes verifies stage 1: a literal ones column.
func TestHasConstant_ExplicitOnes(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 4,
	})
	has, loc, err := numutil.HasConstant(x)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 0, loc)
}

// TestHasConstant_FlatNonZero verifies stage 2: a flat column of 2s counts
// as a constant even though it is not literally ones.
func TestHasConstant_FlatNonZero(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		2, 1,
		2, 2,
		2, 3,
		2, 4,
	})
	has, loc, err := numutil.HasConstant(x)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 0, loc)
}

// TestHasConstant_ImplicitDummies verifies stage 3: complementary dummy
// columns span the constant vector without any single column being flat.
func TestHasConstant_ImplicitDummies(t *testing.T) {
	// col0 ∈ {0,2} and col1 ∈ {1,0} alternate so col0/2 + col1 == 1.
	x := mat.NewDense(6, 3, []float64{
		0, 1, 3,
		2, 0, 1,
		0, 1, 4,
		2, 0, 1,
		0, 1, 5,
		2, 0, 9,
	})
	has, loc, err := numutil.HasConstant(x)
	require.NoError(t, err)
	assert.True(t, has, "span of complementary dummies contains the constant")
	assert.Equal(t, -1, loc, "no single column is the constant")
}

// TestHasConstant_NoConstant verifies the negative case, including an
// all-zero column, which must not count as constant.
func TestHasConstant_NoConstant(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 1,
		2, 4,
		3, 9,
		4, 16,
	})
	has, loc, err := numutil.HasConstant(x)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Equal(t, -1, loc)

	zeros := mat.NewDense(4, 2, []float64{
		0, 1,
		0, 2,
		0, 3,
		0, 4,
	})
	has, _, err = numutil.HasConstant(zeros)
	require.NoError(t, err)
	assert.False(t, has, "an all-zero column is not a constant")
}

// TestHasConstant_Empty verifies fail-fast validation.
func TestHasConstant_Empty(t *testing.T) {
	_, _, err := numutil.HasConstant(nil)
	assert.ErrorIs(t, err, numutil.ErrEmptyMatrix)
}

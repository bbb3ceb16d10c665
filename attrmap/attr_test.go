package attrmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/statkit/attrmap"
)

// TestMap_DualAccessEquivalence verifies that for identifier-valid keys the
// item surface and the attribute surface observe and mutate the identical
// stored value.
func TestMap_DualAccessEquivalence(t *testing.T) {
	m := attrmap.New()
	require.NoError(t, m.Set("alpha", 0.05))

	// Item write, attribute read.
	got, err := m.GetAttr("alpha")
	require.NoError(t, err)
	assert.Equal(t, 0.05, got)

	// Attribute write on an existing key mutates in place.
	require.NoError(t, m.SetAttr("alpha", 0.01))
	viaItem, err := m.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, 0.01, viaItem, "attribute write must be visible on the item path")
	assert.Equal(t, []any{"alpha"}, m.Keys(), "in-place overwrite keeps the single slot")

	// Attribute write on a fresh name appends at the end of the order.
	require.NoError(t, m.SetAttr("beta", 2))
	assert.Equal(t, []any{"alpha", "beta"}, m.Keys())
	viaItem, err = m.Get("beta")
	require.NoError(t, err)
	assert.Equal(t, 2, viaItem)
}

// TestMap_AccessModeErrorKinds verifies that a missing key reports a
// different error kind per access surface, even though both consult the
// same backing store.
func TestMap_AccessModeErrorKinds(t *testing.T) {
	m := attrmap.New()

	_, itemErr := m.Get("ghost")
	_, attrErr := m.GetAttr("ghost")

	assert.ErrorIs(t, itemErr, attrmap.ErrKeyNotFound)
	assert.ErrorIs(t, attrErr, attrmap.ErrAttrNotFound)
	assert.NotErrorIs(t, itemErr, attrmap.ErrAttrNotFound, "kinds must stay distinct")
	assert.NotErrorIs(t, attrErr, attrmap.ErrKeyNotFound, "kinds must stay distinct")
}

// TestMap_SetAttrSentinel verifies that the store sentinel is rejected on
// the attribute path with an attribute-style error, before any mutation.
func TestMap_SetAttrSentinel(t *testing.T) {
	m := attrmap.New()
	err := m.SetAttr("__store__", nil)
	assert.ErrorIs(t, err, attrmap.ErrReservedAttr)
	assert.Equal(t, 0, m.Len(), "rejection must leave no partial state")
}

// TestMap_DelAttr verifies attribute-style deletion and its error kind.
func TestMap_DelAttr(t *testing.T) {
	m := attrmap.New()
	require.NoError(t, m.Set("one", "one"))

	require.NoError(t, m.DelAttr("one"))
	assert.False(t, m.Has("one"), "attribute delete must reach the shared store")
	assert.ErrorIs(t, m.DelAttr("one"), attrmap.ErrAttrNotFound)
}

// TestMap_AttrNames verifies that exactly the identifier-valid string keys
// are enumerated, in insertion order.
func TestMap_AttrNames(t *testing.T) {
	m := attrmap.New()
	require.NoError(t, m.Set("valid_name", 1))
	require.NoError(t, m.Set(42, 2))
	require.NoError(t, m.Set("with space", 3))
	require.NoError(t, m.Set("_x9", 4))
	require.NoError(t, m.Set("9lives", 5))

	assert.Equal(t, []string{"valid_name", "_x9"}, m.AttrNames())
}

// TestValidAttrName spot-checks the identifier syntax predicate.
func TestValidAttrName(t *testing.T) {
	valid := []string{"a", "_", "abc_9", "_x9", "Σ"}
	for _, s := range valid {
		assert.True(t, attrmap.ValidAttrName(s), "%q should be valid", s)
	}
	invalid := []string{"", "9a", "a b", "a-b", "a.b", "10%"}
	for _, s := range invalid {
		assert.False(t, attrmap.ValidAttrName(s), "%q should be invalid", s)
	}
}

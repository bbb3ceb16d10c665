// This file declares the Pair entry type, the Map container, the fixed
// reserved-name set, and the New / FromPairs constructors.
package attrmap

// storeSentinel is the internal name denoting the backing store itself.
// It is the one name forbidden on both access surfaces.
const storeSentinel = "__store__"

// reservedNames is the fixed protocol-surface set, enumerated once at
// package definition and never mutated at runtime: every name the
// container's own protocol exposes, plus the store sentinel. Keeping the
// set as a literal table (rather than deriving it by reflection) keeps the
// guarantee static and auditable.
var reservedNames = map[string]struct{}{
	"keys":        {},
	"values":      {},
	"items":       {},
	"get":         {},
	"pop":         {},
	"popitem":     {},
	"update":      {},
	"copy":        {},
	"clear":       {},
	storeSentinel: {},
}

// Reserved reports whether name belongs to the fixed reserved-name set and
// is therefore forbidden as an item-style key.
func Reserved(name string) bool {
	_, ok := reservedNames[name]

	return ok
}

// Pair is a single key/value entry of a Map.
type Pair struct {
	// Key is any comparable value (string, integer, comparable struct or
	// array — heterogeneous key types within one Map are permitted).
	Key any

	// Value is arbitrary. The Map owns its value slots, not the values:
	// copying the Map copies the slot set, never the contained values.
	Value any
}

// Map is an insertion-ordered associative container with a dictionary-style
// surface (Set/Get/Delete) and an attribute-style surface (SetAttr/GetAttr/
// DelAttr) aliasing the same backing store.
//
// The zero value is not usable; construct with New or FromPairs.
// Map is not safe for concurrent mutation.
type Map struct {
	store map[any]any // key → value
	order []any       // keys in first-insertion order
}

// New returns an empty Map.
// Complexity: O(1)
func New() *Map {
	return &Map{store: make(map[any]any)}
}

// FromPairs builds a Map from pairs, preserving their order. A duplicate
// key keeps its first position and takes the last value. Reserved-name and
// non-comparable keys are rejected with no Map returned.
func FromPairs(pairs ...Pair) (*Map, error) {
	m := New()
	for _, p := range pairs {
		if err := m.Set(p.Key, p.Value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

package attrmap

import "errors"

// Sentinel errors for attrmap operations. All are plain sentinels checked
// with errors.Is; the item path and the attribute path report distinct
// kinds so callers can keep existence idioms per surface.
var (
	// ErrKeyNotFound indicates an item-style lookup or delete on an absent key.
	ErrKeyNotFound = errors.New("attrmap: key not found")

	// ErrAttrNotFound indicates an attribute-style lookup or delete on an
	// absent name. Deliberately distinct from ErrKeyNotFound.
	ErrAttrNotFound = errors.New("attrmap: attribute not found")

	// ErrReservedKey indicates an item-style set whose key collides with a
	// reserved protocol name. Rejected before any mutation.
	ErrReservedKey = errors.New("attrmap: key collides with a reserved name")

	// ErrReservedAttr indicates an attribute-style set on the store sentinel.
	// Rejected before any mutation.
	ErrReservedAttr = errors.New("attrmap: attribute name is reserved")

	// ErrEmptyMap indicates PopItem on a map with no entries.
	ErrEmptyMap = errors.New("attrmap: map is empty")

	// ErrKeyNotComparable indicates a key whose dynamic type cannot be used
	// as a map key (slices, maps, functions, types containing them).
	ErrKeyNotComparable = errors.New("attrmap: key type is not comparable")
)

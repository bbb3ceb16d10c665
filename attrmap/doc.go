// Package attrmap provides Map, an insertion-ordered associative container
// with two access surfaces over a single backing store: item-style access
// keyed by any comparable value, and attribute-style access for keys that
// are syntactically valid attribute names.
//
// 🚀 What is attrmap?
//
//	An ordered map for named results and parameters:
//	  • iteration order is insertion order, always (reads never reorder)
//	  • item access and attribute access observe the same stored values —
//	    a write through one path is immediately visible through the other
//	  • a fixed reserved-name set keeps user data from colliding with the
//	    container's own protocol surface
//	  • PopItem is FIFO: it removes the earliest-inserted pair, so the
//	    container can double as a queue of named results
//
// ⚙️ Usage:
//
//	m := attrmap.New()
//	_ = m.Set("alpha", 0.05)
//	_ = m.SetAttr("nobs", 412)
//
//	v, err := m.Get("alpha")      // item path: ErrKeyNotFound when absent
//	v, err = m.GetAttr("nobs")    // attribute path: ErrAttrNotFound when absent
//
//	for _, p := range m.Items() { // insertion order
//		fmt.Println(p.Key, p.Value)
//	}
//
// Error discipline: missing keys on the item path report ErrKeyNotFound,
// missing names on the attribute path report ErrAttrNotFound — distinct
// kinds by design, even though both consult the same store. Reserved-name
// violations are rejected before any mutation (ErrReservedKey on the item
// path, ErrReservedAttr on the attribute path).
//
// Map is not safe for unsynchronized concurrent mutation; callers needing
// concurrent access must impose their own exclusion around the whole map.
package attrmap

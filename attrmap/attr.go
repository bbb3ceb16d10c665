// This file implements the attribute-style surface of Map. Go has no
// dynamic attribute interception, so the surface is a thin, explicitly
// named accessor layer over the same backing store as the item-style
// surface: an intentional interface narrowing, not an emulation.
package attrmap

import "unicode"

// ValidAttrName reports whether name is a syntactically valid attribute
// name: a letter or underscore followed by letters, digits or underscores.
func ValidAttrName(name string) bool {
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return name != ""
}

// GetAttr returns the value stored under name via the attribute surface.
// It consults the same backing store as Get, but an absent name reports
// ErrAttrNotFound — never ErrKeyNotFound — so attribute-style existence
// idioms keep working.
func (m *Map) GetAttr(name string) (any, error) {
	v, ok := m.store[name]
	if !ok {
		return nil, ErrAttrNotFound
	}

	return v, nil
}

// SetAttr stores value under name via the attribute surface. A genuinely
// new name is appended at the end of the iteration order; an existing name
// (whether it arrived via Set or SetAttr) is overwritten in place.
//
// Only the store sentinel is rejected here (ErrReservedAttr, before any
// mutation). The remaining reserved names are an item-path restriction:
// the two surfaces enforce the namespace asymmetrically, exactly as the
// container's protocol requires.
func (m *Map) SetAttr(name string, value any) error {
	if name == storeSentinel {
		return ErrReservedAttr
	}
	m.set(name, value)

	return nil
}

// DelAttr removes name via the attribute surface.
// Errors: ErrAttrNotFound when name is absent.
func (m *Map) DelAttr(name string) error {
	if _, ok := m.store[name]; !ok {
		return ErrAttrNotFound
	}
	m.remove(name)

	return nil
}

// AttrNames returns, in insertion order, every stored key that is a
// syntactically valid attribute name. Reflection-style tooling can use it
// to enumerate the dynamic attribute surface.
func (m *Map) AttrNames() []string {
	names := make([]string, 0, len(m.order))
	for _, k := range m.order {
		if s, ok := k.(string); ok && ValidAttrName(s) {
			names = append(names, s)
		}
	}

	return names
}

// This file implements the item-style surface of Map: set/get/delete,
// order-preserving views, pop variants, update, copy, clear and the
// diagnostic string form.
package attrmap

import (
	"fmt"
	"reflect"
	"strings"
)

// comparableKey reports whether key can back a map entry. A nil key is
// permitted; a non-nil key must be comparable at the value level, otherwise
// the built-in map would panic at lookup time. The check must be on the
// value, not the type: an interface-typed element (say [1]any wrapping a
// slice) has a comparable type but an unhashable value.
func comparableKey(key any) bool {
	if key == nil {
		return true
	}

	return reflect.ValueOf(key).Comparable()
}

// guardKey validates key for the item-style write path: comparable dynamic
// type and no collision with the reserved-name set. Runs before any
// mutation so rejection is always atomic.
func guardKey(key any) error {
	if !comparableKey(key) {
		return ErrKeyNotComparable
	}
	if s, ok := key.(string); ok {
		if _, bad := reservedNames[s]; bad {
			return ErrReservedKey
		}
	}

	return nil
}

// set performs the unguarded insert shared by Set, SetAttr and UpdateItems:
// a genuinely new key is appended to the order, an existing key keeps its
// original position and only the value changes.
func (m *Map) set(key, value any) {
	if _, exists := m.store[key]; !exists {
		m.order = append(m.order, key)
	}
	m.store[key] = value
}

// remove drops key from the store and from the insertion order.
// Complexity: O(n) for the order scan.
func (m *Map) remove(key any) {
	delete(m.store, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)

			break
		}
	}
}

// Set stores value under key. A new key is appended at the end of the
// iteration order; an existing key is overwritten in place.
//
// Errors:
//   - ErrReservedKey       — key equals a reserved protocol name.
//   - ErrKeyNotComparable  — key's dynamic type cannot back a map entry.
func (m *Map) Set(key, value any) error {
	if err := guardKey(key); err != nil {
		return err
	}
	m.set(key, value)

	return nil
}

// Get returns the value stored under key.
// Errors: ErrKeyNotFound when key is absent (a key whose type could never
// be stored is simply absent).
func (m *Map) Get(key any) (any, error) {
	if !comparableKey(key) {
		return nil, ErrKeyNotFound
	}
	v, ok := m.store[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return v, nil
}

// GetDefault returns the value stored under key, or def when key is absent.
// It never fails and never mutates the map.
func (m *Map) GetDefault(key, def any) any {
	if !comparableKey(key) {
		return def
	}
	if v, ok := m.store[key]; ok {
		return v
	}

	return def
}

// Has reports whether key is present.
func (m *Map) Has(key any) bool {
	if !comparableKey(key) {
		return false
	}
	_, ok := m.store[key]

	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.order) }

// Delete removes key and its slot in the iteration order.
// Errors: ErrKeyNotFound when key is absent.
func (m *Map) Delete(key any) error {
	if !m.Has(key) {
		return ErrKeyNotFound
	}
	m.remove(key)

	return nil
}

// Keys returns the keys in insertion order. The slice is freshly allocated;
// mutating it does not affect the map.
func (m *Map) Keys() []any {
	out := make([]any, len(m.order))
	copy(out, m.order)

	return out
}

// Values returns the values in insertion order of their keys.
func (m *Map) Values() []any {
	out := make([]any, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.store[k])
	}

	return out
}

// Items returns the (key, value) pairs in insertion order.
func (m *Map) Items() []Pair {
	out := make([]Pair, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, Pair{Key: k, Value: m.store[k]})
	}

	return out
}

// Pop removes key and returns its value.
// Errors: ErrKeyNotFound when key is absent; the map is not mutated.
func (m *Map) Pop(key any) (any, error) {
	v, err := m.Get(key)
	if err != nil {
		return nil, err
	}
	m.remove(key)

	return v, nil
}

// PopDefault removes key and returns its value, or returns def without any
// mutation when key is absent.
func (m *Map) PopDefault(key, def any) any {
	v, err := m.Get(key)
	if err != nil {
		return def
	}
	m.remove(key)

	return v
}

// PopItem removes and returns the earliest-inserted remaining pair — FIFO,
// not the last-in-first-out convention of most ordered maps. The queue-like
// behavior is part of the contract; dependent code relies on it.
// Errors: ErrEmptyMap when the map has no entries.
func (m *Map) PopItem() (Pair, error) {
	if len(m.order) == 0 {
		return Pair{}, ErrEmptyMap
	}
	k := m.order[0]
	p := Pair{Key: k, Value: m.store[k]}
	m.remove(k)

	return p, nil
}

// UpdateItems merges items in order: an existing key is overwritten in
// place (position unchanged), a new key is appended at the end. Validation
// is all-or-nothing — every incoming key is checked against the reserved
// set before the first write, so a rejected batch leaves the map untouched.
//
// Errors: ErrReservedKey, ErrKeyNotComparable.
func (m *Map) UpdateItems(items []Pair) error {
	for _, p := range items {
		if err := guardKey(p.Key); err != nil {
			return err
		}
	}
	for _, p := range items {
		m.set(p.Key, p.Value)
	}

	return nil
}

// Update merges other into m following other's iteration order, with
// UpdateItems semantics. A nil other is a no-op.
func (m *Map) Update(other *Map) error {
	if other == nil {
		return nil
	}

	return m.UpdateItems(other.Items())
}

// Copy returns an independent Map with identical order and values. The copy
// is shallow: value ownership is shared per the value's own semantics.
func (m *Map) Copy() *Map {
	c := &Map{
		store: make(map[any]any, len(m.store)),
		order: make([]any, len(m.order)),
	}
	copy(c.order, m.order)
	for k, v := range m.store {
		c.store[k] = v
	}

	return c
}

// Clear removes every entry. The reserved-name set is unaffected — it
// belongs to the package, not the instance.
func (m *Map) Clear() {
	m.store = make(map[any]any)
	m.order = nil
}

// String renders the entries in insertion order for diagnostics.
// The form is not guaranteed to round-trip.
func (m *Map) String() string {
	var b strings.Builder
	b.WriteString("attrmap.Map{")
	for i, k := range m.order {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", k, m.store[k])
	}
	b.WriteByte('}')

	return b.String()
}

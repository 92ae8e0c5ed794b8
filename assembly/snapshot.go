// SPDX-License-Identifier: MIT
// Package: fabrik/assembly
//
// snapshot.go — immutable finalized products and deep cloning.
//
// Determinism & Identity:
//   - A Snapshot owns its storage outright; it holds no reference to the
//     State or Builder that produced it.
//   - Clone is a deep copy that enumerates owned fields, never a shallow
//     aliasing copy. Nested storage is re-allocated on every Clone.

package assembly

// Snapshot is the immutable result of a finalized construction sequence.
// The zero Snapshot is valid and empty (no declared fields); builders
// return it alongside a non-nil error when finalization is rejected.
type Snapshot struct {
	// names preserves the schema's declaration order.
	names []string
	// values maps field name to its finalized value.
	values map[string]string
}

// Get returns the finalized value for name; false when name was not part
// of the originating schema. Complexity: O(1).
func (s Snapshot) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// FieldNames returns the field names in declaration order (fresh copy).
// Complexity: O(n) time and space.
func (s Snapshot) FieldNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Values returns a fresh map of all finalized field values. Mutating the
// returned map never affects the Snapshot. Complexity: O(n).
func (s Snapshot) Values() map[string]string {
	values := make(map[string]string, len(s.values))
	for name, v := range s.values {
		values[name] = v
	}
	return values
}

// Len reports the number of finalized fields. Complexity: O(1).
func (s Snapshot) Len() int { return len(s.names) }

// Clone returns a deep copy of the Snapshot. Every owned container is
// re-allocated; the clone and the receiver share no mutable storage.
//
// Complexity: O(n) time and space.
func (s Snapshot) Clone() Snapshot {
	names := make([]string, len(s.names))
	copy(names, s.names)
	values := make(map[string]string, len(s.values))
	for name, v := range s.values {
		values[name] = v
	}
	return Snapshot{names: names, values: values}
}

// Equal reports whether two Snapshots hold the same fields with the same
// values. Field order participates: snapshots from differently-ordered
// schemas are unequal even with identical value sets.
//
// Complexity: O(n).
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s.names) != len(o.names) {
		return false
	}
	for i, name := range s.names {
		if o.names[i] != name {
			return false
		}
		if s.values[name] != o.values[name] {
			return false
		}
	}
	return true
}

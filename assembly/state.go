// SPDX-License-Identifier: MIT
// Package: fabrik/assembly
//
// state.go — the mutable accumulator behind incremental construction.
//
// Design contract (strict):
//   - A State is bound to exactly one Schema for its whole lifetime.
//   - Set is last-write-wins; setting the same field twice overwrites
//     silently (matching the base construction contract).
//   - Undeclared field names are rejected with ErrFieldNotDeclared; the
//     field set never grows at runtime.
//   - Reset restores declared defaults and preserves the Schema binding,
//     the same flag-preserving clear discipline core containers use.
//
// Concurrency: NOT safe for concurrent mutation; one exclusive owner at a
// time, or an explicit per-call clone. This is documented, not locked,
// because every operation here is a cheap synchronous value transform.

package assembly

import "fmt"

// State accumulates partially-constructed field values against a Schema.
// Construct via NewState; the zero State is not usable.
type State struct {
	schema *Schema
	values map[string]string
}

// NewState binds a fresh accumulator to schema, with every field set to
// its declared default. Panics on a nil schema: binding a State to nothing
// is a programmer error, surfaced early per fabrik constructor rules.
//
// Complexity: O(n) over declared fields.
func NewState(schema *Schema) *State {
	if schema == nil {
		panic("assembly: NewState(nil schema)")
	}
	st := &State{
		schema: schema,
		values: make(map[string]string, schema.Len()),
	}
	// Materialize defaults so Get never needs a fallback branch.
	for _, f := range schema.fields {
		st.values[f.Name] = f.Default
	}
	return st
}

// Schema returns the Schema this State is bound to.
func (st *State) Schema() *Schema { return st.schema }

// Set stores value under the declared field name (last-write-wins).
// Returns ErrFieldNotDeclared (wrapped with the offending name) when name
// is not part of the Schema; the stored values are unchanged in that case.
//
// Complexity: O(1) time and space.
func (st *State) Set(name, value string) error {
	if !st.schema.Has(name) {
		return fmt.Errorf("State.Set: %q: %w", name, ErrFieldNotDeclared)
	}
	st.values[name] = value
	return nil
}

// Get returns the current value for name. The boolean is false when name
// is not declared; an unset declared field yields its default, not false.
//
// Complexity: O(1).
func (st *State) Get(name string) (string, bool) {
	if !st.schema.Has(name) {
		return "", false
	}
	return st.values[name], true
}

// IsDefault reports whether name currently holds its declared default.
// Undeclared names report false.
//
// Complexity: O(1).
func (st *State) IsDefault(name string) bool {
	def, ok := st.schema.defaultOf(name)
	if !ok {
		return false
	}
	return st.values[name] == def
}

// Reset restores every declared field to its default value.
// The Schema binding is preserved, so the State is immediately reusable.
//
// Complexity: O(n) over declared fields.
func (st *State) Reset() {
	for _, f := range st.schema.fields {
		st.values[f.Name] = f.Default
	}
}

// Snapshot captures the current values as an immutable Snapshot.
// The Snapshot owns a deep copy of the values: later Set or Reset calls on
// this State never affect it.
//
// Complexity: O(n) time and space over declared fields.
func (st *State) Snapshot() Snapshot {
	values := make(map[string]string, len(st.values))
	for name, v := range st.values {
		values[name] = v
	}
	return Snapshot{
		names:  st.schema.FieldNames(),
		values: values,
	}
}

// View returns a read-only window over the current values, suitable for
// pre-finalize validation hooks that must not mutate the accumulator.
func (st *State) View() View { return View{st: st} }

// View is a read-only accessor over a State. The zero View is not usable.
type View struct {
	st *State
}

// Get returns the current value for name; false when name is undeclared.
func (v View) Get(name string) (string, bool) { return v.st.Get(name) }

// IsDefault reports whether name still holds its declared default.
func (v View) IsDefault(name string) bool { return v.st.IsDefault(name) }

// FieldNames returns the declared names in declaration order (fresh copy).
func (v View) FieldNames() []string { return v.st.schema.FieldNames() }

// SPDX-License-Identifier: MIT
// Package: fabrik/assembly
//
// schema.go — pre-declared field sets and their sentinel errors.
//
// Design contract (strict):
//   - A Schema is immutable after NewSchema returns; nothing mutates it.
//   - Field order is declaration order and is observable (FieldNames,
//     missing-field reporting in strict builders).
//   - Only sentinel errors are exposed; callers branch with errors.Is.

package assembly

import (
	"errors"
	"fmt"
)

// Sentinel errors for schema construction and field addressing.
var (
	// ErrEmptySchema indicates NewSchema was called with no fields.
	// Usage: if errors.Is(err, ErrEmptySchema) { /* declare fields */ }.
	ErrEmptySchema = errors.New("assembly: schema has no fields")

	// ErrEmptyFieldName indicates a Field was declared with an empty name.
	ErrEmptyFieldName = errors.New("assembly: field name is empty")

	// ErrDuplicateField indicates the same field name was declared twice.
	ErrDuplicateField = errors.New("assembly: duplicate field name")

	// ErrFieldNotDeclared indicates an operation addressed a field name
	// that the Schema does not declare.
	// Usage: if errors.Is(err, ErrFieldNotDeclared) { /* fix field name */ }.
	ErrFieldNotDeclared = errors.New("assembly: field not declared")
)

// Field declares one named slot of a product together with its default
// value. The default is what an unset field contributes to a Snapshot.
type Field struct {
	// Name uniquely identifies the field within its Schema.
	Name string

	// Default is the value an unset field takes at finalize time.
	// The zero value (empty string) is a valid, common default.
	Default string
}

// Schema is an ordered, immutable set of pre-declared fields.
// Construct via NewSchema; the zero Schema is not usable.
type Schema struct {
	// fields preserves declaration order for deterministic iteration.
	fields []Field
	// index maps field name to its position in fields.
	index map[string]int
}

// NewSchema validates and freezes a field declaration list.
//
// Validation (in order):
//   - at least one field           → ErrEmptySchema
//   - every name non-empty         → ErrEmptyFieldName
//   - every name unique            → ErrDuplicateField
//
// Complexity: O(n) time and space over the number of fields.
func NewSchema(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("NewSchema: %w", ErrEmptySchema)
	}

	s := &Schema{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	var (
		i  int
		f  Field
		ok bool
	)
	for i, f = range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("NewSchema: position %d: %w", i, ErrEmptyFieldName)
		}
		if _, ok = s.index[f.Name]; ok {
			return nil, fmt.Errorf("NewSchema: %q: %w", f.Name, ErrDuplicateField)
		}
		// Copy the declaration and record its position.
		s.fields[i] = f
		s.index[f.Name] = i
	}

	return s, nil
}

// MustSchema is NewSchema that panics on invalid declarations.
// Intended for package-level schema literals where the declaration is a
// compile-time constant in spirit; runtime inputs should use NewSchema.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len reports the number of declared fields. Complexity: O(1).
func (s *Schema) Len() int { return len(s.fields) }

// Has reports whether name is declared. Complexity: O(1).
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// FieldNames returns the declared names in declaration order.
// The returned slice is a fresh copy; callers may mutate it freely.
// Complexity: O(n) time and space.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// defaultOf returns the declared default for name.
// The boolean mirrors map-lookup semantics: false means not declared.
func (s *Schema) defaultOf(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.fields[i].Default, true
}

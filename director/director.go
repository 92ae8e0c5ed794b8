// SPDX-License-Identifier: MIT
// Package: fabrik/director
//
// director.go - Director binding and the contact-card recipes.
//
// Design contract (strict):
//   - One orchestrator, zero state beyond the Builder reference: recipes
//     read their arguments, drive setters in a fixed documented order,
//     finalize, and return. Nothing persists between recipe calls.
//   - Rebinding via SetBuilder replaces the reference only; Snapshots
//     already returned are value-owned and unaffected.
//   - Determinism: the same recipe with the same arguments against a
//     freshly-reset Builder yields an identical Snapshot.

package director

import (
	"github.com/katalvlaran/fabrik/assembly"
	"github.com/katalvlaran/fabrik/builder"
)

// Director sequences named recipes over exactly one bound Builder.
// The zero Director is valid but unbound: recipes fail with
// ErrBuilderNotBound until SetBuilder is called.
type Director struct {
	b *builder.Builder
}

// NewDirector returns an unbound Director. Complexity: O(1).
func NewDirector() *Director {
	return &Director{}
}

// SetBuilder binds the Director to b, replacing any prior binding.
// Passing nil unbinds the Director (subsequent recipes fail with
// ErrBuilderNotBound rather than dereferencing nil).
//
// Complexity: O(1).
func (d *Director) SetBuilder(b *builder.Builder) {
	d.b = b
}

// ContactSchema declares the contact-card field set the shipped recipes
// build against: first_name, last_name, phone, email, all defaulting to
// the empty string. Each call returns a fresh, independent Schema.
//
// Complexity: O(1) fields, O(n) allocation.
func ContactSchema() *assembly.Schema {
	return assembly.MustSchema(
		assembly.Field{Name: FieldFirstName},
		assembly.Field{Name: FieldLastName},
		assembly.Field{Name: FieldPhone},
		assembly.Field{Name: FieldEmail},
	)
}

// BuildMinimal assembles a contact card from the three basics, in the
// fixed order first_name → last_name → email, then finalizes. The phone
// field is never touched and carries its default into the Snapshot.
//
// Errors: ErrBuilderNotBound when unbound; otherwise whatever Finalize
// reports, wrapped once with the recipe token.
//
// Complexity: O(fields).
func (d *Director) BuildMinimal(first, last, email string) (assembly.Snapshot, error) {
	if d.b == nil {
		return assembly.Snapshot{}, directorErrorf(MethodBuildMinimal, "%w", ErrBuilderNotBound)
	}
	snap, err := d.b.
		Set(FieldFirstName, first).
		Set(FieldLastName, last).
		Set(FieldEmail, email).
		Finalize()
	if err != nil {
		return assembly.Snapshot{}, directorErrorf(MethodBuildMinimal, "%w", err)
	}
	return snap, nil
}

// BuildFull assembles a complete contact card in the fixed order
// first_name → last_name → phone → email, then finalizes.
//
// Errors: ErrBuilderNotBound when unbound; otherwise whatever Finalize
// reports, wrapped once with the recipe token.
//
// Complexity: O(fields).
func (d *Director) BuildFull(first, last, phone, email string) (assembly.Snapshot, error) {
	if d.b == nil {
		return assembly.Snapshot{}, directorErrorf(MethodBuildFull, "%w", ErrBuilderNotBound)
	}
	snap, err := d.b.
		Set(FieldFirstName, first).
		Set(FieldLastName, last).
		Set(FieldPhone, phone).
		Set(FieldEmail, email).
		Finalize()
	if err != nil {
		return assembly.Snapshot{}, directorErrorf(MethodBuildFull, "%w", err)
	}
	return snap, nil
}

// SPDX-License-Identifier: MIT
// Package: fabrik/factory
//
// catalog.go - the immutable constructor registry and the Create entry point.
//
// Design contract (strict):
//   - The registry is closed: catalogTable is package-private, populated
//     here, and no runtime registration API exists. New variants require a
//     code change (Kind + kindNames + catalogTable together).
//   - A Catalog is an explicitly passed, long-lived handle: construct one
//     at process start with NewCatalog and thread it through parameters.
//     The package-level Create delegates to a single catalog built at
//     init for call sites that do not need their own handle.
//   - Each Create call is stateless: validate → look up → allocate a
//     fresh Variant. No intermediate state, no reuse, no locking needed.

package factory

// constructor builds one fully-formed Variant from explicit parameters.
// Implementations are total over validated input: Create checks the year
// window before invoking, so constructors never fail.
type constructor func(model string, year int) Variant

// catalogTable maps each Kind to its constructor. Indexed by Kind; the
// length pins it to the closed set, so adding a Kind without a
// constructor is a compile error.
var catalogTable = [kindCount]constructor{
	KindSedan: newSedan,
	KindSUV:   newSUV,
	KindCoupe: newCoupe,
}

// newSedan constructs the sedan variant. Complexity: O(1).
func newSedan(model string, year int) Variant {
	return Variant{
		Kind:   KindSedan,
		Model:  model,
		Year:   year,
		Doors:  SedanDoors,
		Extras: []string{"trunk", "rear bench"},
	}
}

// newSUV constructs the SUV variant. Complexity: O(1).
func newSUV(model string, year int) Variant {
	return Variant{
		Kind:   KindSUV,
		Model:  model,
		Year:   year,
		Doors:  SUVDoors,
		Extras: []string{"roof rails", "tow hitch"},
	}
}

// newCoupe constructs the coupe variant. Complexity: O(1).
func newCoupe(model string, year int) Variant {
	return Variant{
		Kind:   KindCoupe,
		Model:  model,
		Year:   year,
		Doors:  CoupeDoors,
		Extras: []string{"sport seats"},
	}
}

// Catalog is the read-only variant registry handle. Construct with
// NewCatalog once and pass it explicitly wherever variants are created;
// it replaces hidden process-global registry state with an owned value.
//
// Concurrency: safe for concurrent Create calls without locking — every
// call only reads the table and allocates a fresh Variant.
type Catalog struct {
	table [kindCount]constructor
}

// NewCatalog returns a Catalog over the closed built-in variant set.
// Complexity: O(1) (the table is copied by value).
func NewCatalog() Catalog {
	return Catalog{table: catalogTable}
}

// Create resolves tag case-insensitively, validates year against
// [MinModelYear, MaxModelYear], and returns a freshly-constructed Variant.
//
// Errors (checked in order):
//   - ErrUnknownVariant — tag is not in the closed set; the zero Variant
//     is returned alongside, never a usable default.
//   - ErrBadModelYear   — year outside the accepted window.
//
// The returned Variant is owned by the caller; the Catalog keeps no
// reference and never revisits it.
//
// Complexity: O(len(tag)) for resolution, O(1) construction.
func (c Catalog) Create(tag, model string, year int) (Variant, error) {
	kind, err := ParseKind(tag)
	if err != nil {
		// Tag resolution already carries the method token and sentinel.
		return Variant{}, factoryErrorf(MethodCreate, "%w", err)
	}
	if year < MinModelYear || year > MaxModelYear {
		return Variant{}, factoryErrorf(MethodCreate, "year %d outside [%d,%d]: %w",
			year, MinModelYear, MaxModelYear, ErrBadModelYear)
	}
	return c.table[kind](model, year), nil
}

// defaultCatalog backs the package-level Create convenience. Built once
// at init; read-only afterwards.
var defaultCatalog = NewCatalog()

// Create is the package-level convenience over a shared default Catalog.
// Semantics are identical to Catalog.Create. Prefer an explicit Catalog
// handle when wiring dependencies; use this in leaf call sites and demos.
func Create(tag, model string, year int) (Variant, error) {
	return defaultCatalog.Create(tag, model, year)
}

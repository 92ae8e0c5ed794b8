// Package factory provides closed-set, tag-dispatched construction of car
// Variants — the exclusive-choice counterpart to the incremental
// builder/director pair.
//
// The package offers the following key components:
//
//   - Kind:     the closed discriminant enum (KindSedan, KindSUV, KindCoupe).
//   - ParseKind: case-insensitive tag → Kind resolution.
//   - Variant:  one fully-formed concrete case; never re-validated or
//     mutated by the factory after construction; deep Clone.
//   - Catalog:  the immutable tag → constructor registry. Construct your
//     own with NewCatalog or use the package-level Create convenience.
//   - Describe / pure behavior functions: exhaustive switches over Kind
//     in place of virtual dispatch.
//
// Closed-set dispatch (by contract): the registry is fixed at compile
// time. There is no runtime registration API; adding a variant means
// extending Kind, its name table, and the catalog table together, so the
// compiler and the exhaustiveness of Describe keep the set honest.
//
// Guarantees:
//
//   - Each Create call is stateless and independent; no intermediate state.
//   - Unknown tags fail with ErrUnknownVariant naming the tag — never a
//     silent default variant.
//   - A Catalog is read-only after construction and safe for concurrent
//     Create calls without locking: lookups only read the table and every
//     call allocates a fresh Variant.
package factory

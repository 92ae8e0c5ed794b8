// Package director sequences fixed, named recipes over a bound Builder.
//
// A Director is pure orchestration: it holds a reference to exactly one
// builder.Builder and no other state. Each recipe method invokes an
// ordered subset of the Builder's setters with caller-supplied arguments,
// then finalizes and returns the resulting Snapshot. Recipes keep nothing
// between invocations; every call runs against a freshly-reset Builder
// (guaranteed by the builder package's reset-on-finalize contract).
//
// The shipped recipes build contact cards over ContactSchema():
//
//   - BuildMinimal(first, last, email)        — three mandatory basics.
//   - BuildFull(first, last, phone, email)    — the complete card.
//
// Calling a recipe before SetBuilder fails with ErrBuilderNotBound; a
// Director never dereferences an unbound Builder.
package director

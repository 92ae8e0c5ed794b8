// SPDX-License-Identifier: MIT
// Package: fabrik/builder
//
// api.go - the Builder type and its two public operations.
//
// Design contract (strict):
//   - One accumulator per Builder: NewBuilder binds a fresh assembly.State
//     to the given schema; the Builder owns it exclusively.
//   - Set is chainable and infallible at the call site; addressing an
//     undeclared field is recorded and surfaced at Finalize (all-or-nothing).
//   - Finalize is the ONLY operation that crosses the reset boundary:
//     validate → snapshot → reset, in that order, and reset happens only on
//     success so a rejected Finalize leaves the state repairable.
//   - Determinism: the same setter sequence against the same schema and
//     options yields an identical Snapshot.

package builder

import "github.com/katalvlaran/fabrik/assembly"

// Builder accumulates field values against a pre-declared schema and
// finalizes them into independent, immutable Snapshots.
//
// A Builder is reusable: each successful Finalize resets the accumulator
// to declared defaults. It is NOT safe for concurrent use; one exclusive
// owner at a time.
type Builder struct {
	state *assembly.State
	cfg   builderConfig

	// deferred holds the first Set error (undeclared field), reported by
	// the next Finalize. Setters stay chainable; nothing is silently lost.
	deferred error
}

// NewBuilder constructs a Builder over schema with the given options.
//
// Panics (programmer errors, surfaced at construction per fabrik rules):
//   - nil schema;
//   - a WithRequired name the schema does not declare.
//
// Complexity: O(fields + options).
func NewBuilder(schema *assembly.Schema, opts ...Option) *Builder {
	if schema == nil {
		panic("builder: NewBuilder(nil schema)")
	}
	cfg := newBuilderConfig(opts...)
	// Cross-check strict-mode names against the schema now, not at the
	// first Finalize: a misspelled mandatory field must not lie dormant.
	for _, name := range cfg.required {
		if !schema.Has(name) {
			panic("builder: WithRequired(" + name + ") not declared in schema")
		}
	}
	return &Builder{
		state: assembly.NewState(schema),
		cfg:   cfg,
	}
}

// Set stores value under the named field and returns the Builder for
// chaining. Last-write-wins: repeating a field overwrites the prior value
// without error. Call order is unconstrained.
//
// An undeclared field name does not mutate anything; the first such
// mistake is remembered and returned by the next Finalize, wrapped under
// ErrUnknownField.
//
// Complexity: O(1) time and space.
func (b *Builder) Set(name, value string) *Builder {
	if err := b.state.Set(name, value); err != nil {
		// Keep only the first mistake; later ones are symptoms of the same
		// broken call site and would mask the original context.
		if b.deferred == nil {
			b.deferred = builderErrorf(MethodSet, "%q: %w", name, ErrUnknownField)
		}
		return b
	}
	return b
}

// Finalize validates, snapshots, and resets, in that order.
//
// Sequence:
//  1. A deferred Set error (undeclared field) aborts immediately.
//  2. Custom validators (WithValidator) run in registration order over a
//     read-only view; the first rejection aborts, wrapped as ErrValidation.
//  3. Strict mode (WithRequired) rejects with ErrIncompleteAssembly naming
//     the first mandatory field still at its default, in schema order.
//  4. On success: an immutable Snapshot of all declared fields (unset
//     fields carry their defaults) is taken, the accumulator is reset to
//     defaults, and the Snapshot is returned.
//
// On any rejection the zero Snapshot is returned, no reset happens, and
// the in-progress values survive for caller recovery (supply the missing
// field and finalize again). No partial Snapshot is ever returned.
//
// Complexity: O(fields + validators).
func (b *Builder) Finalize() (assembly.Snapshot, error) {
	// 1. Surface a broken setter call site before anything else.
	if b.deferred != nil {
		err := b.deferred
		// The mistake has been reported; clear it so a repaired sequence
		// of calls is not poisoned forever.
		b.deferred = nil
		return assembly.Snapshot{}, builderErrorf(MethodFinalize, "deferred setter error: %w", err)
	}

	view := b.state.View()

	// 2. Custom hooks run before the built-in mandatory check so callers
	//    can layer domain rules without re-implementing strict mode.
	for _, fn := range b.cfg.validators {
		if err := fn(view); err != nil {
			return assembly.Snapshot{}, builderErrorf(MethodFinalize, "%w: %w", ErrValidation, err)
		}
	}

	// 3. Strict mode: report the FIRST missing field in schema declaration
	//    order for deterministic messages regardless of option order.
	if len(b.cfg.required) > 0 {
		requiredSet := make(map[string]struct{}, len(b.cfg.required))
		for _, name := range b.cfg.required {
			requiredSet[name] = struct{}{}
		}
		for _, name := range view.FieldNames() {
			if _, ok := requiredSet[name]; !ok {
				continue
			}
			if view.IsDefault(name) {
				return assembly.Snapshot{}, builderErrorf(MethodFinalize, "missing mandatory field %q: %w", name, ErrIncompleteAssembly)
			}
		}
	}

	// 4. Snapshot first, then reset: the Snapshot owns a deep copy, so the
	//    reset below can never reach it.
	snap := b.state.Snapshot()
	b.state.Reset()

	return snap, nil
}

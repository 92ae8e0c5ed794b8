// Package builder provides the chainable, reuse-safe construction surface
// over an assembly.State: fluent setters that accumulate partial values,
// and a single Finalize operation that validates, snapshots, and resets.
//
// The package offers the following key components:
//
//   - Builder:        the fluent accumulator; Set(...).Set(...).Finalize().
//   - Option:         functional options resolved at NewBuilder time.
//     – WithRequired:  opt-in strict mode; names fields that must be set
//       before Finalize succeeds.
//     – WithValidator: installs an arbitrary pre-finalize hook over a
//       read-only assembly.View.
//   - Sentinel errors (errors.go): ErrIncompleteAssembly, ErrUnknownField.
//
// Guarantees:
//
//   - Last-write-wins setters: calling the same setter twice overwrites the
//     prior value without error; call order is caller-controlled.
//   - Reset-on-finalize: a successful Finalize returns an immutable
//     Snapshot and restores the accumulator to declared defaults, so the
//     Builder is immediately reusable and no two Snapshots share storage.
//   - All-or-nothing: a rejected Finalize returns the zero Snapshot and a
//     sentinel-wrapped error; the in-progress state is preserved so the
//     caller can repair and finalize again.
//   - Base contract is permissive: unset declared fields silently take
//     their defaults. Mandatory-field enforcement is opt-in via options.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; Set and Finalize never panic at runtime.
//
// Concurrency: a Builder requires one exclusive owner at a time; concurrent
// setter calls against the same instance need external serialization.
//
// See individual function documentation for detailed contracts, panic
// conditions, and performance notes.
package builder

// Package assembly defines the central Schema, State, and Snapshot types
// that underpin incremental object construction in fabrik.
//
// A Schema pre-declares the full field set of a product, with one default
// value per field. A State is the mutable accumulator that collects partial
// values across setter calls. A Snapshot is the immutable result of
// finalization: a value-owned copy of the State at one instant, with no
// back-reference to the State or Builder that produced it.
//
// This file layout follows the package conventions used across fabrik:
//
//	schema.go   - Field, Schema, sentinel errors, the NewSchema constructor
//	state.go    - State accumulator, View read-only access
//	snapshot.go - Snapshot, deep Clone
//
// Guarantees:
//
//   - Pre-declared fields only: a State never grows fields at runtime.
//   - Reset discipline: Reset restores every field to its declared default
//     while preserving the Schema binding, so a State is reusable.
//   - Snapshot independence: a Snapshot never shares mutable storage with
//     the State it was taken from, nor with any later Snapshot.
//   - Deep Clone: Snapshot.Clone enumerates owned fields; no aliasing.
//
// Concurrency: a State requires one exclusive owner at a time; callers that
// share a State across goroutines must serialize access externally.
// Snapshots are immutable after creation and safe to share.
package assembly

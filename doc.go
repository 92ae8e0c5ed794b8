// Package fabrik is an instructional catalogue of object-creation
// patterns, built around one core idea: guarded incremental construction.
//
// 🚀 What is fabrik?
//
//	A small, dependency-light library that brings together:
//		• assembly — pre-declared schemas, a mutable accumulator, and
//		  immutable, deep-cloneable snapshots
//		• builder  — chainable setters with a validate-snapshot-reset
//		  finalize and opt-in strict mode
//		• director — fixed, named recipes sequenced over a bound builder
//		• factory  — closed tag→constructor dispatch for exclusive variants
//
// ✨ Why choose fabrik?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reuse-safe – every finalize resets the accumulator, so no two
//     snapshots ever share storage
//   - Honest failures – sentinel errors (errors.Is) instead of silent
//     defaults for unknown tags, unbound directors, missing fields
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	assembly/ — Schema, State, Snapshot value types
//	builder/  — Builder, functional options, finalize lifecycle
//	director/ — Director, contact-card recipes
//	factory/  — Kind, Variant, Catalog, pure behavior functions
//
// Quick sketch of the two construction styles:
//
//	incremental:  Set → Set → ... → Finalize → Snapshot (builder reset)
//	exclusive:    Create(tag, params) → Variant (no intermediate state)
//
// Dive into the package docs and examples/ for runnable walkthroughs.
//
//	go get github.com/katalvlaran/fabrik
package fabrik

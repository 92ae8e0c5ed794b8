// SPDX-License-Identifier: MIT
// Package: fabrik/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     runtime operations (Set/Finalize) never panic.
//   • The base contract stays permissive: without options, Finalize never
//     rejects — missing fields silently take their declared defaults.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "github.com/katalvlaran/fabrik/assembly"

// Validator is a pre-finalize hook over a read-only view of the
// in-progress state. A non-nil return rejects Finalize; the returned
// error is wrapped under ErrValidation.
type Validator func(v assembly.View) error

// Option customizes a Builder by mutating its builderConfig before the
// Builder is constructed. Applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// builderConfig aggregates all knobs resolved at NewBuilder time.
// It is embedded by value in Builder (immutable after construction).
type builderConfig struct {
	// required lists field names that must be explicitly set (strict mode).
	// Order is preserved: the first missing field in schema order is the
	// one reported by Finalize.
	required []string
	// validators run in registration order before required-field checks.
	validators []Validator
}

// newBuilderConfig resolves options in order (last-wins for scalar knobs,
// append semantics for lists). Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRequired enables strict mode for the named fields: Finalize rejects
// with ErrIncompleteAssembly while any of them still holds its declared
// default. Multiple WithRequired options accumulate.
//
// Panics when called with no names or with an empty name; whether every
// name is declared is checked against the schema by NewBuilder, which
// panics on a mismatch (programmer error, surfaced at construction).
//
// Complexity: O(len(names)) time and space.
func WithRequired(names ...string) Option {
	if len(names) < MinRequiredFields {
		// Fail fast: strict mode over nothing is a configuration bug.
		panic("builder: WithRequired() needs at least one field name")
	}
	for _, name := range names {
		if name == "" {
			panic("builder: WithRequired(\"\") empty field name")
		}
	}
	return func(c *builderConfig) {
		c.required = append(c.required, names...)
	}
}

// WithValidator installs a custom pre-finalize hook. Hooks run in
// registration order; the first rejection aborts Finalize. Panics on nil.
//
// Complexity: O(1) time and space.
func WithValidator(fn Validator) Option {
	if fn == nil {
		// Fail fast to keep runtime paths panic-free.
		panic("builder: WithValidator(nil)")
	}
	return func(c *builderConfig) {
		c.validators = append(c.validators, fn)
	}
}

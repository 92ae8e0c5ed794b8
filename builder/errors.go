// SPDX-License-Identifier: MIT
// Package: fabrik/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w plus a canonical method token
//     (see constants.go), e.g. "Finalize: missing mandatory field "email"".
//   • Runtime paths MUST NOT panic; validation panics are confined to
//     option constructors (WithX...) and NewBuilder configuration checks.

package builder

import (
	"errors"
	"fmt"
)

// ErrIncompleteAssembly indicates that strict mode rejected Finalize
// because a mandatory field (declared via WithRequired) still holds its
// default value. The wrapped message names the first missing field in
// schema declaration order.
// Classification: Validation error (opt-in strict mode only).
// Usage: if errors.Is(err, ErrIncompleteAssembly) { /* supply field, retry */ }.
var ErrIncompleteAssembly = errors.New("builder: mandatory field missing")

// ErrUnknownField indicates that a Set call addressed a field name the
// bound schema does not declare. The error is recorded at Set time and
// surfaced at Finalize, keeping setters chainable and finalization
// all-or-nothing. The wrapped message names the offending field.
// Usage: if errors.Is(err, ErrUnknownField) { /* fix the field name */ }.
var ErrUnknownField = errors.New("builder: field not declared in schema")

// ErrValidation indicates that a custom pre-finalize hook (WithValidator)
// rejected the in-progress state. The hook's own error is wrapped and
// remains reachable through errors.Is / errors.As.
// Usage: if errors.Is(err, ErrValidation) { /* inspect wrapped cause */ }.
var ErrValidation = errors.New("builder: pre-finalize validation failed")

// builderErrorf wraps an inner message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
//
// Parameters:
//   - method: canonical method token, e.g. MethodFinalize.
//   - format: format string for the inner message (supports %w).
//   - args:   values for the format placeholders.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

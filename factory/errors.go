// SPDX-License-Identifier: MIT
// Package: fabrik/factory
//
// errors.go — sentinel errors for the factory package.
//
// Error policy (matches fabrik/builder):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Create wraps once at the API boundary with the canonical method
//     token and the offending parameter, e.g. `Create: tag "minivan": ...`.
//   • No panics at runtime: an unknown tag is a caller error, not a bug.

package factory

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant indicates the requested discriminant tag is not in
// the closed variant set. The wrapped message names the tag. Create never
// returns a default or zero Variant in this case.
// Usage: if errors.Is(err, ErrUnknownVariant) { /* pick a known tag */ }.
var ErrUnknownVariant = errors.New("factory: unknown variant tag")

// ErrBadModelYear indicates the model year falls outside the accepted
// window [MinModelYear, MaxModelYear].
// Usage: if errors.Is(err, ErrBadModelYear) { /* fix the year */ }.
var ErrBadModelYear = errors.New("factory: model year out of range")

// factoryErrorf wraps an inner error with the given method context.
// Returns an error of the form "<Method>: <inner>", preserving wrapped
// sentinels for errors.Is.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func factoryErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

// SPDX-License-Identifier: MIT
// Package: fabrik/director
//
// errors.go — sentinel errors for the director package.
//
// Error policy (matches fabrik/builder):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Recipes wrap once at the recipe boundary with the canonical method
//     token; inner builder errors keep their own sentinels reachable.

package director

import (
	"errors"
	"fmt"
)

// ErrBuilderNotBound indicates a recipe method was invoked before
// SetBuilder bound a Builder to this Director. The recipe detects the
// missing binding up front; no nil dereference can occur.
// Usage: if errors.Is(err, ErrBuilderNotBound) { /* call SetBuilder first */ }.
var ErrBuilderNotBound = errors.New("director: no builder bound")

// directorErrorf wraps an inner error with the given recipe context.
// Returns an error of the form "<Method>: <inner>", preserving wrapped
// sentinels for errors.Is.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func directorErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

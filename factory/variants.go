// SPDX-License-Identifier: MIT
// Package: fabrik/factory
//
// variants.go — the closed Kind enum, the Variant value, and the pure
// behavior functions that replace virtual dispatch.
//
// Extending the set (the only supported way):
//   1. add a Kind constant below kindCount's predecessor;
//   2. add its canonical tag to kindNames;
//   3. add its constructor to catalogTable (catalog.go);
//   4. extend every exhaustive switch (Describe) — the default branch
//      panicking on an unhandled Kind makes a forgotten arm loud in tests.

package factory

import (
	"strconv"
	"strings"
)

// Kind enumerates the closed set of car variants.
// The zero value is KindSedan; an invalid Kind only ever originates from
// arithmetic abuse, never from ParseKind or Create.
type Kind int

const (
	// KindSedan is the classic three-box four-door passenger car.
	KindSedan Kind = iota

	// KindSUV is the high-clearance five-door utility variant.
	KindSUV

	// KindCoupe is the two-door performance-oriented variant.
	KindCoupe

	// kindCount bounds the enum; keep it LAST.
	kindCount
)

// kindNames maps each Kind to its canonical (lowercase) discriminant tag.
// Indexed by Kind; length must equal kindCount.
var kindNames = [kindCount]string{
	KindSedan: "sedan",
	KindSUV:   "suv",
	KindCoupe: "coupe",
}

// String returns the canonical lowercase tag for k, or "unknown" for a
// value outside the closed set. Complexity: O(1).
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a discriminant tag case-insensitively into its Kind.
// Returns ErrUnknownVariant (wrapped with the offending tag) when the tag
// is not in the closed set.
//
// Complexity: O(len(tag)) for the fold; O(kindCount) for the scan, which
// is a small constant by construction.
func ParseKind(tag string) (Kind, error) {
	folded := strings.ToLower(strings.TrimSpace(tag))
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == folded {
			return k, nil
		}
	}
	return 0, factoryErrorf(MethodParseKind, "tag %q: %w", tag, ErrUnknownVariant)
}

// Variant is one fully-formed concrete case of the closed car set.
// The factory never re-validates or mutates a Variant after construction;
// callers own the value outright.
type Variant struct {
	// Kind is the discriminant distinguishing this variant from its
	// siblings; it is set once by the constructor.
	Kind Kind

	// Model is the caller-supplied model designation, e.g. "Toyota Camry".
	Model string

	// Year is the caller-supplied model year within
	// [MinModelYear, MaxModelYear].
	Year int

	// Doors is fixed per Kind (SedanDoors / SUVDoors / CoupeDoors).
	Doors int

	// Extras lists kind-specific standard equipment. Owned by the
	// Variant; Clone copies it so no two Variants alias the slice.
	Extras []string
}

// Clone returns a deep copy of v. Every owned container is re-allocated;
// mutating the clone's Extras never reaches the receiver and vice versa.
//
// Complexity: O(len(Extras)).
func (v Variant) Clone() Variant {
	extras := make([]string, len(v.Extras))
	copy(extras, v.Extras)
	v.Extras = extras
	return v
}

// Describe renders a one-line human-readable summary of v. It is the
// tag→behavior function standing in for a virtual Describe method: one
// exhaustive switch, checkable against the closed set.
//
// Panics on a Kind outside the closed set — such a value cannot come from
// ParseKind or Create, so the panic flags corrupted construction paths in
// tests rather than shipping a wrong description.
//
// Complexity: O(len(Model)).
func Describe(v Variant) string {
	// strconv.Itoa over fmt.Sprintf: cheaper for simple int→string.
	year, doors := strconv.Itoa(v.Year), strconv.Itoa(v.Doors)
	switch v.Kind {
	case KindSedan:
		return v.Model + " (" + year + " sedan, " + doors + " doors)"
	case KindSUV:
		return v.Model + " (" + year + " suv, " + doors + " doors)"
	case KindCoupe:
		return v.Model + " (" + year + " coupe, " + doors + " doors)"
	default:
		panic("factory: Describe: kind outside the closed set")
	}
}

// Package director_test contains functional tests for recipe
// orchestration: binding, rebinding, determinism on a reused builder, and
// the unbound failure mode.
package director_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fabrik/builder"
	"github.com/katalvlaran/fabrik/director"
)

// boundDirector returns a Director bound to a fresh permissive builder
// over the contact schema.
func boundDirector(t *testing.T) *director.Director {
	t.Helper()
	d := director.NewDirector()
	d.SetBuilder(builder.NewBuilder(director.ContactSchema()))
	return d
}

// TestUnboundDirectorFails verifies ErrBuilderNotBound on every recipe,
// with no snapshot and no panic.
func TestUnboundDirectorFails(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	d := director.NewDirector()

	snap, err := d.BuildMinimal("John", "Doe", "john@x.com")
	req.ErrorIs(err, director.ErrBuilderNotBound)
	req.Zero(snap.Len(), "no partial snapshot on failure")

	snap, err = d.BuildFull("abc", "123", "555-0100", "jane@x.com")
	req.ErrorIs(err, director.ErrBuilderNotBound)
	req.Zero(snap.Len())

	// SetBuilder(nil) keeps the director in the unbound state.
	d.SetBuilder(builder.NewBuilder(director.ContactSchema()))
	d.SetBuilder(nil)
	_, err = d.BuildMinimal("John", "Doe", "john@x.com")
	req.ErrorIs(err, director.ErrBuilderNotBound)
}

// TestRecipeDeterminismOnReusedBuilder verifies the cross-recipe reuse
// property: BuildFull then BuildMinimal on one builder yields a second
// snapshot with a default phone and exactly its three arguments.
func TestRecipeDeterminismOnReusedBuilder(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	d := boundDirector(t)

	full, err := d.BuildFull("abc", "123", "555-0100", "jane@x.com")
	req.NoError(err)

	minimal, err := d.BuildMinimal("John", "Doe", "john@x.com")
	req.NoError(err)

	// The second snapshot carries only its own arguments.
	v, _ := minimal.Get(director.FieldFirstName)
	req.Equal("John", v)
	v, _ = minimal.Get(director.FieldLastName)
	req.Equal("Doe", v)
	v, _ = minimal.Get(director.FieldEmail)
	req.Equal("john@x.com", v)
	v, _ = minimal.Get(director.FieldPhone)
	req.Equal("", v, "phone must be back at its default, not leaked from BuildFull")

	// The first snapshot is untouched by the second recipe run.
	v, _ = full.Get(director.FieldPhone)
	req.Equal("555-0100", v)
	v, _ = full.Get(director.FieldFirstName)
	req.Equal("abc", v)
}

// TestRebindingLeavesSnapshotsAlone verifies that SetBuilder replaces the
// reference without touching snapshots already produced.
func TestRebindingLeavesSnapshotsAlone(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	d := boundDirector(t)
	before, err := d.BuildMinimal("Ada", "Lovelace", "ada@x.com")
	req.NoError(err)

	// Rebind to a fresh builder and run another recipe.
	d.SetBuilder(builder.NewBuilder(director.ContactSchema()))
	after, err := d.BuildMinimal("Grace", "Hopper", "grace@x.com")
	req.NoError(err)

	v, _ := before.Get(director.FieldFirstName)
	req.Equal("Ada", v, "pre-rebind snapshot must be unaffected")
	v, _ = after.Get(director.FieldFirstName)
	req.Equal("Grace", v)
}

// TestRecipeOverStrictBuilder verifies that recipe errors surface the
// builder's sentinels through the recipe boundary wrap.
func TestRecipeOverStrictBuilder(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	d := director.NewDirector()
	d.SetBuilder(builder.NewBuilder(
		director.ContactSchema(),
		builder.WithRequired(director.FieldPhone),
	))

	// BuildMinimal never sets phone, so a phone-mandatory builder rejects.
	_, err := d.BuildMinimal("John", "Doe", "john@x.com")
	req.ErrorIs(err, builder.ErrIncompleteAssembly)

	// BuildFull supplies the phone and passes.
	snap, err := d.BuildFull("John", "Doe", "555-0100", "john@x.com")
	req.NoError(err)
	v, _ := snap.Get(director.FieldPhone)
	req.Equal("555-0100", v)
}

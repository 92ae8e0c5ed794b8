// Package assembly_test verifies Snapshot semantics: deep cloning,
// equality, and zero-value behavior.
package assembly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fabrik/assembly"
)

// snapshotFixture builds a finalized snapshot with two set fields.
func snapshotFixture(t *testing.T) assembly.Snapshot {
	t.Helper()
	st := assembly.NewState(contactSchema(t))
	require.NoError(t, st.Set("first", "John"))
	require.NoError(t, st.Set("last", "Doe"))
	return st.Snapshot()
}

// TestSnapshotClone verifies that Clone is a deep, equal, independent copy.
func TestSnapshotClone(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	orig := snapshotFixture(t)
	clone := orig.Clone()

	req.True(orig.Equal(clone), "clone must be Equal to its source")
	req.Equal(orig.Values(), clone.Values())
	req.Equal(orig.FieldNames(), clone.FieldNames())

	// Deep copy: the clone's exposed containers are fresh on every call,
	// and the two snapshots share no storage that Values can reveal.
	m := clone.Values()
	m["first"] = "tampered"
	v, _ := clone.Get("first")
	req.Equal("John", v, "Values copy must not write through to the clone")
	v, _ = orig.Get("first")
	req.Equal("John", v)
}

// TestSnapshotEqual verifies field-order-sensitive equality.
func TestSnapshotEqual(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	a := snapshotFixture(t)
	b := snapshotFixture(t)
	req.True(a.Equal(b), "identical sequences must yield Equal snapshots")

	// A differing value breaks equality.
	st := assembly.NewState(contactSchema(t))
	require.NoError(t, st.Set("first", "Jane"))
	require.NoError(t, st.Set("last", "Doe"))
	c := st.Snapshot()
	req.False(a.Equal(c), "different values must not be Equal")

	// A different schema shape breaks equality too.
	other, err := assembly.NewSchema(assembly.Field{Name: "first"})
	req.NoError(err)
	d := assembly.NewState(other).Snapshot()
	req.False(a.Equal(d), "different field sets must not be Equal")
}

// TestZeroSnapshot verifies that the zero Snapshot is valid and empty.
func TestZeroSnapshot(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	var zero assembly.Snapshot
	req.Zero(zero.Len())
	req.Empty(zero.FieldNames())
	req.Empty(zero.Values())
	_, ok := zero.Get("anything")
	req.False(ok)
	req.True(zero.Equal(zero.Clone()), "zero snapshot clones to itself")
}

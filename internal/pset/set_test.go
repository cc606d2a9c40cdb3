package pset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetUnionSubtractIntersect(t *testing.T) {
	a := New(1, 2, 3)
	b := New(2, 3, 4)

	require.True(t, a.Union(b).Equal(New(1, 2, 3, 4)))
	require.True(t, a.Subtract(b).Equal(New(1)))
	require.True(t, a.Intersect(b).Equal(New(2, 3)))
}

func TestSetAddRemoveNoOpWhenUnchanged(t *testing.T) {
	a := New(1, 2)
	require.True(t, a.Add(1).Equal(a))
	require.True(t, a.Remove(5).Equal(a))

	b := a.Add(3)
	require.Equal(t, 3, b.Size())
	require.Equal(t, 2, a.Size())
}

func TestSetRemoveIf(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	even := a.RemoveIf(func(v int) bool { return v%2 == 0 })
	require.True(t, even.Equal(New(1, 3, 5)))
}

func TestSetEmptyShortCircuits(t *testing.T) {
	var empty Set[string]
	full := New("a", "b")

	require.True(t, empty.Union(full).Equal(full))
	require.True(t, full.Subtract(empty).Equal(full))
	require.True(t, empty.Intersect(full).IsEmpty())
}

func TestSetSnapshotIsIndependent(t *testing.T) {
	a := New(1, 2)
	snap := a.Snapshot()
	snap[3] = struct{}{}
	require.Equal(t, 2, a.Size())
}

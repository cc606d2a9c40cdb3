package pset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type intMax int

func (a intMax) Join(b intMax) intMax {
	if b > a {
		return b
	}
	return a
}

func TestMapWeakUpdate(t *testing.T) {
	m := NewMap[string, intMax](nil)
	m = m.WeakUpdate("x", 5)
	v, ok := m.Get("x")
	require.True(t, ok)
	require.Equal(t, intMax(5), v)

	m = m.WeakUpdate("x", 3)
	v, _ = m.Get("x")
	require.Equal(t, intMax(5), v)

	m = m.WeakUpdate("x", 9)
	v, _ = m.Get("x")
	require.Equal(t, intMax(9), v)
}

func TestMapJoin(t *testing.T) {
	a := NewMap[string, intMax](map[string]intMax{"x": 1, "y": 2})
	b := NewMap[string, intMax](map[string]intMax{"y": 5, "z": 3})

	joined := a.Join(b)
	require.Equal(t, 3, joined.Size())

	vx, _ := joined.Get("x")
	vy, _ := joined.Get("y")
	vz, _ := joined.Get("z")
	require.Equal(t, intMax(1), vx)
	require.Equal(t, intMax(5), vy)
	require.Equal(t, intMax(3), vz)
}

func TestMapRemove(t *testing.T) {
	a := NewMap[string, intMax](map[string]intMax{"x": 1})
	b := a.Remove("x")
	require.False(t, b.ContainsKey("x"))
	require.True(t, a.ContainsKey("x"))
}

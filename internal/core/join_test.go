package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinIsCommutative(t *testing.T) {
	a := MakeNum(3)
	b := MakeStr("hi")
	require.Same(t, Join(a, b, false), Join(b, a, false))
}

func TestJoinIsAssociative(t *testing.T) {
	a := MakeNum(3)
	b := MakeStr("hi")
	c := BoolTrue()
	left := Join(Join(a, b, false), c, false)
	right := Join(a, Join(b, c, false), false)
	require.Same(t, left, right)
}

func TestJoinIsIdempotent(t *testing.T) {
	a := MakeStr("x")
	require.Same(t, a, Join(a, a, false))
}

func TestJoinOfDistinctConcreteStringsDropsConcreteStr(t *testing.T) {
	joined := Join(MakeStr("a"), MakeStr("b"), false)
	_, ok := joined.Str()
	require.False(t, ok)
	require.True(t, joined.Flags().has(fStrIdentifier))
}

func TestJoinOfDistinctConcreteNumbersDropsConcreteNum(t *testing.T) {
	joined := Join(MakeNum(1), MakeNum(2), false)
	_, ok := joined.Num()
	require.False(t, ok)
	require.True(t, joined.Flags().has(fNumUIntPos))
}

func TestJoinWithUnknownAbsorbs(t *testing.T) {
	require.Same(t, unknown, Join(MakeStr("x"), unknown, false))
	require.Same(t, unknown, Join(unknown, MakeStr("x"), false))
}

func TestJoinAllFoldsLeftToRight(t *testing.T) {
	vals := []*Value{MakeNum(1), MakeNum(2), MakeNum(3)}
	folded := JoinAll(vals, false)
	require.True(t, folded.Flags().has(fNumUIntPos))
	_, ok := folded.Num()
	require.False(t, ok)
}

func TestJoinAllOfEmptyIsNone(t *testing.T) {
	require.Same(t, none, JoinAll(nil, false))
}

func TestJoinOfDistinctIdentifiersTracksIncludedStrings(t *testing.T) {
	joined := Join(MakeStr("foo"), MakeStr("bar"), false)
	require.ElementsMatch(t, []string{"foo", "bar"}, joined.IncludedStrings().ToSlice())
	require.False(t, joined.Flags().has(fStrPrefix))
	require.True(t, joined.IsMaybeStrValue("foo"))
	require.True(t, joined.IsMaybeStrValue("bar"))
	require.False(t, joined.IsMaybeStrValue("baz"))
}

func TestJoinOfStringsWithSharedPrefixSetsStrPrefix(t *testing.T) {
	joined := Join(MakeStr("file_a"), MakeStr("file_b"), false)
	require.True(t, joined.Flags().has(fStrPrefix))
	s, ok := joined.Str()
	require.True(t, ok)
	require.Equal(t, "file_", s)
	require.ElementsMatch(t, []string{"file_a", "file_b"}, joined.IncludedStrings().ToSlice())
	require.True(t, joined.IsMaybeStrValue("file_a"))
	require.False(t, joined.IsMaybeStrValue("file_c"))
}

func TestJoinWidenCollapsesIncludedStringSet(t *testing.T) {
	old := stringSetsBound
	stringSetsBound = 2
	defer func() { stringSetsBound = old }()

	a := Join(MakeStr("a"), MakeStr("b"), true)
	b := Join(a, MakeStr("c"), true)
	require.Empty(t, b.IncludedStrings().ToSlice())
}

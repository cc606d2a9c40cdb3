package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRestrictToStrictEqualsNarrowsToConcreteString(t *testing.T) {
	v := Join(MakeStr("a"), MakeStr("b"), false)
	require.Same(t, MakeStr("a"), RestrictToStrictEquals(v, MakeStr("a")))
}

func TestRestrictToStrictEqualsImpossibleIsNone(t *testing.T) {
	require.Same(t, none, RestrictToStrictEquals(MakeStr("a"), MakeStr("b")))
}

func TestRestrictToStrictNotEqualsDropsExcludedString(t *testing.T) {
	v := Join(MakeStr("a"), MakeStr("b"), false)
	narrowed := RestrictToStrictNotEquals(v, MakeStr("a"))
	require.Same(t, MakeStr("b"), narrowed)
}

func TestRestrictToLooseEqualsNullUndef(t *testing.T) {
	v := Join(Join(Null(), Undef(), false), MakeStr("x"), false)
	narrowed := RestrictToLooseEquals(v, Null())
	require.True(t, narrowed.IsMaybeNull())
	require.True(t, narrowed.IsMaybeUndef())
	require.False(t, narrowed.IsMaybeStr())
}

func TestRestrictToLooseEqualsNumericStringCoercion(t *testing.T) {
	require.Same(t, MakeNum(0), RestrictToLooseEquals(MakeNum(0), MakeStr("")))
	require.Same(t, MakeStr(""), RestrictToLooseEquals(MakeStr(""), MakeNum(0)))

	v := Join(MakeNum(5), MakeStr("hi"), false)
	require.Same(t, MakeNum(5), RestrictToLooseEquals(v, MakeStr("5")))
}

func TestRestrictToStrictEqualsOnSingleObjectLabel(t *testing.T) {
	a := &fakeLabel{kind: ObjectLabelObject}
	b := &fakeLabel{kind: ObjectLabelObject}
	v := Join(MakeObjectLabel(a), MakeObjectLabel(b), false)
	narrowed := RestrictToStrictEquals(v, MakeObjectLabel(a))
	require.True(t, narrowed.ObjectLabels().Contains(a))
	require.False(t, narrowed.ObjectLabels().Contains(b))
}

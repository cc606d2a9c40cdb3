package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructorsCanonicalizeByReference(t *testing.T) {
	a := MakeStr("hello")
	b := MakeStr("hello")
	require.Same(t, a, b)

	c := MakeStr("world")
	require.NotSame(t, a, c)
}

func TestMakeNumClassifiesFacets(t *testing.T) {
	require.True(t, MakeNum(0).Flags().has(fNumZero))
	require.True(t, MakeNum(3).Flags().has(fNumUIntPos))
	require.True(t, MakeNum(-3).Flags().has(fNumOther))
	require.True(t, MakeNum(1.5).Flags().has(fNumOther))
}

func TestMakeStrClassifiesFacets(t *testing.T) {
	require.True(t, MakeStr("0").Flags().has(fStrUInt))
	require.True(t, MakeStr("-3").Flags().has(fStrOtherNum))
	require.True(t, MakeStr("foo").Flags().has(fStrIdentifier))
	require.True(t, MakeStr("123abc").Flags().has(fStrOtherIdentifierParts))
	require.True(t, MakeStr("!!!").Flags().has(fStrOther))
}

func TestNoneIsIdentityElement(t *testing.T) {
	v := MakeStr("x")
	require.Same(t, v, Join(v, none, false))
	require.Same(t, v, Join(none, v, false))
}

func TestSingletonAccessorsReturnStableValues(t *testing.T) {
	require.Same(t, Undef(), Undef())
	require.Same(t, BoolAny(), BoolAny())
	require.True(t, Undef().IsMaybeUndef())
	require.True(t, Null().IsMaybeNull())
}

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRestrictToTruthyDropsFalsyPrimitives(t *testing.T) {
	v := Join(Join(Undef(), Null(), false), Join(BoolTrue(), BoolFalse(), false), false)
	truthy := RestrictToTruthy(v)
	require.False(t, truthy.IsMaybeUndef())
	require.False(t, truthy.IsMaybeNull())
	require.False(t, truthy.IsMaybeFalse())
	require.True(t, truthy.IsMaybeTrue())
}

func TestRestrictToTruthyOnEmptyStringIsNone(t *testing.T) {
	require.Same(t, none, RestrictToTruthy(MakeStr("")))
}

func TestRestrictToFalsyOnNonEmptyStringIsNone(t *testing.T) {
	require.Same(t, none, RestrictToFalsy(MakeStr("hi")))
}

func TestRestrictToNumDropsNonNumberFacets(t *testing.T) {
	v := Join(MakeNum(3), MakeStr("x"), false)
	num := RestrictToNum(v)
	require.True(t, num.IsMaybeNum())
	require.False(t, num.IsMaybeStr())
}

func TestRestrictToStrNumericKeepsOnlyNumericStrings(t *testing.T) {
	v := Join(MakeStr("3"), MakeStr("abc"), false)
	numeric := RestrictToStrNumeric(v)
	require.True(t, numeric.Flags().has(fStrUInt))
	require.False(t, numeric.Flags().has(fStrIdentifier))
}

func TestRestrictToNotStrUIntOnConcreteUIntIsNone(t *testing.T) {
	require.Same(t, none, RestrictToNotStrUInt(MakeStr("0")))
}

func TestRestrictToNotStringsDropsMatchingConcreteString(t *testing.T) {
	excl := strSet("x")
	require.Same(t, none, RestrictToNotStrings(MakeStr("x"), excl))

	other := RestrictToNotStrings(MakeStr("y"), excl)
	require.Same(t, MakeStr("y"), other)
}

func TestRestrictToNotStringsNoOpWhenDisabled(t *testing.T) {
	old := noStringSets
	noStringSets = true
	defer func() { noStringSets = old }()

	v := MakeStr("x")
	require.Same(t, v, RestrictToNotStrings(v, strSet("x")))
}

func TestRestrictToGetterOnDataValueIsNone(t *testing.T) {
	require.Same(t, none, RestrictToGetter(MakeStr("x")))
}

func TestRestrictToNonSymbolObjectDropsSymbols(t *testing.T) {
	obj := &fakeLabel{kind: ObjectLabelObject}
	sym := &fakeLabel{kind: ObjectLabelSymbol}
	v := Join(MakeObjectLabel(obj), MakeObjectLabel(sym), false)
	restricted := RestrictToNonSymbolObject(v)
	require.True(t, restricted.ObjectLabels().Contains(obj))
	require.False(t, restricted.ObjectLabels().Contains(sym))
}

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringRendersNoneAndUnknown(t *testing.T) {
	require.Equal(t, "none", none.String())
	require.Equal(t, "unknown", unknown.String())
}

func TestStringRendersConcreteStr(t *testing.T) {
	require.Contains(t, MakeStr("hi").String(), `"hi"`)
}

func TestDiffReportsAddedFlags(t *testing.T) {
	var sb strings.Builder
	Undef().Diff(none, &sb)
	require.Contains(t, sb.String(), "+ "+Undef().String())
}

func TestDiffOnEqualValuesIsEmpty(t *testing.T) {
	var sb strings.Builder
	v := MakeStr("x")
	v.Diff(v, &sb)
	require.Empty(t, sb.String())
}

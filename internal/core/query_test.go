package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMaybeNumValueAcrossWidenedRange(t *testing.T) {
	nums := make([]*Value, 0, 32)
	for k := 1; k <= 32; k++ {
		nums = append(nums, MakeNum(float64(k)))
	}
	joined := JoinAll(nums, false)
	_, ok := joined.Num()
	require.False(t, ok)
	require.True(t, joined.Flags().has(fNumUIntPos))
	for k := 1; k <= 32; k++ {
		require.True(t, joined.IsMaybeNumValue(float64(k)))
	}
	require.False(t, joined.IsMaybeNumValue(-1))
}

func TestIsMaybeNumValueOnConcreteNumber(t *testing.T) {
	v := MakeNum(5)
	require.True(t, v.IsMaybeNumValue(5))
	require.False(t, v.IsMaybeNumValue(6))
}

func TestIsMaybeStrValueRespectsExcludedStrings(t *testing.T) {
	v := MakeStrExcluding(strSet("x"))
	require.False(t, v.IsMaybeStrValue("x"))
	require.True(t, v.IsMaybeStrValue("y"))
}

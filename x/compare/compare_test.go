package compare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	require.Equal(t, -1, Compare(1, 2))
	require.Equal(t, 0, Compare(2, 2))
	require.Equal(t, 1, Compare(3, 2))
	require.Equal(t, -1, Compare("bar", "foo"))
	require.Equal(t, 1, Compare(2.5, 1.5))
}

func TestReverseCompare(t *testing.T) {
	require.Equal(t, 1, ReverseCompare(1, 2))
	require.Equal(t, 0, ReverseCompare(2, 2))
	require.Equal(t, -1, ReverseCompare(3, 2))
}

func TestBoolCompare(t *testing.T) {
	require.Equal(t, 0, BoolCompare(false, false))
	require.Equal(t, -1, BoolCompare(false, true))
	require.Equal(t, 1, BoolCompare(true, false))
	require.Equal(t, -1, ReverseBoolCompare(true, false))
}

func TestLexicographicCompare(t *testing.T) {
	require.Equal(t, -1, LexicographicCompare([]int{1, 2, 3}, []int{1, 2, 4}))
	require.Equal(t, -1, LexicographicCompare([]int{1, 2}, []int{1, 2, 3}))
	require.Equal(t, 0, LexicographicCompare([]int{1, 2, 3}, []int{1, 2, 3}))
	require.Equal(t, 1, LexicographicCompare([]int{2}, []int{1, 9, 9}))
	require.Equal(t, 0, LexicographicCompare(nil, []int{}))
}

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareOrdering(t *testing.T) {
	v123 := NewFromValues(1, 2, 3)
	v124 := NewFromValues(1, 2, 4)
	v12 := NewFromValues(1, 2)
	v2 := NewFromValues(2)
	v199 := NewFromValues(1, 9, 9)

	require.True(t, Less(&v123, &v124))
	require.True(t, Less(&v12, &v123))
	require.True(t, Greater(&v2, &v199))
	require.Equal(t, 0, Compare(&v123, &v123))
}

func TestEquality(t *testing.T) {
	a := NewFromValues(1, 2, 3)
	b := NewFromValues(1, 2, 3)
	c := NewFromValues(1, 2)

	require.True(t, Equal(&a, &b))
	require.False(t, NotEqual(&a, &b))
	require.True(t, NotEqual(&a, &c))

	// Capacity plays no part in equality.
	b.Reserve(100)
	require.True(t, Equal(&a, &b))

	empty1 := New[int]()
	empty2 := NewWithCapacity[int](4)
	require.True(t, Equal(&empty1, &empty2))
}

func TestOrderRelationsAreConsistent(t *testing.T) {
	lo := NewFromValues("bar")
	hi := NewFromValues("foo")

	require.True(t, LessEqual(&lo, &hi))
	require.True(t, LessEqual(&lo, &lo))
	require.True(t, GreaterEqual(&hi, &lo))
	require.True(t, GreaterEqual(&hi, &hi))
	require.False(t, Greater(&lo, &hi))
	require.False(t, Less(&hi, &lo))
}

package arrayptr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewArrayPtrZeroCapacity(t *testing.T) {
	p := NewArrayPtr[int](0)
	require.Equal(t, 0, p.Cap())
	require.Nil(t, p.Data())
}

func TestNewArrayPtrZeroesSlots(t *testing.T) {
	p := NewArrayPtr[int](4)
	require.Equal(t, 4, p.Cap())
	for i := 0; i < 4; i++ {
		require.Equal(t, 0, *p.At(i))
	}
}

func TestAtWritesThrough(t *testing.T) {
	p := NewArrayPtr[string](2)
	*p.At(1) = "foo"
	require.Equal(t, "foo", p.Data()[1])
}

func TestSwapExchangesAllocations(t *testing.T) {
	p1 := NewArrayPtr[int](2)
	p2 := NewArrayPtr[int](3)
	*p1.At(0) = 1
	*p2.At(0) = 2

	p1.Swap(&p2)
	require.Equal(t, 3, p1.Cap())
	require.Equal(t, 2, p2.Cap())
	require.Equal(t, 2, *p1.At(0))
	require.Equal(t, 1, *p2.At(0))
}

func TestExchangeLeavesSourceEmpty(t *testing.T) {
	p1 := NewArrayPtr[int](1)
	p2 := NewArrayPtr[int](5)
	*p2.At(4) = 42

	p1.Exchange(&p2)
	require.Equal(t, 5, p1.Cap())
	require.Equal(t, 42, *p1.At(4))
	require.Equal(t, 0, p2.Cap())
	require.Nil(t, p2.Data())
}

func TestReset(t *testing.T) {
	p := NewArrayPtr[int](3)
	p.Reset()
	require.Equal(t, 0, p.Cap())
}

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NKaty/cpp-simple-vector/x/pool"
)

func TestVectorPoolGetPut(t *testing.T) {
	buckets := []pool.Bucket{
		{Capacity: 4, Count: 1},
		{Capacity: 8, Count: 1},
	}
	p := NewVectorPool[int](buckets, nil)
	p.Init()

	v := p.Get(3)
	require.True(t, v.IsEmpty())
	require.GreaterOrEqual(t, v.GetCapacity(), 3)

	v.PushBack(1)
	v.PushBack(2)
	p.Put(v)

	// The pooled vector comes back cleared but with its capacity intact.
	reused := p.Get(4)
	require.Same(t, v, reused)
	require.True(t, reused.IsEmpty())
	require.GreaterOrEqual(t, reused.GetCapacity(), 4)
}

func TestVectorPoolOverMaxCapacityAllocates(t *testing.T) {
	buckets := []pool.Bucket{{Capacity: 4, Count: 1}}
	p := NewVectorPool[int](buckets, nil)
	p.Init()

	v := p.Get(16)
	require.Equal(t, 16, v.GetCapacity())
	require.True(t, v.IsEmpty())

	// Vectors above the largest bucket are never retained.
	p.Put(v)
	again := p.Get(16)
	require.NotSame(t, v, again)
}

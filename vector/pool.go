package vector

import (
	"github.com/NKaty/cpp-simple-vector/x/pool"
)

// VectorPool is a bucketized reuse pool of vectors. Get hands out a
// cleared vector whose capacity is at least the requested one; Put
// returns a vector to the bucket matching its capacity. Vectors above the
// largest bucket capacity are allocated directly and never retained.
type VectorPool[T any] struct {
	pool *pool.BucketizedPool[*SimpleVector[T]]
}

// NewVectorPool creates a new vector pool with the given capacity buckets.
func NewVectorPool[T any](buckets []pool.Bucket, opts *pool.Options) *VectorPool[T] {
	return &VectorPool[T]{
		pool: pool.NewBucketizedPool[*SimpleVector[T]](buckets, opts),
	}
}

// Init initializes the vector pool.
func (p *VectorPool[T]) Init() {
	p.pool.Init(func(capacity int) *SimpleVector[T] {
		v := NewWithCapacity[T](capacity)
		return &v
	})
}

// Get returns an empty vector with capacity at least `capacity`.
func (p *VectorPool[T]) Get(capacity int) *SimpleVector[T] {
	v := p.pool.Get(capacity)
	v.Clear()
	return v
}

// Put returns a vector to the pool.
func (p *VectorPool[T]) Put(v *SimpleVector[T]) {
	p.pool.Put(v, v.GetCapacity())
}

package pool

import (
	"fmt"
	"sort"

	"github.com/uber-go/tally"
)

// Bucket specifies a bucket.
type Bucket struct {
	// Capacity is the size of each element in the bucket.
	Capacity int

	// Count is the number of fixed elements in the bucket.
	Count int

	// Options is an optional override to specify options to use for a bucket,
	// specify nil to use the options specified to the bucketized pool
	// constructor for this bucket.
	Options *Options
}

// bucketByCapacity is a sortable collection of pool buckets.
type bucketByCapacity []Bucket

func (x bucketByCapacity) Len() int {
	return len(x)
}

func (x bucketByCapacity) Swap(i, j int) {
	x[i], x[j] = x[j], x[i]
}

func (x bucketByCapacity) Less(i, j int) bool {
	return x[i].Capacity < x[j].Capacity
}

type bucketPool[T any] struct {
	capacity int
	pool     *Pool[T]
}

// BucketizedPool is a bucketized value pool.
type BucketizedPool[T any] struct {
	sizesAsc          []Bucket
	buckets           []bucketPool[T]
	maxBucketCapacity int
	opts              *Options
	alloc             func(capacity int) T
	maxAlloc          tally.Counter
}

// NewBucketizedPool creates a bucketized object pool.
func NewBucketizedPool[T any](sizes []Bucket, opts *Options) *BucketizedPool[T] {
	if opts == nil {
		opts = NewOptions()
	}

	sizesAsc := make([]Bucket, len(sizes))
	copy(sizesAsc, sizes)
	sort.Sort(bucketByCapacity(sizesAsc))

	var maxBucketCapacity int
	if len(sizesAsc) != 0 {
		maxBucketCapacity = sizesAsc[len(sizesAsc)-1].Capacity
	}

	return &BucketizedPool[T]{
		opts:              opts,
		sizesAsc:          sizesAsc,
		maxBucketCapacity: maxBucketCapacity,
		maxAlloc:          opts.InstrumentOptions().MetricsScope().Counter("alloc-max"),
	}
}

// Init initializes the bucketized pool.
func (p *BucketizedPool[T]) Init(alloc func(capacity int) T) {
	buckets := make([]bucketPool[T], len(p.sizesAsc))
	for i := range p.sizesAsc {
		size := p.sizesAsc[i].Count
		capacity := p.sizesAsc[i].Capacity

		opts := p.opts
		if perBucketOpts := p.sizesAsc[i].Options; perBucketOpts != nil {
			opts = perBucketOpts
		}

		opts = opts.SetSize(size)
		iOpts := opts.InstrumentOptions()
		opts = opts.SetInstrumentOptions(iOpts.SetMetricsScope(iOpts.MetricsScope().Tagged(map[string]string{
			"bucket-capacity": fmt.Sprintf("%d", capacity),
		})))

		buckets[i].capacity = capacity
		buckets[i].pool = NewPool[T](opts)
		buckets[i].pool.Init(func() T {
			return alloc(capacity)
		})
	}
	p.buckets = buckets
	p.alloc = alloc
}

// Get gets a value with at least the given capacity from the pool.
func (p *BucketizedPool[T]) Get(capacity int) T {
	if capacity > p.maxBucketCapacity {
		p.maxAlloc.Inc(1)
		return p.alloc(capacity)
	}
	for i := range p.buckets {
		if p.buckets[i].capacity >= capacity {
			return p.buckets[i].pool.Get()
		}
	}
	return p.alloc(capacity)
}

// Put puts a value with the given capacity to the pool.
func (p *BucketizedPool[T]) Put(v T, capacity int) {
	if capacity > p.maxBucketCapacity {
		return
	}

	for i := len(p.buckets) - 1; i >= 0; i-- {
		if capacity >= p.buckets[i].capacity {
			p.buckets[i].pool.Put(v)
			return
		}
	}
}

package arrayptr

// ArrayPtr is the exclusive owner of a single contiguous block of value
// slots. A zero-capacity ArrayPtr owns no allocation at all. The type does
// no element-level bookkeeping beyond allocating the block with every slot
// zero-valued; it is an allocation owner, not a container.
type ArrayPtr[T any] struct {
	data []T
}

// NewArrayPtr allocates a block of exactly `capacity` zero-valued slots.
// A capacity of zero allocates nothing. Allocation failure surfaces as the
// runtime's out-of-memory panic and is never translated.
func NewArrayPtr[T any](capacity int) ArrayPtr[T] {
	if capacity == 0 {
		return ArrayPtr[T]{}
	}
	return ArrayPtr[T]{data: make([]T, capacity)}
}

// At returns the slot at index `i` without bounds checking against any
// logical size. The caller guarantees `i < Cap()`; indexing past the
// capacity panics.
func (p *ArrayPtr[T]) At(i int) *T { return &p.data[i] }

// Data returns the full-capacity window over the owned block, for bulk
// copies. The window is invalidated once ownership moves via Swap,
// Exchange or Reset.
func (p *ArrayPtr[T]) Data() []T { return p.data }

// Cap returns the number of slots in the owned block.
func (p *ArrayPtr[T]) Cap() int { return len(p.data) }

// Swap exchanges the owned allocations of the two arrays in constant time.
// No slots are copied.
func (p *ArrayPtr[T]) Swap(other *ArrayPtr[T]) {
	p.data, other.data = other.data, p.data
}

// Exchange takes ownership of `other`'s allocation, releasing the current
// one, and leaves `other` owning nothing. Constant time.
func (p *ArrayPtr[T]) Exchange(other *ArrayPtr[T]) {
	p.data = other.data
	other.data = nil
}

// Reset releases the owned allocation, returning the array to the empty
// state.
func (p *ArrayPtr[T]) Reset() { p.data = nil }

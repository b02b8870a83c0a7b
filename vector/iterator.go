package vector

// Iterator is a forward cursor over a vector's logical sequence. It is
// positioned before the first element until the first call to Next.
type Iterator[T any] struct {
	values []T
	idx    int
}

// Iter returns a forward iterator over the elements in [0, size). The
// iterator is invalidated by any reallocating operation on the vector.
func (v *SimpleVector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		values: v.Data(),
		idx:    -1,
	}
}

// Next returns whether the next value is available.
func (it *Iterator[T]) Next() bool {
	if it.idx+1 >= len(it.values) {
		return false
	}
	it.idx++
	return true
}

// Current returns the current value.
func (it *Iterator[T]) Current() T { return it.values[it.idx] }

// Close closes the iterator.
func (it *Iterator[T]) Close() {}

// Package vector provides a generic resizable-array container with
// value semantics, amortized-constant-time append, and capacity managed
// independently of the logical size.
package vector

import (
	"errors"
	"fmt"

	"github.com/NKaty/cpp-simple-vector/x/arrayptr"
)

// ErrIndexOutOfRange is returned by At when the requested index is not
// less than the current logical size.
var ErrIndexOutOfRange = errors.New("index out of range")

// SimpleVector is a dynamic array backed by a single exclusively-owned
// contiguous allocation. Elements at indices [0, size) form the logical
// sequence; slots between the size and the capacity hold unspecified
// values and are never observed through the sequence interface.
//
// The container is not synchronized. Any reallocating operation (Resize,
// Reserve, PushBack, Insert when growth is needed) invalidates every
// window or element pointer previously obtained from Data, Iter, At or
// Ref; callers re-derive positions from indices across such calls.
type SimpleVector[T any] struct {
	array arrayptr.ArrayPtr[T]
	size  int
}

// New creates an empty vector with no allocation.
func New[T any]() SimpleVector[T] {
	return SimpleVector[T]{}
}

// NewWithSize creates a vector of `size` zero-valued elements, with
// capacity equal to the size.
func NewWithSize[T any](size int) SimpleVector[T] {
	return SimpleVector[T]{
		array: arrayptr.NewArrayPtr[T](size),
		size:  size,
	}
}

// NewWithValue creates a vector of `size` elements, each equal to
// `value`, with capacity equal to the size.
func NewWithValue[T any](size int, value T) SimpleVector[T] {
	v := NewWithSize[T](size)
	data := v.array.Data()
	for i := range data {
		data[i] = value
	}
	return v
}

// NewFromValues creates a vector holding the given values in order, with
// capacity equal to their count.
func NewFromValues[T any](values ...T) SimpleVector[T] {
	v := NewWithSize[T](len(values))
	copy(v.array.Data(), values)
	return v
}

// NewWithCapacity creates an empty vector whose buffer holds exactly
// `capacity` zero-valued slots. No elements are materialized.
func NewWithCapacity[T any](capacity int) SimpleVector[T] {
	return SimpleVector[T]{
		array: arrayptr.NewArrayPtr[T](capacity),
	}
}

// GetSize returns the number of elements in the vector.
func (v *SimpleVector[T]) GetSize() int { return v.size }

// GetCapacity returns the number of slots in the owned buffer.
func (v *SimpleVector[T]) GetCapacity() int { return v.array.Cap() }

// IsEmpty returns whether the vector holds no elements.
func (v *SimpleVector[T]) IsEmpty() bool { return v.size == 0 }

// Ref returns the element at index `i` without bounds checking against
// the logical size. The caller guarantees `i < GetSize()`; violating the
// precondition is undefined behavior (an index past the capacity panics,
// one between the size and the capacity reads an unspecified slot). This
// is the deliberate unchecked fast path; use At for the checked one.
func (v *SimpleVector[T]) Ref(i int) *T { return v.array.At(i) }

// At returns the element at index `i`, or ErrIndexOutOfRange when
// `i >= GetSize()`.
func (v *SimpleVector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, ErrIndexOutOfRange
	}
	return v.array.At(i), nil
}

// Data returns the mutable window over the logical sequence [0, size).
// The window is invalidated by any reallocating operation.
func (v *SimpleVector[T]) Data() []T {
	return v.array.Data()[:v.size]
}

// Clear sets the size to zero. The capacity and the underlying storage
// are left unchanged.
func (v *SimpleVector[T]) Clear() { v.size = 0 }

// Resize changes the logical size. Shrinking only lowers the size. Growth
// within the current capacity zeroes the newly exposed slots in place.
// Growth past the capacity reallocates to max(newSize, size*2) slots,
// moving the existing elements in order, so that a sequence of
// single-element grows costs amortized constant time per element.
// A negative size panics.
func (v *SimpleVector[T]) Resize(newSize int) {
	if newSize < 0 {
		panic(fmt.Errorf("invalid size %d", newSize))
	}
	switch {
	case newSize < v.size:
		v.size = newSize
	case newSize <= v.array.Cap():
		var zero T
		data := v.array.Data()
		for i := v.size; i < newSize; i++ {
			data[i] = zero
		}
		v.size = newSize
	default:
		newCapacity := newSize
		if doubled := v.size * 2; doubled > newCapacity {
			newCapacity = doubled
		}
		newArray := arrayptr.NewArrayPtr[T](newCapacity)
		copy(newArray.Data(), v.array.Data()[:v.size])
		v.array.Swap(&newArray)
		v.size = newSize
	}
}

// PushBack appends a value, growing the buffer if it is full.
func (v *SimpleVector[T]) PushBack(value T) {
	v.Resize(v.size + 1)
	*v.array.At(v.size - 1) = value
}

// Insert inserts a value before position `pos`, shifting the tail right,
// and returns the index of the inserted element. `pos` must be in
// [0, GetSize()]. Insertion into a full vector reallocates, invalidating
// prior windows and element pointers.
func (v *SimpleVector[T]) Insert(pos int, value T) int {
	v.Resize(v.size + 1)
	data := v.array.Data()
	copy(data[pos+1:v.size], data[pos:v.size-1])
	data[pos] = value
	return pos
}

// PopBack removes the last element. Popping an empty vector is a no-op.
func (v *SimpleVector[T]) PopBack() {
	if v.IsEmpty() {
		return
	}
	v.size--
}

// Erase removes the element at position `pos`, shifting the tail left,
// and returns the index of the element following the removed one. `pos`
// must be in [0, GetSize()).
func (v *SimpleVector[T]) Erase(pos int) int {
	data := v.array.Data()
	copy(data[pos:v.size-1], data[pos+1:v.size])
	v.size--
	return pos
}

// Reserve grows the buffer to exactly `newCapacity` slots when that
// exceeds the current capacity, moving the existing elements in order.
// Otherwise it is a no-op.
func (v *SimpleVector[T]) Reserve(newCapacity int) {
	if newCapacity <= v.array.Cap() {
		return
	}
	newArray := arrayptr.NewArrayPtr[T](newCapacity)
	copy(newArray.Data(), v.array.Data()[:v.size])
	v.array.Swap(&newArray)
}

// Swap exchanges all state with another vector in constant time.
func (v *SimpleVector[T]) Swap(other *SimpleVector[T]) {
	v.array.Swap(&other.array)
	v.size, other.size = other.size, v.size
}

// Clone returns a deep copy holding the same elements in independent
// storage, with capacity equal to the size.
func (v *SimpleVector[T]) Clone() SimpleVector[T] {
	c := NewWithSize[T](v.size)
	copy(c.array.Data(), v.array.Data()[:v.size])
	return c
}

// CopyFrom replaces the contents with a deep copy of `other`. The copy is
// built first and swapped in, so an allocation panic mid-copy leaves the
// target unchanged.
func (v *SimpleVector[T]) CopyFrom(other *SimpleVector[T]) {
	if v == other {
		return
	}
	c := other.Clone()
	v.Swap(&c)
}

// TakeFrom transfers `other`'s buffer into the vector in constant time,
// releasing the current buffer and leaving `other` empty with zero
// capacity so it can be safely reused or discarded.
func (v *SimpleVector[T]) TakeFrom(other *SimpleVector[T]) {
	if v == other {
		return
	}
	v.array.Exchange(&other.array)
	v.size = other.size
	other.size = 0
}

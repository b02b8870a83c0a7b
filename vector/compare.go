package vector

import (
	"golang.org/x/exp/constraints"

	"github.com/NKaty/cpp-simple-vector/x/compare"
)

// Compare compares two vectors lexicographically on their elements, and
// returns
// * -1 if lhs precedes rhs
// * 0 if lhs and rhs are element-wise equal
// * 1 if lhs follows rhs
// A vector that is a strict prefix of the other precedes it.
func Compare[T constraints.Ordered](lhs, rhs *SimpleVector[T]) int {
	return compare.LexicographicCompare(lhs.Data(), rhs.Data())
}

// Equal returns whether the two vectors hold equal sequences, defined as
// neither ordering before the other.
func Equal[T constraints.Ordered](lhs, rhs *SimpleVector[T]) bool {
	return Compare(lhs, rhs) == 0
}

// NotEqual returns whether the two vectors hold unequal sequences.
func NotEqual[T constraints.Ordered](lhs, rhs *SimpleVector[T]) bool {
	return !Equal(lhs, rhs)
}

// Less returns whether lhs orders lexicographically before rhs.
func Less[T constraints.Ordered](lhs, rhs *SimpleVector[T]) bool {
	return Compare(lhs, rhs) < 0
}

// LessEqual returns whether lhs does not order after rhs.
func LessEqual[T constraints.Ordered](lhs, rhs *SimpleVector[T]) bool {
	return Compare(lhs, rhs) <= 0
}

// Greater returns whether lhs orders lexicographically after rhs.
func Greater[T constraints.Ordered](lhs, rhs *SimpleVector[T]) bool {
	return Compare(lhs, rhs) > 0
}

// GreaterEqual returns whether lhs does not order before rhs.
func GreaterEqual[T constraints.Ordered](lhs, rhs *SimpleVector[T]) bool {
	return Compare(lhs, rhs) >= 0
}

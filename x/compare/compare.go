package compare

import "golang.org/x/exp/constraints"

// CompareFn compares two values.
type CompareFn[T any] func(v1, v2 T) int

// Compare compares two ordered values, and returns
// * -1 if v1 < v2
// * 0 if v1 == v2
// * 1 if v1 > v2
func Compare[T constraints.Ordered](v1, v2 T) int {
	if v1 < v2 {
		return -1
	}
	if v1 > v2 {
		return 1
	}
	return 0
}

// ReverseCompare reverse compares two ordered values.
func ReverseCompare[T constraints.Ordered](v1, v2 T) int { return Compare(v2, v1) }

// BoolCompare compares two boolean values, treating false as less than
// true, and returns
// * -1 if v1 < v2
// * 0 if v1 == v2
// * 1 if v1 > v2
func BoolCompare(v1, v2 bool) int {
	if v1 == v2 {
		return 0
	}
	if !v1 {
		return -1
	}
	return 1
}

// ReverseBoolCompare reverse compares two boolean values.
func ReverseBoolCompare(v1, v2 bool) int { return BoolCompare(v2, v1) }

// LexicographicCompare compares two sequences lexicographically, and returns
// * -1 if a1 precedes a2
// * 0 if a1 and a2 are element-wise equal
// * 1 if a1 follows a2
// A sequence that is a strict prefix of the other precedes it.
func LexicographicCompare[T constraints.Ordered](a1, a2 []T) int {
	n := len(a1)
	if len(a2) < n {
		n = len(a2)
	}
	for i := 0; i < n; i++ {
		if res := Compare(a1[i], a2[i]); res != 0 {
			return res
		}
	}
	return Compare(len(a1), len(a2))
}

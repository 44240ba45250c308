package immutree

import "golang.org/x/exp/constraints"

// Comparator is a total order over values of type T. It returns a negative number
// if a < b, zero if a == b, and a positive number if a > b.
//
// Ordered structures never assume a language-native ordering; clients always inject
// a Comparator at construction time.
type Comparator[T any] func(a, b T) int

// Ordered returns the natural ordering for types supporting the comparison operators.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// FromGreater turns a “greater-than” predicate into a Comparator. Two values
// are considered equal if neither one is greater than the other.
func FromGreater[T any](greater func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		if greater(a, b) {
			return 1
		}
		if greater(b, a) {
			return -1
		}
		return 0
	}
}

// Reverse returns the inverse ordering of cmp.
func (cmp Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// Max returns the greater of a and b. If they compare equal, a is returned.
func Max[T any](a, b T, cmp Comparator[T]) T {
	if cmp(b, a) > 0 {
		return b
	}
	return a
}

// Min returns the lesser of a and b. If they compare equal, b is returned.
func Min[T any](a, b T, cmp Comparator[T]) T {
	if cmp(a, b) < 0 {
		return a
	}
	return b
}

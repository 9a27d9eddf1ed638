package list

import "cmp"

// Equal is true if a and b have the same length and pairwise equal elements.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[T any](a, b List[T], eq func(T, T) bool) bool {
	for {
		switch {
		case a.head == b.head: // shared suffix or both empty
			return true
		case a.head == nil || b.head == nil:
			return false
		case !eq(a.head.value, b.head.value):
			return false
		}
		a, b = a.head.next, b.head.next
	}
}

// Compare orders lists lexicographically. It returns -1 if a < b, 0 if a == b and
// +1 if a > b. If a is a proper prefix of b, a < b; the empty list is less than
// any non-empty list.
func Compare[T cmp.Ordered](a, b List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare, but orders elements with c, which is expected to
// return a negative number for x < y, 0 for x == y and a positive number for x > y.
func CompareFunc[T any](a, b List[T], c func(x, y T) int) int {
	for {
		switch {
		case a.head == b.head:
			return 0
		case a.head == nil:
			return -1
		case b.head == nil:
			return +1
		}
		if r := c(a.head.value, b.head.value); r != 0 {
			if r < 0 {
				return -1
			}
			return +1
		}
		a, b = a.head.next, b.head.next
	}
}

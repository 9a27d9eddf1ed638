package list

// Of creates a list from values, with values[0] becoming the front of the
// list. Of() returns the empty list.
//
//     l := list.Of(1, 2, 3)   // (1 2 3)
//
func Of[T any](values ...T) List[T] {
	return FromSlice(values)
}

// FromSlice creates a list holding the elements of s in the same order.
// The list does not reference s after construction.
func FromSlice[T any](s []T) List[T] {
	var l List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = l.Prepend(s[i])
	}
	return l
}

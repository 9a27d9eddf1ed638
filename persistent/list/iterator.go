package list

// Iterator walks a list front to back. An iterator is a one-shot cursor;
// call List.Iterator again to start over.
type Iterator[T any] struct {
	at List[T]
}

// Iterator returns a new iterator positioned at the front of l. Iterators are
// independent of each other.
func (l List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{at: l}
}

// Next returns the element at the cursor position and advances the cursor.
// When the end of the list is reached, Next returns the zero value for T and
// false, on every subsequent call as well.
func (it *Iterator[T]) Next() (T, bool) {
	if it.at.head == nil {
		var none T
		return none, false
	}
	c := it.at.head
	tracer().Debugf("list iterator: visiting %v", c.value)
	it.at = c.next
	return c.value, true
}

// Rest returns the part of the list not visited yet.
func (it *Iterator[T]) Rest() List[T] {
	return it.at
}

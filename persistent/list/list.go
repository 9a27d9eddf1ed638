package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/plist/maybe"
)

// List is an immutable singly-linked list. An empty instance is usable as an
// empty list, i.e. this is legal:
//
//     l := list.List[int]{}.Prepend(42)
//
// returning a list containing a single value 42.
//
type List[T any] struct {
	head *cell[T] // nil for the empty list
}

// cell is a node of a list. Cells are never modified after construction.
type cell[T any] struct {
	value T
	next  List[T]
}

// New returns an empty list.
func New[T any]() List[T] {
	return List[T]{}
}

// --- API -------------------------------------------------------------------

// Prepend returns a new list with value in front of l. l is left unchanged and
// becomes the tail of the new list.
func (l List[T]) Prepend(value T) List[T] {
	return List[T]{head: &cell[T]{value: value, next: l}}
}

// IsEmpty is true iff l has no elements. O(1).
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len counts the elements of l. O(n).
func (l List[T]) Len() int {
	n := 0
	it := l.Iterator()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// ContainsFunc returns true if some element of l satisfies pred. The search
// stops at the first match.
func (l List[T]) ContainsFunc(pred func(T) bool) bool {
	it := l.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Contains returns true if value is an element of l.
func Contains[T comparable](l List[T], value T) bool {
	return l.ContainsFunc(func(v T) bool {
		return v == value
	})
}

// Front returns the first element of l, or Nothing for an empty list.
func (l List[T]) Front() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Back inspects at most the first two elements of l: it returns the second
// element if there is one, otherwise the first one. It does not return the
// last element of lists longer than 2; use Last for that.
//
//     list.Of(1, 2, 3, 4, 5).Back()   // Just(2)
//     list.Of(1).Back()               // Just(1)
//
func (l List[T]) Back() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	if next := l.head.next; next.head != nil {
		return maybe.Just(next.head.value)
	}
	return maybe.Just(l.head.value)
}

// Last returns the last element of l, or Nothing for an empty list. O(n).
func (l List[T]) Last() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	c := l.head
	for c.next.head != nil {
		c = c.next.head
	}
	return maybe.Just(c.value)
}

// Tail returns the list following the first element of l. The result shares
// all its cells with l. For an empty list, Tail returns Nothing.
func (l List[T]) Tail() maybe.Maybe[List[T]] {
	if l.head == nil {
		return maybe.Nothing[List[T]]()
	}
	return maybe.Just(l.head.next)
}

// Skip returns the sub-list which starts after the first n elements of l.
// Skip(0) returns l itself. If l has fewer than n elements, or n is negative,
// Nothing is returned.
func (l List[T]) Skip(n int) maybe.Maybe[List[T]] {
	if n < 0 {
		return maybe.Nothing[List[T]]()
	}
	for ; n > 0; n-- {
		if l.head == nil {
			return maybe.Nothing[List[T]]()
		}
		l = l.head.next
	}
	return maybe.Just(l)
}

// Get returns the element at (zero-based) position n, or Nothing if n is out
// of range.
func (l List[T]) Get(n int) maybe.Maybe[T] {
	return maybe.AndThen(List[T].Front, l.Skip(n))
}

// Shares is true if l and other are the very same chain of cells, i.e. one is
// not just equal to the other but identical. Two empty lists share.
func (l List[T]) Shares(other List[T]) bool {
	return l.head == other.head
}

// Values returns the elements of l, front to back, in a fresh slice.
func (l List[T]) Values() []T {
	values := make([]T, 0, l.Len())
	it := l.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		values = append(values, v)
	}
	assertThat(len(values) == cap(values), "list changed length during traversal")
	return values
}

// String formats a list like a Lisp list: (1 2 3).
func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for c := l.head; c != nil; c = c.next.head {
		if c != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprint(c.value))
	}
	b.WriteByte(')')
	return b.String()
}

package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/immutree/maybe"
)

// cell is a single link of a list. Cells are never modified after creation and
// may be shared by any number of lists.
type cell[T any] struct {
	value  T
	next   *cell[T]
	length int // length of the list headed by this cell
}

// List is a persistent singly linked list. The zero value is an empty list.
type List[T any] struct {
	head *cell[T]
}

// Empty returns an empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of creates a list from values, with values[0] becoming the head of the list.
func Of[T any](values ...T) List[T] {
	l := List[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Prepend(values[i])
	}
	return l
}

// --- API -------------------------------------------------------------------

// Len returns the number of values in l.
func (l List[T]) Len() int {
	if l.head == nil {
		return 0
	}
	return l.head.length
}

// IsEmpty is a predicate: does l contain no values?
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Prepend returns a new list with value as its head and l as its tail.
func (l List[T]) Prepend(value T) List[T] {
	return List[T]{head: &cell[T]{value: value, next: l.head, length: l.Len() + 1}}
}

// Peek returns the head of l.
// Peeking an empty list panics with an error wrapping immutree.ErrEmptyCollection.
func (l List[T]) Peek() T {
	assertNotEmpty(l, "peek")
	return l.head.value
}

// Head returns the head of l, or Nothing if l is empty.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Pop returns the tail of l. Popping an empty list returns an empty list.
func (l List[T]) Pop() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next}
}

// Last returns the final value of l.
// Calling Last on an empty list panics with an error wrapping immutree.ErrEmptyCollection.
func (l List[T]) Last() T {
	assertNotEmpty(l, "peek at last value")
	c := l.head
	for c.next != nil {
		c = c.next
	}
	return c.value
}

// Reverse returns a list with the values of l in reverse order.
func (l List[T]) Reverse() List[T] {
	r := List[T]{}
	for c := l.head; c != nil; c = c.next {
		r = r.Prepend(c.value)
	}
	return r
}

// Concat returns a list with the values of l followed by the values of other.
// The result shares all of other's cells; only l's cells are copied.
func (l List[T]) Concat(other List[T]) List[T] {
	if l.head == nil {
		return other
	}
	if other.head == nil {
		return l
	}
	r := other
	for c := l.Reverse().head; c != nil; c = c.next {
		r = r.Prepend(c.value)
	}
	return r
}

// Append returns a list with value added at the end of l. This is O(n),
// as all of l's cells have to be copied.
func (l List[T]) Append(value T) List[T] {
	return l.Concat(List[T]{}.Prepend(value))
}

// Each calls f for every value of l, from head to end, until f returns false.
func (l List[T]) Each(f func(T) bool) {
	for c := l.head; c != nil; c = c.next {
		if !f(c.value) {
			return
		}
	}
}

// Slice returns the values of l as a newly allocated slice.
func (l List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	l.Each(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for c := l.head; c != nil; c = c.next {
		if c != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", c.value))
	}
	b.WriteByte(')')
	return b.String()
}

// Fold folds l from the left, i.e. starting at the head.
func Fold[T, A any](l List[T], zero A, f func(A, T) A) A {
	r := zero
	for c := l.head; c != nil; c = c.next {
		r = f(r, c.value)
	}
	return r
}

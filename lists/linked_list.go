package lists

import (
	"fmt"
	"iter"
	"strings"
)

// chunkSize is the number of elements stored per chunk.
const chunkSize = 32

type chunk[T any] struct {
	next *chunk[T]
	n    int
	vals [chunkSize]T
}

// LinkedList is an append-only, singly linked list of fixed-size chunks.
//
// Elements never move once pushed, so pointers returned by Push stay valid for
// as long as the caller holds them, including after Forget.
type LinkedList[T any] struct {
	head *chunk[T]
	tail *chunk[T]
	size int
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (ll *LinkedList[T]) Add(values ...T) {
	for _, v := range values {
		ll.Push(v)
	}
}

func (ll *LinkedList[T]) Push(value T) *T {
	if ll.tail == nil || ll.tail.n == chunkSize {
		c := &chunk[T]{}
		if ll.tail == nil {
			ll.head = c
		} else {
			ll.tail.next = c
		}
		ll.tail = c
	}
	slot := &ll.tail.vals[ll.tail.n]
	*slot = value
	ll.tail.n++
	ll.size++
	return slot
}

// Forget drops the list's references to every chunk before the tail chunk.
// Elements in dropped chunks are no longer visible through the list, but
// pointers obtained from Push remain valid; the garbage collector reclaims a
// chunk once nothing points into it.
func (ll *LinkedList[T]) Forget() {
	if ll.tail == nil || ll.head == ll.tail {
		return
	}
	ll.head = ll.tail
	ll.size = ll.tail.n
}

// Get retrieves the element at the specified index.
// Note: This is an O(N/chunkSize) operation
func (ll *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= ll.size {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	c := ll.head
	for index >= c.n {
		index -= c.n
		c = c.next
	}
	return c.vals[index], nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	// chunks are unreachable after this; outstanding pointers keep theirs alive
	ll.head = nil
	ll.tail = nil
	ll.size = 0
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := ll.head; c != nil; c = c.next {
			for i := 0; i < c.n; i++ {
				if !yield(c.vals[i]) {
					return
				}
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	res := make([]T, 0, ll.size)
	for v := range ll.Values() {
		res = append(res, v)
	}
	return res
}

// String implements fmt.Stringer for easier debugging.
func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true
	for v := range ll.Values() {
		if !first {
			sb.WriteString(" ")
		}
		first = false
		sb.WriteString(fmt.Sprint(v))
	}
	sb.WriteString("]")
	return sb.String()
}

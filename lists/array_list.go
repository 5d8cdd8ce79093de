package lists

import (
	"fmt"
	"iter"
	"slices"
)

var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
)

// ArrayList is a slice-backed list.
//
// Pointers returned by Push and At point into the backing array, so they stay
// valid only while the list does not grow past its capacity. Reserve the final
// size up front (NewArrayList or Reserve) when stable pointers are needed.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// FromSlice wraps values without copying them.
func FromSlice[T any](values []T) *ArrayList[T] {
	return &ArrayList[T]{data: values}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Push(value T) *T {
	al.data = append(al.data, value)
	return &al.data[len(al.data)-1]
}

// Full reports whether the next Push would reallocate the backing array.
func (al *ArrayList[T]) Full() bool {
	return len(al.data) == cap(al.data)
}

// Reserve grows the capacity so that n more elements fit without reallocation.
func (al *ArrayList[T]) Reserve(n int) {
	al.data = slices.Grow(al.data, n)
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

// At returns a pointer to the element at index, or nil if index is out of bounds.
func (al *ArrayList[T]) At(index int) *T {
	if index < 0 || index >= len(al.data) {
		return nil
	}
	return &al.data[index]
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Sort(compare func(a, b T) int) {
	slices.SortFunc(al.data, compare)
}

// SortStable sorts the list keeping the original order of equal elements.
func (al *ArrayList[T]) SortStable(compare func(a, b T) int) {
	slices.SortStableFunc(al.data, compare)
}

// BinarySearch searches a list sorted by compare for target. It returns the
// position of the first match, or where target would be inserted, and whether
// target was found.
func (al *ArrayList[T]) BinarySearch(target T, compare func(a, b T) int) (int, bool) {
	return slices.BinarySearchFunc(al.data, target, compare)
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) Cap() int {
	return cap(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(al.data)
}

// Backward iterates the elements from the back to the front.
func (al *ArrayList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(al.data) - 1; i >= 0; i-- {
			if !yield(al.data[i]) {
				return
			}
		}
	}
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

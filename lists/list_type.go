package lists

import "iter"

// Appender is implemented by containers that accept elements at the back.
// It is the target interface for materializing a sequence into a container.
type Appender[T any] interface {
	// Add appends one or more elements to the end of the container
	Add(values ...T)
}

// List is the read/append surface shared by ArrayList and LinkedList.
type List[T any] interface {
	Appender[T]

	// Push appends a single element and returns a pointer to the stored copy.
	// How long the pointer stays valid is documented by each implementation.
	Push(value T) *T

	// Get retrieves the element at the specified index
	// Returns ErrIndexOutOfBounds if index is out of bounds
	Get(index int) (T, error)

	// Size returns the current number of elements in the list
	Size() int

	// IsEmpty checks if the list is empty
	IsEmpty() bool

	// Clear clears the list and releases memory
	Clear()

	// Values iterates the elements front to back
	Values() iter.Seq[T]

	// ToSlice copies the list into a native slice
	ToSlice() []T
}

package seqs

import "fmt"

var (
	// ErrEmptySequence is returned by reducers that need at least one element.
	ErrEmptySequence = fmt.Errorf("sequence contains no elements")
	// ErrOutOfRange is returned when a position does not exist or a uniqueness
	// requirement is violated.
	ErrOutOfRange = fmt.Errorf("element out of range")
)

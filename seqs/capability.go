package seqs

import "iter"

// Iterable is what a source must provide to be wrapped by FromIterable.
type Iterable[T any] interface {
	Values() iter.Seq[T]
}

// Sized is implemented by sources that know their element count cheaply.
type Sized interface {
	Size() int
}

// Lener is the Len flavour of Sized.
type Lener interface {
	Len() int
}

// Reversible is implemented by sources that can iterate from the back natively.
type Reversible[T any] interface {
	Backward() iter.Seq[T]
}

// Indexer is implemented by sources with random access.
type Indexer[T any] interface {
	Get(index int) (T, error)
}

// Capabilities describes what Probe found on a source.
type Capabilities[T any] struct {
	Values   func() iter.Seq[T]
	Size     func() int           // nil without a cheap count
	Backward func() iter.Seq[T]   // nil without native reverse traversal
	Get      func(int) (T, error) // nil without random access
}

func (c Capabilities[T]) HasFastSize() bool {
	return c.Size != nil
}

// Probe inspects src once, at bind time, for the optional capabilities.
// Random access is only recorded when a size is known as well.
func Probe[T any](src Iterable[T]) Capabilities[T] {
	caps := Capabilities[T]{Values: src.Values}
	switch s := any(src).(type) {
	case Sized:
		caps.Size = s.Size
	case Lener:
		caps.Size = s.Len
	}
	if r, ok := any(src).(Reversible[T]); ok {
		caps.Backward = r.Backward
	}
	if ix, ok := any(src).(Indexer[T]); ok && caps.Size != nil {
		caps.Get = ix.Get
	}
	return caps
}

package seqs

import (
	"iter"
	"maps"
	"math"
	"unicode/utf8"

	"lazyq/lists"
)

// KeyValue is the element type of FromMap.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// Empty returns a sequence with no elements.
func Empty[T any]() Lazy[T] {
	return Lazy[T]{size: func() int { return 0 }}
}

// From wraps a slice without copying it. Elements are handed out as pointers
// into values, so the slice must not be modified while a pass is running.
func From[T any](values []T) Lazy[T] {
	n := len(values)
	return Lazy[T]{
		open: func() (Producer[T], func()) {
			i := 0
			return func() *T {
				if i >= n {
					return nil
				}
				i++
				return &values[i-1]
			}, nil
		},
		back: func() (Producer[T], func()) {
			i := n
			return func() *T {
				if i <= 0 {
					return nil
				}
				i--
				return &values[i]
			}, nil
		},
		size: func() int { return n },
		at: func(i int) *T {
			if i < 0 || i >= n {
				return nil
			}
			return &values[i]
		},
	}
}

// FromList wraps an ArrayList. The list must not grow while a pass is running.
func FromList[T any](l *lists.ArrayList[T]) Lazy[T] {
	return Lazy[T]{
		open: func() (Producer[T], func()) {
			i := 0
			return func() *T {
				p := l.At(i)
				i++
				return p
			}, nil
		},
		back: func() (Producer[T], func()) {
			i := l.Size()
			return func() *T {
				i--
				return l.At(i)
			}, nil
		},
		size: l.Size,
		at:   l.At,
	}
}

// fromPointers exposes already-collected element pointers as a sequence.
func fromPointers[T any](ptrs []*T) Lazy[T] {
	buf := lists.FromSlice(ptrs)
	return pointerSeq(func() *lists.ArrayList[*T] { return buf }, buf.Size)
}

// FromSeq wraps an iter.Seq. Each pass pulls seq from the beginning through
// iter.Pull, so seq must be restartable for multi-pass use. A pass holds a
// coroutine until it is exhausted or its cursor is closed.
func FromSeq[T any](seq iter.Seq[T]) Lazy[T] {
	return Lazy[T]{open: pullOpener(func() iter.Seq[T] { return seq })}
}

// FromMap yields the entries of m in Go's unspecified map order, which may
// differ from pass to pass.
func FromMap[K comparable, V any](m map[K]V) Lazy[KeyValue[K, V]] {
	return Lazy[KeyValue[K, V]]{
		open: func() (Producer[KeyValue[K, V]], func()) {
			next, stop := iter.Pull2(maps.All(m))
			return func() *KeyValue[K, V] {
				k, v, ok := next()
				if !ok {
					return nil
				}
				return &KeyValue[K, V]{Key: k, Value: v}
			}, stop
		},
		size: func() int { return len(m) },
	}
}

// FromString yields the runes of str. Invalid UTF-8 bytes yield utf8.RuneError.
func FromString(str string) Lazy[rune] {
	return Lazy[rune]{
		open: func() (Producer[rune], func()) {
			rest := str
			return func() *rune {
				if len(rest) == 0 {
					return nil
				}
				r, width := utf8.DecodeRuneInString(rest)
				rest = rest[width:]
				return &r
			}, nil
		},
	}
}

// FromIterable wraps any source with a Values method, picking up whichever of
// Size/Len, Backward and Get it also provides.
func FromIterable[T any](src Iterable[T]) Lazy[T] {
	if l, ok := any(src).(*lists.ArrayList[T]); ok {
		return FromList(l)
	}
	caps := Probe(src)
	s := Lazy[T]{
		open: pullOpener(caps.Values),
		size: caps.Size,
	}
	if caps.Backward != nil {
		s.back = pullOpener(caps.Backward)
	}
	if caps.Get != nil {
		get := caps.Get
		s.at = func(i int) *T {
			v, err := get(i)
			if err != nil {
				return nil
			}
			return &v
		}
	}
	return s
}

func pullOpener[T any](values func() iter.Seq[T]) Opener[T] {
	return func() (Producer[T], func()) {
		next, stop := iter.Pull(values())
		return func() *T {
			v, ok := next()
			if !ok {
				return nil
			}
			return &v
		}, stop
	}
}

// Range generates integers from start towards end (exclusive) by step.
// A zero step, or a step pointing away from end, yields nothing. An interval
// holding more than math.MaxInt values is cut off after math.MaxInt of them.
func Range(start, end, step int) Lazy[int] {
	var span, stride uint
	switch {
	case step > 0 && start < end:
		span, stride = uint(end-start), uint(step)
	case step < 0 && start > end:
		span, stride = uint(start-end), -uint(step)
	}
	n := 0
	if span > 0 {
		n = int(min((span-1)/stride+1, math.MaxInt))
	}
	return generated(n, func(i int) int { return start + i*step })
}

// Repeat generates value count times.
func Repeat[T any](value T, count int) Lazy[T] {
	return generated(max(count, 0), func(int) T { return value })
}

// generated is a random-access sequence of n values computed from their index.
func generated[T any](n int, value func(i int) T) Lazy[T] {
	at := func(i int) *T {
		if i < 0 || i >= n {
			return nil
		}
		v := value(i)
		return &v
	}
	return Lazy[T]{
		open: func() (Producer[T], func()) {
			i := 0
			return func() *T {
				i++
				return at(i - 1)
			}, nil
		},
		back: func() (Producer[T], func()) {
			i := n
			return func() *T {
				i--
				return at(i)
			}, nil
		},
		size: func() int { return n },
		at:   at,
	}
}

// collect gathers pointers to every element of a fresh pass, reserving the
// fast size when there is one.
func collect[T any](s Lazy[T]) *lists.ArrayList[*T] {
	n := 0
	if s.size != nil {
		n = s.size()
	}
	buf := lists.NewArrayList[*T](n)
	s.scan(func(p *T) bool {
		buf.Add(p)
		return true
	})
	return buf
}

// pointerList exposes a lazily obtained list of element pointers. get is not
// called before the first pull.
func pointerList[T any](get func() *lists.ArrayList[*T], backward bool) Opener[T] {
	return func() (Producer[T], func()) {
		var buf *lists.ArrayList[*T]
		i := 0
		return func() *T {
			if buf == nil {
				buf = get()
				if backward {
					i = buf.Size() - 1
				}
			}
			pp := buf.At(i)
			if backward {
				i--
			} else {
				i++
			}
			if pp == nil {
				return nil
			}
			return *pp
		}, nil
	}
}

// pointerSeq exposes a lazily obtained list of element pointers, traversable
// in both directions and by index.
func pointerSeq[T any](get func() *lists.ArrayList[*T], size func() int) Lazy[T] {
	return Lazy[T]{
		open: pointerList(get, false),
		back: pointerList(get, true),
		size: size,
		at: func(i int) *T {
			if pp := get().At(i); pp != nil {
				return *pp
			}
			return nil
		},
	}
}

// deferredSlice exposes a lazily obtained slice. get is not called before the
// first pull.
func deferredSlice[T any](get func() []T) Opener[T] {
	return func() (Producer[T], func()) {
		var items []T
		i := -1
		return func() *T {
			if i < 0 {
				items = get()
				i = 0
			}
			if i >= len(items) {
				return nil
			}
			i++
			return &items[i-1]
		}, nil
	}
}

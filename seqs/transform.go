package seqs

import "lazyq/lists"

// SelectMany projects each element to a sequence and flattens the results one
// level.
func SelectMany[T, R any](s Lazy[T], selector func(T) Lazy[R]) Lazy[R] {
	return SelectManyIndexed(s, func(v T, _ int) Lazy[R] {
		return selector(v)
	})
}

// SelectManyIndexed is SelectMany with the index of each outer element.
func SelectManyIndexed[T, R any](s Lazy[T], selector func(T, int) Lazy[R]) Lazy[R] {
	return Lazy[R]{
		open: func() (Producer[R], func()) {
			next, stop := s.start()
			inner, innerStop := Producer[R](exhausted[R]), noop
			i := 0
			return func() *R {
				for {
					if r := inner(); r != nil {
						return r
					}
					innerStop()
					p := next()
					if p == nil {
						inner, innerStop = exhausted[R], noop
						return nil
					}
					inner, innerStop = selector(*p, i).start()
					i++
				}
			}, func() {
				innerStop()
				stop()
			}
		},
	}
}

// Concat yields the elements of s followed by those of other.
func (s Lazy[T]) Concat(other Lazy[T]) Lazy[T] {
	out := Lazy[T]{open: concatOpener(s.open, other.open)}
	if s.size != nil && other.size != nil {
		out.size = func() int {
			return s.size() + other.size()
		}
		if s.at != nil && other.at != nil {
			out.at = func(i int) *T {
				if n := s.size(); i >= n {
					return other.at(i - n)
				}
				return s.at(i)
			}
		}
	}
	if s.back != nil && other.back != nil {
		out.back = concatOpener(other.back, s.back)
	}
	return out
}

// Concat joins any number of sequences end to end.
func Concat[T any](seqs ...Lazy[T]) Lazy[T] {
	if len(seqs) == 0 {
		return Empty[T]()
	}
	out := seqs[0]
	for _, s := range seqs[1:] {
		out = out.Concat(s)
	}
	return out
}

func concatOpener[T any](first, second Opener[T]) Opener[T] {
	return func() (Producer[T], func()) {
		head, stopHead := startWith(first)
		var tail Producer[T]
		stopTail := noop
		return func() *T {
			if tail == nil {
				if p := head(); p != nil {
					return p
				}
				tail, stopTail = startWith(second)
			}
			return tail()
		}, func() {
			stopHead()
			stopTail()
		}
	}
}

// Pair is the element type of ZipPairs.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip walks a and b in lock-step and combines paired elements with selector.
// It stops as soon as either side is exhausted.
func Zip[A, B, R any](a Lazy[A], b Lazy[B], selector func(A, B) R) Lazy[R] {
	var size func() int
	if a.size != nil && b.size != nil {
		size = func() int {
			return min(a.size(), b.size())
		}
	}
	return Lazy[R]{
		open: func() (Producer[R], func()) {
			nextA, stopA := a.start()
			nextB, stopB := b.start()
			buf := newBuffer[R](size)
			return func() *R {
				pa := nextA()
				if pa == nil {
					return nil
				}
				pb := nextB()
				if pb == nil {
					return nil
				}
				return buf.push(selector(*pa, *pb))
			}, func() {
				stopA()
				stopB()
			}
		},
		size: size,
	}
}

// ZipPairs is Zip producing Pair values.
func ZipPairs[A, B any](a Lazy[A], b Lazy[B]) Lazy[Pair[A, B]] {
	return Zip(a, b, func(v1 A, v2 B) Pair[A, B] {
		return Pair[A, B]{V1: v1, V2: v2}
	})
}

// Reverse yields the elements from last to first.
//
// Sources with native backward traversal are wrapped directly. Anything else
// is materialized into a pointer buffer on the first pull, once, and that
// buffer is walked backwards by every pass. This is the expensive path.
func (s Lazy[T]) Reverse() Lazy[T] {
	if s.back != nil {
		out := Lazy[T]{open: s.back, back: s.open, size: s.size}
		if s.at != nil && s.size != nil {
			out.at = func(i int) *T {
				if i < 0 {
					return nil
				}
				return s.at(s.size() - 1 - i)
			}
		}
		return out
	}
	buf := newBlock("reverse", func() (*lists.ArrayList[*T], int) {
		ptrs := collect(s)
		return ptrs, ptrs.Size()
	})
	out := pointerSeq(buf.get, s.size)
	out.open, out.back = out.back, out.open
	out.at = func(i int) *T {
		ptrs := buf.get()
		if pp := ptrs.At(ptrs.Size() - 1 - i); pp != nil && i >= 0 {
			return *pp
		}
		return nil
	}
	return out
}

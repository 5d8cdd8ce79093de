package seqs

import "iter"

// Producer returns a pointer to the next element of a pass, or nil once the
// pass is exhausted. The pointed-to element must stay valid, and must not be
// reused for a later element, for the life of the pass.
type Producer[T any] func() *T

// Opener starts a fresh pass over a sequence. stop releases whatever an
// unfinished pass holds; it may be nil and must be safe to call more than once.
type Opener[T any] func() (next Producer[T], stop func())

// Lazy is an immutable, multi-pass sequence. Copies share their deferred state.
// The zero Lazy is an empty sequence.
type Lazy[T any] struct {
	open Opener[T]
	// optional capabilities
	size func() int
	back Opener[T]
	at   func(index int) *T
}

// New builds a Lazy from an opener and an optional size provider.
// size, when non-nil, must return exactly the number of elements a fresh pass
// produces.
func New[T any](open Opener[T], size func() int) Lazy[T] {
	return Lazy[T]{open: open, size: size}
}

func noop() {}

func exhausted[T any]() *T { return nil }

// guard makes next keep reporting exhaustion once it has reported it.
func guard[T any](next Producer[T]) Producer[T] {
	done := false
	return func() *T {
		if done {
			return nil
		}
		if p := next(); p != nil {
			return p
		}
		done = true
		return nil
	}
}

func startWith[T any](open Opener[T]) (Producer[T], func()) {
	if open == nil {
		return exhausted[T], noop
	}
	next, stop := open()
	if stop == nil {
		stop = noop
	}
	return guard(next), stop
}

// start opens a guarded forward pass; stop is never nil.
func (s Lazy[T]) start() (Producer[T], func()) {
	return startWith(s.open)
}

// scan feeds every element of a fresh pass to fn until fn returns false.
func (s Lazy[T]) scan(fn func(p *T) bool) {
	next, stop := s.start()
	defer stop()
	for p := next(); p != nil; p = next() {
		if !fn(p) {
			return
		}
	}
}

// Begin returns a cursor over a fresh pass.
func (s Lazy[T]) Begin() *Cursor[T] {
	next, stop := s.start()
	return &Cursor[T]{next: next, stop: stop}
}

// End returns the past-the-end sentinel cursor.
func (s Lazy[T]) End() *Cursor[T] {
	return &Cursor[T]{pulled: true, done: true}
}

// Size returns the number of elements. Without a fast size provider it counts
// a fresh pass, which is O(n).
func (s Lazy[T]) Size() int {
	if s.size != nil {
		return s.size()
	}
	return Distance(s.Begin(), s.End())
}

// HasFastSize reports whether Size is answered without iterating.
func (s Lazy[T]) HasFastSize() bool {
	return s.size != nil
}

// HasBackward reports whether the sequence can be traversed from the end
// without being materialized.
func (s Lazy[T]) HasBackward() bool {
	return s.back != nil
}

// Values returns the sequence as an iter.Seq for use with range.
func (s Lazy[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.scan(func(p *T) bool {
			return yield(*p)
		})
	}
}

// Indexed pairs each element with its position.
func (s Lazy[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		s.scan(func(p *T) bool {
			ok := yield(i, *p)
			i++
			return ok
		})
	}
}

// Backward iterates from the last element to the first. Sources without
// native backward traversal are materialized first, see Reverse.
func (s Lazy[T]) Backward() iter.Seq[T] {
	return s.Reverse().Values()
}

// Operator is a pipeline stage.
type Operator[T, R any] func(Lazy[T]) Lazy[R]

// Apply feeds s into op.
func Apply[T, R any](s Lazy[T], op Operator[T, R]) Lazy[R] {
	return op(s)
}

// Chain composes two stages into one.
func Chain[A, B, C any](first Operator[A, B], second Operator[B, C]) Operator[A, C] {
	return func(s Lazy[A]) Lazy[C] {
		return second(first(s))
	}
}

// Pipe applies type-preserving stages in order.
func (s Lazy[T]) Pipe(ops ...Operator[T, T]) Lazy[T] {
	for _, op := range ops {
		s = op(s)
	}
	return s
}

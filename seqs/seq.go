package seqs

import "lazyq/lists"

// Where yields only the elements that satisfy predicate.
func (s Lazy[T]) Where(predicate func(T) bool) Lazy[T] {
	return s.WhereIndexed(func(v T, _ int) bool {
		return predicate(v)
	})
}

// WhereIndexed is Where with the traversal index of each tested element.
func (s Lazy[T]) WhereIndexed(predicate func(T, int) bool) Lazy[T] {
	return Lazy[T]{
		open: func() (Producer[T], func()) {
			next, stop := s.start()
			i := 0
			return func() *T {
				for p := next(); p != nil; p = next() {
					keep := predicate(*p, i)
					i++
					if keep {
						return p
					}
				}
				return nil
			}, stop
		},
	}
}

// Select projects each element of s.
func Select[T, R any](s Lazy[T], selector func(T) R) Lazy[R] {
	return SelectIndexed(s, func(v T, _ int) R {
		return selector(v)
	})
}

// SelectIndexed projects each element of s together with its index.
// The selector runs once per element per pass.
func SelectIndexed[T, R any](s Lazy[T], selector func(T, int) R) Lazy[R] {
	out := Lazy[R]{
		open: func() (Producer[R], func()) {
			next, stop := s.start()
			buf := newBuffer[R](s.size)
			i := 0
			return func() *R {
				p := next()
				if p == nil {
					return nil
				}
				r := buf.push(selector(*p, i))
				i++
				return r
			}, stop
		},
		size: s.size,
	}
	if s.at != nil {
		out.at = func(i int) *R {
			p := s.at(i)
			if p == nil {
				return nil
			}
			r := selector(*p, i)
			return &r
		}
	}
	return out
}

// reserveLimit caps how many slots a projection buffer reserves up front.
const reserveLimit = 4096

// buffer stores the values produced during one pass so that the pointers
// handed downstream stay valid. With a known, modest size it is a single
// reserved ArrayList; otherwise an append-only LinkedList that only keeps its
// tail chunk reachable.
type buffer[T any] struct {
	arr   *lists.ArrayList[T]
	chain *lists.LinkedList[T]
}

func newBuffer[T any](size func() int) *buffer[T] {
	if size != nil {
		if n := size(); n <= reserveLimit {
			return &buffer[T]{arr: lists.NewArrayList[T](n)}
		}
	}
	return &buffer[T]{chain: lists.NewLinkedList[T]()}
}

func (b *buffer[T]) push(v T) *T {
	if b.arr != nil {
		if !b.arr.Full() {
			return b.arr.Push(v)
		}
		// more values than reserved; growing would move the ones handed out
		b.arr = nil
		b.chain = lists.NewLinkedList[T]()
	}
	p := b.chain.Push(v)
	b.chain.Forget()
	return p
}

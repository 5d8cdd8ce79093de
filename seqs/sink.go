package seqs

import "fmt"

// Aggregate folds s from left to right, seeding the accumulator with the
// first element.
func (s Lazy[T]) Aggregate(reducer func(acc, v T) T) (T, error) {
	var acc T
	first := true
	s.scan(func(p *T) bool {
		if first {
			acc = *p
			first = false
		} else {
			acc = reducer(acc, *p)
		}
		return true
	})
	if first {
		return acc, fmt.Errorf("aggregate: %w", ErrEmptySequence)
	}
	return acc, nil
}

// AggregateSeed folds s from left to right starting from seed.
func AggregateSeed[T, A any](s Lazy[T], seed A, reducer func(A, T) A) A {
	acc := seed
	s.scan(func(p *T) bool {
		acc = reducer(acc, *p)
		return true
	})
	return acc
}

// AggregateResult is AggregateSeed followed by a final projection.
func AggregateResult[T, A, R any](s Lazy[T], seed A, reducer func(A, T) A, result func(A) R) R {
	return result(AggregateSeed(s, seed, reducer))
}

// ForEach calls action for every element.
func (s Lazy[T]) ForEach(action func(T)) {
	s.scan(func(p *T) bool {
		action(*p)
		return true
	})
}

// Any reports whether s has at least one element.
func (s Lazy[T]) Any() bool {
	if s.size != nil {
		return s.size() > 0
	}
	c := s.Begin()
	defer c.Close()
	return !c.Done()
}

// AnyFunc reports whether some element satisfies predicate. It stops at the
// first one that does.
func (s Lazy[T]) AnyFunc(predicate func(T) bool) bool {
	found := false
	s.scan(func(p *T) bool {
		found = predicate(*p)
		return !found
	})
	return found
}

// All reports whether every element satisfies predicate. It stops at the
// first one that does not. All is true for an empty sequence.
func (s Lazy[T]) All(predicate func(T) bool) bool {
	return !s.AnyFunc(func(v T) bool {
		return !predicate(v)
	})
}

// None reports whether no element satisfies predicate.
func (s Lazy[T]) None(predicate func(T) bool) bool {
	return !s.AnyFunc(predicate)
}

func always[T any](T) bool { return true }

// find returns the first element satisfying predicate and whether s had any
// elements at all.
func (s Lazy[T]) find(predicate func(T) bool) (found *T, empty bool) {
	empty = true
	s.scan(func(p *T) bool {
		empty = false
		if predicate(*p) {
			found = p
			return false
		}
		return true
	})
	return found, empty
}

func lookupResult[T any](op string, found *T, empty bool) (T, error) {
	var zero T
	switch {
	case found != nil:
		return *found, nil
	case empty:
		return zero, fmt.Errorf("%s: %w", op, ErrEmptySequence)
	default:
		return zero, fmt.Errorf("%s: no element satisfies the predicate: %w", op, ErrOutOfRange)
	}
}

func orDefault[T any](v T, err error) T {
	if err != nil {
		var zero T
		return zero
	}
	return v
}

// First returns the first element.
func (s Lazy[T]) First() (T, error) {
	return s.FirstFunc(always[T])
}

// FirstFunc returns the first element that satisfies predicate.
// It fails with ErrEmptySequence on an empty sequence and with ErrOutOfRange
// when nothing matches.
func (s Lazy[T]) FirstFunc(predicate func(T) bool) (T, error) {
	found, empty := s.find(predicate)
	return lookupResult("first", found, empty)
}

// FirstOrDefault returns the first element, or the zero value.
func (s Lazy[T]) FirstOrDefault() T {
	return orDefault(s.First())
}

// FirstOrDefaultFunc returns the first element that satisfies predicate, or
// the zero value.
func (s Lazy[T]) FirstOrDefaultFunc(predicate func(T) bool) T {
	return orDefault(s.FirstFunc(predicate))
}

// Last returns the last element.
func (s Lazy[T]) Last() (T, error) {
	return s.LastFunc(always[T])
}

// LastFunc returns the last element that satisfies predicate, scanning from
// the end when the sequence supports it. Errors follow FirstFunc.
func (s Lazy[T]) LastFunc(predicate func(T) bool) (T, error) {
	if s.back != nil {
		found, empty := Lazy[T]{open: s.back}.find(predicate)
		return lookupResult("last", found, empty)
	}
	var found *T
	empty := true
	s.scan(func(p *T) bool {
		empty = false
		if predicate(*p) {
			found = p
		}
		return true
	})
	return lookupResult("last", found, empty)
}

// LastOrDefault returns the last element, or the zero value.
func (s Lazy[T]) LastOrDefault() T {
	return orDefault(s.Last())
}

// LastOrDefaultFunc returns the last element that satisfies predicate, or the
// zero value.
func (s Lazy[T]) LastOrDefaultFunc(predicate func(T) bool) T {
	return orDefault(s.LastFunc(predicate))
}

// Single returns the only element of s.
// It fails with ErrEmptySequence when s is empty and with ErrOutOfRange when s
// has more than one element.
func (s Lazy[T]) Single() (T, error) {
	return s.SingleFunc(always[T])
}

// SingleFunc returns the only element that satisfies predicate.
// It fails with ErrEmptySequence when s is empty and with ErrOutOfRange when
// no element or more than one element matches.
func (s Lazy[T]) SingleFunc(predicate func(T) bool) (T, error) {
	var found *T
	empty, dup := true, false
	s.scan(func(p *T) bool {
		empty = false
		if !predicate(*p) {
			return true
		}
		if found != nil {
			dup = true
			return false
		}
		found = p
		return true
	})
	if dup {
		var zero T
		return zero, fmt.Errorf("single: more than one element: %w", ErrOutOfRange)
	}
	return lookupResult("single", found, empty)
}

// SingleOrDefault returns the only element, or the zero value when there is
// not exactly one.
func (s Lazy[T]) SingleOrDefault() T {
	return orDefault(s.Single())
}

// SingleOrDefaultFunc returns the only element that satisfies predicate, or
// the zero value when there is not exactly one.
func (s Lazy[T]) SingleOrDefaultFunc(predicate func(T) bool) T {
	return orDefault(s.SingleFunc(predicate))
}

// ElementAt returns the element at index. Random-access sequences jump
// straight to it; others are advanced one element at a time.
func (s Lazy[T]) ElementAt(index int) (T, error) {
	if p := s.elementAt(index); p != nil {
		return *p, nil
	}
	var zero T
	return zero, fmt.Errorf("element at %d: %w", index, ErrOutOfRange)
}

// ElementAtOrDefault returns the element at index, or the zero value.
func (s Lazy[T]) ElementAtOrDefault(index int) T {
	return orDefault(s.ElementAt(index))
}

func (s Lazy[T]) elementAt(index int) *T {
	if index < 0 {
		return nil
	}
	if s.at != nil {
		return s.at(index)
	}
	c := s.Begin()
	defer c.Close()
	for range index {
		if c.Done() {
			return nil
		}
		c.Next()
	}
	return c.Ptr()
}

// Contains reports whether value occurs in s.
func Contains[T comparable](s Lazy[T], value T) bool {
	return s.AnyFunc(func(v T) bool {
		return v == value
	})
}

// ContainsFunc reports whether an element equal to value, according to equal,
// occurs in s.
func (s Lazy[T]) ContainsFunc(value T, equal func(a, b T) bool) bool {
	return s.AnyFunc(func(v T) bool {
		return equal(v, value)
	})
}

// SequenceEqual reports whether a and b hold equal elements in the same order.
func SequenceEqual[T comparable](a, b Lazy[T]) bool {
	return a.SequenceEqualFunc(b, func(x, y T) bool {
		return x == y
	})
}

// SequenceEqualFunc is SequenceEqual with element equality decided by equal.
func (s Lazy[T]) SequenceEqualFunc(other Lazy[T], equal func(a, b T) bool) bool {
	if s.size != nil && other.size != nil && s.size() != other.size() {
		return false
	}
	nextA, stopA := s.start()
	defer stopA()
	nextB, stopB := other.start()
	defer stopB()
	for {
		pa, pb := nextA(), nextB()
		if pa == nil || pb == nil {
			return pa == nil && pb == nil
		}
		if !equal(*pa, *pb) {
			return false
		}
	}
}

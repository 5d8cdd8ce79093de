package seqs

import (
	"cmp"
	"fmt"
)

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum adds up the elements of s.
func Sum[T Number](s Lazy[T]) (T, error) {
	var total T
	n := 0
	s.scan(func(p *T) bool {
		total += *p
		n++
		return true
	})
	if n == 0 {
		return total, fmt.Errorf("sum: %w", ErrEmptySequence)
	}
	return total, nil
}

// Average returns the arithmetic mean of the elements of s.
func Average[T Number](s Lazy[T]) (float64, error) {
	var total float64
	n := 0
	s.scan(func(p *T) bool {
		total += float64(*p)
		n++
		return true
	})
	if n == 0 {
		return 0, fmt.Errorf("average: %w", ErrEmptySequence)
	}
	return total / float64(n), nil
}

// Min returns the smallest element of s.
func Min[T cmp.Ordered](s Lazy[T]) (T, error) {
	return s.MinFunc(cmp.Compare[T])
}

// Max returns the largest element of s.
func Max[T cmp.Ordered](s Lazy[T]) (T, error) {
	return s.MaxFunc(cmp.Compare[T])
}

// MinFunc returns the first element that no other element orders before.
func (s Lazy[T]) MinFunc(c func(a, b T) int) (T, error) {
	best, err := s.extreme(func(p, best *T) bool { return c(*p, *best) < 0 })
	if err != nil {
		return best, fmt.Errorf("min: %w", err)
	}
	return best, nil
}

// MaxFunc returns the first element that no other element orders after.
func (s Lazy[T]) MaxFunc(c func(a, b T) int) (T, error) {
	best, err := s.extreme(func(p, best *T) bool { return c(*p, *best) > 0 })
	if err != nil {
		return best, fmt.Errorf("max: %w", err)
	}
	return best, nil
}

func (s Lazy[T]) extreme(better func(p, best *T) bool) (T, error) {
	var best *T
	s.scan(func(p *T) bool {
		if best == nil || better(p, best) {
			best = p
		}
		return true
	})
	if best == nil {
		var zero T
		return zero, ErrEmptySequence
	}
	return *best, nil
}

// Count returns the number of elements, using the fast size when available.
func (s Lazy[T]) Count() int {
	return s.Size()
}

// CountFunc returns how many elements satisfy predicate.
func (s Lazy[T]) CountFunc(predicate func(T) bool) int {
	n := 0
	s.scan(func(p *T) bool {
		if predicate(*p) {
			n++
		}
		return true
	})
	return n
}

package seqs

import "lazyq/lists"

// ToSlice copies the elements of s into a new slice.
func (s Lazy[T]) ToSlice() []T {
	n := 0
	if s.size != nil {
		n = s.size()
	}
	res := make([]T, 0, n)
	s.scan(func(p *T) bool {
		res = append(res, *p)
		return true
	})
	return res
}

// ToList copies the elements of s into a new ArrayList.
func (s Lazy[T]) ToList() *lists.ArrayList[T] {
	return lists.FromSlice(s.ToSlice())
}

// Into appends the elements of s to dst and returns it.
func Into[T any, C lists.Appender[T]](s Lazy[T], dst C) C {
	s.scan(func(p *T) bool {
		dst.Add(*p)
		return true
	})
	return dst
}

// ToMap builds a map from key(e) to value(e). Later elements overwrite
// earlier ones with the same key.
func ToMap[T any, K comparable, V any](s Lazy[T], key func(T) K, value func(T) V) map[K]V {
	n := 0
	if s.size != nil {
		n = s.size()
	}
	m := make(map[K]V, n)
	s.scan(func(p *T) bool {
		m[key(*p)] = value(*p)
		return true
	})
	return m
}

// Associative is implemented by key-value containers that ToAssociative can
// fill.
type Associative[K, V any] interface {
	Put(key K, value V)
}

// ToAssociative puts key(e) -> value(e) into dst for every element, in order,
// so that the last write for a key wins, and returns dst.
func ToAssociative[T, K, V any, M Associative[K, V]](s Lazy[T], dst M, key func(T) K, value func(T) V) M {
	s.scan(func(p *T) bool {
		dst.Put(key(*p), value(*p))
		return true
	})
	return dst
}

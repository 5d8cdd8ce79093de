// Package compare builds three-way comparators of the form func(a, b T) int,
// the shape used by slices.SortFunc and by the ordering and set operators in
// package seqs.
package compare

import (
	"cmp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Func is a three-way comparator: negative when a orders before b, zero when
// they are equivalent and positive otherwise.
type Func[T any] func(a, b T) int

// Natural returns cmp.Compare for T.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse flips the sign of c.
func Reverse[T any](c Func[T]) Func[T] {
	return func(a, b T) int {
		return -c(a, b)
	}
}

// By compares values by the natural order of the key extracted from each side.
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ByFunc compares values by key using the key comparator c.
func ByFunc[T, K any](key func(T) K, c Func[K]) Func[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// Chain consults each comparator in turn until one reports a difference.
// An empty chain reports every pair as equal.
func Chain[T any](cs ...Func[T]) Func[T] {
	return func(a, b T) int {
		for _, c := range cs {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Deref lifts c to pointers, so that containers of *T order by the pointee.
func Deref[T any](c Func[T]) Func[*T] {
	return func(a, b *T) int {
		return c(*a, *b)
	}
}

// Less converts c into a strict-weak-ordering predicate.
func Less[T any](c Func[T]) func(a, b T) bool {
	return func(a, b T) bool {
		return c(a, b) < 0
	}
}

// Collation orders strings by the collation rules of tag.
// The returned comparator is not safe for concurrent use.
func Collation(tag language.Tag, opts ...collate.Option) Func[string] {
	c := collate.New(tag, opts...)
	return c.CompareString
}

// CollationFor parses a BCP 47 locale and returns its collation comparator.
func CollationFor(locale string, opts ...collate.Option) (Func[string], error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return Collation(tag, opts...), nil
}

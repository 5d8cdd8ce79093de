package seqs

import (
	"cmp"

	"lazyq/compare"
	"lazyq/lists"
)

// Ordered is a sequence sorted by one or more keys. It behaves like any other
// Lazy and can be refined with ThenBy and friends; every refinement still
// sorts the original source exactly once, with the combined comparator.
type Ordered[T any] struct {
	Lazy[T]
	source Lazy[T]
	order  compare.Func[*T]
}

func newOrdered[T any](source Lazy[T], order compare.Func[*T]) Ordered[T] {
	sorted := newBlock("order_by", func() (*lists.ArrayList[*T], int) {
		ptrs := collect(source)
		ptrs.SortStable(order)
		return ptrs, ptrs.Size()
	})
	return Ordered[T]{
		Lazy:   pointerSeq(sorted.get, source.size),
		source: source,
		order:  order,
	}
}

// keyOrder compares element pointers by the key extracted from each side.
func keyOrder[T, K any](key func(T) K, c compare.Func[K]) compare.Func[*T] {
	return func(a, b *T) int {
		return c(key(*a), key(*b))
	}
}

// OrderBy sorts s by key in ascending order. The sort is stable and happens
// on the first pull.
func OrderBy[T any, K cmp.Ordered](s Lazy[T], key func(T) K) Ordered[T] {
	return OrderByFunc(s, key, cmp.Compare[K])
}

// OrderByFunc sorts s by key using the key comparator c.
func OrderByFunc[T, K any](s Lazy[T], key func(T) K, c func(a, b K) int) Ordered[T] {
	return newOrdered(s, keyOrder[T, K](key, c))
}

// OrderByDescending sorts s by key in descending order.
func OrderByDescending[T any, K cmp.Ordered](s Lazy[T], key func(T) K) Ordered[T] {
	return OrderByDescendingFunc(s, key, cmp.Compare[K])
}

// OrderByDescendingFunc sorts s by key in the reverse of the order given by c.
func OrderByDescendingFunc[T, K any](s Lazy[T], key func(T) K, c func(a, b K) int) Ordered[T] {
	return newOrdered(s, compare.Reverse(keyOrder[T, K](key, c)))
}

// Sort orders the elements themselves by c.
func (s Lazy[T]) Sort(c func(a, b T) int) Ordered[T] {
	return newOrdered(s, compare.Deref[T](c))
}

// ThenBy breaks ties left by o with key, ascending.
func ThenBy[T any, K cmp.Ordered](o Ordered[T], key func(T) K) Ordered[T] {
	return ThenByFunc(o, key, cmp.Compare[K])
}

// ThenByFunc breaks ties left by o with key compared by c.
func ThenByFunc[T, K any](o Ordered[T], key func(T) K, c func(a, b K) int) Ordered[T] {
	return newOrdered(o.source, compare.Chain(o.order, keyOrder[T, K](key, c)))
}

// ThenByDescending breaks ties left by o with key, descending.
func ThenByDescending[T any, K cmp.Ordered](o Ordered[T], key func(T) K) Ordered[T] {
	return ThenByDescendingFunc(o, key, cmp.Compare[K])
}

// ThenByDescendingFunc breaks ties left by o with key in the reverse of c.
func ThenByDescendingFunc[T, K any](o Ordered[T], key func(T) K, c func(a, b K) int) Ordered[T] {
	return newOrdered(o.source, compare.Chain(o.order, compare.Reverse(keyOrder[T, K](key, c))))
}

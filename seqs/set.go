package seqs

import (
	"cmp"

	"github.com/google/btree"

	"lazyq/compare"
	"lazyq/lists"
)

const btreeDegree = 16

// pointerSet is an ordered set of element pointers. Ordering goes through the
// pointers, so elements are never copied to be compared.
type pointerSet[T any] struct {
	tree *btree.BTreeG[*T]
}

func newPointerSet[T any](c compare.Func[T]) *pointerSet[T] {
	return &pointerSet[T]{tree: btree.NewG[*T](btreeDegree, compare.Less(compare.Deref(c)))}
}

// add inserts p unless an equivalent element is already present, and reports
// whether it did.
func (ps *pointerSet[T]) add(p *T) bool {
	if ps.tree.Has(p) {
		return false
	}
	ps.tree.ReplaceOrInsert(p)
	return true
}

// sortedIndex collects pointers to the elements of s sorted by c.
func sortedIndex[T any](s Lazy[T], c compare.Func[T]) (*lists.ArrayList[*T], int) {
	ptrs := collect(s)
	ptrs.Sort(compare.Deref(c))
	return ptrs, ptrs.Size()
}

// Distinct yields each element the first time an equal one is seen.
func Distinct[T cmp.Ordered](s Lazy[T]) Lazy[T] {
	return s.DistinctFunc(cmp.Compare[T])
}

// DistinctFunc is Distinct with equality decided by the comparator c.
// Each pass grows its own ordered set of the elements it has yielded.
func (s Lazy[T]) DistinctFunc(c func(a, b T) int) Lazy[T] {
	return Lazy[T]{
		open: func() (Producer[T], func()) {
			next, stop := s.start()
			seen := newPointerSet[T](c)
			return func() *T {
				for p := next(); p != nil; p = next() {
					if seen.add(p) {
						return p
					}
				}
				return nil
			}, stop
		},
	}
}

// Union yields the distinct elements of a followed by the distinct elements of
// b not already seen in a.
func Union[T cmp.Ordered](a, b Lazy[T]) Lazy[T] {
	return a.UnionFunc(b, cmp.Compare[T])
}

// UnionFunc is Union with equality decided by the comparator c.
func (s Lazy[T]) UnionFunc(other Lazy[T], c func(a, b T) int) Lazy[T] {
	return s.Concat(other).DistinctFunc(c)
}

// Except yields the distinct elements of a that do not occur in b.
func Except[T cmp.Ordered](a, b Lazy[T]) Lazy[T] {
	return a.ExceptFunc(b, cmp.Compare[T])
}

// ExceptFunc is Except with equality decided by the comparator c.
// other is sorted once, on the first pull, and binary-searched afterwards.
func (s Lazy[T]) ExceptFunc(other Lazy[T], c func(a, b T) int) Lazy[T] {
	excluded := newBlock("except", func() (*lists.ArrayList[*T], int) {
		return sortedIndex(other, c)
	})
	order := compare.Deref[T](c)
	return Lazy[T]{
		open: func() (Producer[T], func()) {
			next, stop := s.start()
			var seen *pointerSet[T]
			return func() *T {
				index := excluded.get()
				if seen == nil {
					seen = newPointerSet[T](c)
				}
				for p := next(); p != nil; p = next() {
					if _, found := index.BinarySearch(p, order); found {
						continue
					}
					if seen.add(p) {
						return p
					}
				}
				return nil
			}, stop
		},
	}
}

// Intersect yields the distinct elements of a that also occur in b, in the
// order of a.
func Intersect[T cmp.Ordered](a, b Lazy[T]) Lazy[T] {
	return a.IntersectFunc(b, cmp.Compare[T])
}

// IntersectFunc is Intersect with equality decided by the comparator c.
// other is sorted once, on the first pull, and binary-searched afterwards.
func (s Lazy[T]) IntersectFunc(other Lazy[T], c func(a, b T) int) Lazy[T] {
	included := newBlock("intersect", func() (*lists.ArrayList[*T], int) {
		return sortedIndex(other, c)
	})
	order := compare.Deref[T](c)
	return Lazy[T]{
		open: func() (Producer[T], func()) {
			next, stop := s.start()
			// taken[i] is set once the run of equal elements starting at i has
			// matched; BinarySearch always lands on the start of a run
			var taken []bool
			return func() *T {
				index := included.get()
				if taken == nil {
					taken = make([]bool, index.Size())
				}
				for p := next(); p != nil; p = next() {
					i, found := index.BinarySearch(p, order)
					if found && !taken[i] {
						taken[i] = true
						return p
					}
				}
				return nil
			}, stop
		},
	}
}

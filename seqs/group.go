package seqs

import (
	"cmp"

	"github.com/google/btree"

	"lazyq/compare"
	"lazyq/lists"
)

// Grouping is one key of a grouped sequence with the values that share it.
type Grouping[K, V any] struct {
	Key    K
	Values Lazy[V]
}

type group[K, V any] struct {
	key  K
	vals *lists.ArrayList[V]
}

// groupInto runs one pass over s and groups value(e) by key(e), in key order.
func groupInto[T, K, V any](s Lazy[T], key func(T) K, value func(T) V, c compare.Func[K]) ([]Grouping[K, V], int) {
	tree := btree.NewG[*group[K, V]](btreeDegree, func(a, b *group[K, V]) bool {
		return c(a.key, b.key) < 0
	})
	probe := &group[K, V]{}
	n := 0
	s.scan(func(p *T) bool {
		k := key(*p)
		probe.key = k
		g, ok := tree.Get(probe)
		if !ok {
			g = &group[K, V]{key: k, vals: lists.NewArrayList[V](1)}
			tree.ReplaceOrInsert(g)
		}
		g.vals.Add(value(*p))
		n++
		return true
	})

	groups := make([]Grouping[K, V], 0, tree.Len())
	tree.Ascend(func(g *group[K, V]) bool {
		groups = append(groups, Grouping[K, V]{Key: g.key, Values: FromList(g.vals)})
		return true
	})
	return groups, n
}

func identity[T any](v T) T { return v }

// GroupBy groups the elements of s by key, yielding one Grouping per distinct
// key in ascending key order. The whole of s is read on the first pull.
func GroupBy[T any, K cmp.Ordered](s Lazy[T], key func(T) K) Lazy[Grouping[K, T]] {
	return GroupValuesByFunc(s, key, identity[T], cmp.Compare[K])
}

// GroupByFunc is GroupBy with keys ordered by c.
func GroupByFunc[T, K any](s Lazy[T], key func(T) K, c func(a, b K) int) Lazy[Grouping[K, T]] {
	return GroupValuesByFunc(s, key, identity[T], c)
}

// GroupValuesBy groups value(e) by key(e).
func GroupValuesBy[T any, K cmp.Ordered, V any](s Lazy[T], key func(T) K, value func(T) V) Lazy[Grouping[K, V]] {
	return GroupValuesByFunc(s, key, value, cmp.Compare[K])
}

// GroupValuesByFunc groups value(e) by key(e) with keys ordered by c.
func GroupValuesByFunc[T, K, V any](s Lazy[T], key func(T) K, value func(T) V, c func(a, b K) int) Lazy[Grouping[K, V]] {
	groups := newBlock("group_by", func() ([]Grouping[K, V], int) {
		return groupInto[T, K, V](s, key, value, c)
	})
	return Lazy[Grouping[K, V]]{open: deferredSlice(groups.get)}
}

// GroupByAndFold groups value(e) by key(e) and folds each group into a result.
func GroupByAndFold[T any, K cmp.Ordered, V, R any](s Lazy[T], key func(T) K, value func(T) V, fold func(K, Lazy[V]) R) Lazy[R] {
	return GroupByAndFoldFunc(s, key, value, fold, cmp.Compare[K])
}

// GroupByAndFoldFunc is GroupByAndFold with keys ordered by c.
func GroupByAndFoldFunc[T, K, V, R any](s Lazy[T], key func(T) K, value func(T) V, fold func(K, Lazy[V]) R, c func(a, b K) int) Lazy[R] {
	return Select(GroupValuesByFunc(s, key, value, c), func(g Grouping[K, V]) R {
		return fold(g.Key, g.Values)
	})
}

// lookup maps each key of s to pointers to the elements that carry it.
func lookup[T any, K comparable](s Lazy[T], key func(T) K) (map[K][]*T, int) {
	table := make(map[K][]*T)
	n := 0
	s.scan(func(p *T) bool {
		k := key(*p)
		table[k] = append(table[k], p)
		n++
		return true
	})
	return table, n
}

// Join correlates outer and inner on equal keys and yields result(o, i) for
// every matching pair, in outer order and then inner order. Outer elements
// without a match produce nothing. inner is read in full on the first pull.
func Join[O, I any, K comparable, R any](outer Lazy[O], inner Lazy[I], outerKey func(O) K, innerKey func(I) K, result func(O, I) R) Lazy[R] {
	table := newBlock("join", func() (map[K][]*I, int) {
		return lookup(inner, innerKey)
	})
	return Lazy[R]{
		open: func() (Producer[R], func()) {
			next, stop := outer.start()
			buf := newBuffer[R](nil)
			var cur *O
			var matches []*I
			return func() *R {
				t := table.get()
				for len(matches) == 0 {
					if cur = next(); cur == nil {
						return nil
					}
					matches = t[outerKey(*cur)]
				}
				m := matches[0]
				matches = matches[1:]
				return buf.push(result(*cur, *m))
			}, stop
		},
	}
}

// GroupJoin yields one result per outer element, paired with the (possibly
// empty) sequence of inner elements sharing its key.
func GroupJoin[O, I any, K comparable, R any](outer Lazy[O], inner Lazy[I], outerKey func(O) K, innerKey func(I) K, result func(O, Lazy[I]) R) Lazy[R] {
	table := newBlock("group_join", func() (map[K][]*I, int) {
		return lookup(inner, innerKey)
	})
	return Lazy[R]{
		open: func() (Producer[R], func()) {
			next, stop := outer.start()
			buf := newBuffer[R](outer.size)
			return func() *R {
				t := table.get()
				o := next()
				if o == nil {
					return nil
				}
				return buf.push(result(*o, fromPointers(t[outerKey(*o)])))
			}, stop
		},
		size: outer.size,
	}
}

package seqs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyq/seqs"
)

type entry struct {
	key string
	val int
}

func groupsOf[K, V any](s seqs.Lazy[seqs.Grouping[K, V]]) map[any][]V {
	out := make(map[any][]V)
	s.ForEach(func(g seqs.Grouping[K, V]) {
		out[g.Key] = g.Values.ToSlice()
	})
	return out
}

func TestGroupBy(t *testing.T) {
	s := seqs.From([]entry{{"b", 2}, {"a", 1}, {"a", 3}})
	key := func(e entry) string { return e.key }

	groups := seqs.GroupBy(s, key).ToSlice()
	require.Len(t, groups, 2)
	assert.Equal(t, "a", groups[0].Key)
	assert.Equal(t, []entry{{"a", 1}, {"a", 3}}, groups[0].Values.ToSlice())
	assert.Equal(t, "b", groups[1].Key)
	assert.Equal(t, 1, groups[1].Values.Size())

	vals := seqs.GroupValuesBy(s, key, func(e entry) int { return e.val })
	assert.Equal(t, map[any][]int{"a": {1, 3}, "b": {2}}, groupsOf(vals))
}

func TestGroupByFunc(t *testing.T) {
	words := seqs.From([]string{"Apple", "avocado", "banana", "Blueberry", "cherry"})
	initial := func(w string) string { return strings.ToLower(w[:1]) }
	desc := func(a, b string) int { return strings.Compare(b, a) }

	var keys []string
	seqs.GroupByFunc(words, initial, desc).ForEach(func(g seqs.Grouping[string, string]) {
		keys = append(keys, g.Key)
	})
	assert.Equal(t, []string{"c", "b", "a"}, keys)
}

func TestGroupByAndFold(t *testing.T) {
	s := seqs.From([]entry{{"x", 1}, {"y", 10}, {"x", 2}, {"x", 3}})

	totals := seqs.GroupByAndFold(s,
		func(e entry) string { return e.key },
		func(e entry) int { return e.val },
		func(k string, vals seqs.Lazy[int]) string {
			sum, _ := seqs.Sum(vals)
			return k + "=" + strings.Repeat("|", sum)
		})
	assert.Equal(t, []string{"x=||||||", "y=||||||||||"}, totals.ToSlice())
}

func TestGroupBy_Deferred(t *testing.T) {
	passes := 0
	src := seqs.FromSeq(func(yield func(int) bool) {
		passes++
		for _, v := range []int{1, 2, 3, 4} {
			if !yield(v) {
				return
			}
		}
	})
	byParity := seqs.GroupBy(src, func(v int) int { return v % 2 })
	assert.Equal(t, 0, passes)

	assert.Equal(t, 2, byParity.Size())
	assert.Equal(t, 2, byParity.Size())
	assert.Equal(t, 1, passes)
}

type person struct {
	name string
	id   int
}

type pet struct {
	name    string
	ownerID int
}

func TestJoin(t *testing.T) {
	people := seqs.From([]person{{"ann", 1}, {"bob", 2}, {"cid", 3}})
	pets := seqs.From([]pet{{"rex", 1}, {"tom", 3}, {"kit", 1}})

	pairs := seqs.Join(people, pets,
		func(p person) int { return p.id },
		func(p pet) int { return p.ownerID },
		func(p person, a pet) string { return p.name + ":" + a.name })
	assert.Equal(t, []string{"ann:rex", "ann:kit", "cid:tom"}, pairs.ToSlice())
	assert.Equal(t, []string{"ann:rex", "ann:kit", "cid:tom"}, pairs.ToSlice())

	none := seqs.Join(people, seqs.Empty[pet](),
		func(p person) int { return p.id },
		func(p pet) int { return p.ownerID },
		func(p person, a pet) string { return p.name })
	assert.Empty(t, none.ToSlice())
}

func TestGroupJoin(t *testing.T) {
	people := seqs.From([]person{{"ann", 1}, {"bob", 2}, {"cid", 3}})
	pets := seqs.From([]pet{{"rex", 1}, {"tom", 3}, {"kit", 1}})

	counts := seqs.GroupJoin(people, pets,
		func(p person) int { return p.id },
		func(p pet) int { return p.ownerID },
		func(p person, owned seqs.Lazy[pet]) string {
			names := seqs.Select(owned, func(a pet) string { return a.name }).ToSlice()
			return p.name + "[" + strings.Join(names, ",") + "]"
		})
	assert.Equal(t, 3, counts.Size())
	assert.Equal(t, []string{"ann[rex,kit]", "bob[]", "cid[tom]"}, counts.ToSlice())
}

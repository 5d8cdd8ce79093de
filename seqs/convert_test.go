package seqs_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"lazyq/lists"
	"lazyq/seqs"
)

type lastWins map[string]int

func (m lastWins) Put(key string, value int) {
	m[key] = value
}

func TestToSlice(t *testing.T) {
	assert.Equal(t, []int{}, seqs.Empty[int]().ToSlice())
	assert.Equal(t, []int{0, 2, 4}, seqs.Range(0, 6, 2).ToSlice())
}

func TestToList(t *testing.T) {
	l := seqs.Range(0, 3, 1).ToList()
	assert.Equal(t, 3, l.Size())
	assert.Equal(t, []int{0, 1, 2}, l.ToSlice())
}

func TestInto(t *testing.T) {
	ll := seqs.Into(seqs.From([]int{1, 2}), lists.NewLinkedList[int]())
	ll = seqs.Into(seqs.From([]int{3}), ll)
	assert.Equal(t, []int{1, 2, 3}, ll.ToSlice())

	al := seqs.Into(seqs.Range(0, 2, 1), lists.NewArrayList[int](0))
	assert.Equal(t, []int{0, 1}, al.ToSlice())
}

func TestToMap(t *testing.T) {
	s := seqs.From([]entry{{"a", 1}, {"b", 2}, {"a", 3}})
	key := func(e entry) string { return e.key }
	val := func(e entry) int { return e.val }

	assert.Equal(t, map[string]int{"a": 3, "b": 2}, seqs.ToMap(s, key, val))

	m := seqs.ToAssociative(s, lastWins{"z": 0}, key, val)
	assert.Equal(t, lastWins{"a": 3, "b": 2, "z": 0}, m)
}

func TestFromMap(t *testing.T) {
	m := map[string]int{"x": 1, "y": 2, "z": 3}
	s := seqs.FromMap(m)
	assert.Equal(t, 3, s.Size())

	keys := seqs.Select(s, func(kv seqs.KeyValue[string, int]) string { return kv.Key }).ToSlice()
	sort.Strings(keys)
	assert.Equal(t, []string{"x", "y", "z"}, keys)

	back := seqs.ToMap(s,
		func(kv seqs.KeyValue[string, int]) string { return kv.Key },
		func(kv seqs.KeyValue[string, int]) int { return kv.Value })
	assert.Equal(t, m, back)
}

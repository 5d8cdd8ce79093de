package seqs_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyq/seqs"
)

func TestSingle(t *testing.T) {
	v, err := seqs.From([]int{5}).Single()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = seqs.From([]int{}).Single()
	assert.ErrorIs(t, err, seqs.ErrEmptySequence)

	_, err = seqs.From([]int{5, 6}).Single()
	assert.ErrorIs(t, err, seqs.ErrOutOfRange)

	even := func(v int) bool { return v%2 == 0 }
	v, err = seqs.From([]int{1, 4, 7}).SingleFunc(even)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = seqs.From([]int{1, 7}).SingleFunc(even)
	assert.ErrorIs(t, err, seqs.ErrOutOfRange)
	_, err = seqs.From([]int{2, 4}).SingleFunc(even)
	assert.ErrorIs(t, err, seqs.ErrOutOfRange)

	assert.Equal(t, 0, seqs.From([]int{5, 6}).SingleOrDefault())
	assert.Equal(t, 5, seqs.From([]int{5}).SingleOrDefault())
	assert.Equal(t, 4, seqs.From([]int{3, 4}).SingleOrDefaultFunc(even))
}

func TestFirst(t *testing.T) {
	s := seqs.From([]int{3, 8, 5, 10})
	gt4 := func(v int) bool { return v > 4 }

	v, err := s.First()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = s.FirstFunc(gt4)
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	_, err = s.FirstFunc(func(v int) bool { return v > 100 })
	assert.ErrorIs(t, err, seqs.ErrOutOfRange)
	assert.False(t, errors.Is(err, seqs.ErrEmptySequence))

	_, err = seqs.Empty[int]().First()
	assert.ErrorIs(t, err, seqs.ErrEmptySequence)
	assert.True(t, strings.HasPrefix(err.Error(), "first: "))

	assert.Equal(t, 0, seqs.Empty[int]().FirstOrDefault())
	assert.Equal(t, 0, s.FirstOrDefaultFunc(func(v int) bool { return v > 100 }))
	assert.Equal(t, 8, s.FirstOrDefaultFunc(gt4))
}

func TestFirst_StopsEarly(t *testing.T) {
	pulls := 0
	_, err := counted([]int{1, 2, 3, 4}, &pulls).FirstFunc(func(v int) bool { return v == 2 })
	require.NoError(t, err)
	assert.Equal(t, 2, pulls)
}

func TestLast(t *testing.T) {
	gt4 := func(v int) bool { return v > 4 }

	for name, s := range map[string]seqs.Lazy[int]{
		"Backward": seqs.From([]int{3, 8, 5, 1}),
		"Forward":  seqs.From([]int{3, 8, 5, 1}).Where(func(int) bool { return true }),
	} {
		t.Run(name, func(t *testing.T) {
			v, err := s.Last()
			require.NoError(t, err)
			assert.Equal(t, 1, v)

			v, err = s.LastFunc(gt4)
			require.NoError(t, err)
			assert.Equal(t, 5, v)

			_, err = s.LastFunc(func(v int) bool { return v > 100 })
			assert.ErrorIs(t, err, seqs.ErrOutOfRange)

			assert.Equal(t, 5, s.LastOrDefaultFunc(gt4))
		})
	}

	_, err := seqs.Empty[int]().Last()
	assert.ErrorIs(t, err, seqs.ErrEmptySequence)
	assert.Equal(t, "", seqs.Empty[string]().LastOrDefault())
}

func TestElementAt(t *testing.T) {
	letters := func(r rune) string { return string(r) }
	for name, s := range map[string]seqs.Lazy[string]{
		"RandomAccess": seqs.From([]string{"a", "b", "c"}),
		"Sequential":   seqs.Select(seqs.FromString("abc"), letters),
	} {
		t.Run(name, func(t *testing.T) {
			v, err := s.ElementAt(1)
			require.NoError(t, err)
			assert.Equal(t, "b", v)

			_, err = s.ElementAt(3)
			assert.ErrorIs(t, err, seqs.ErrOutOfRange)
			_, err = s.ElementAt(-1)
			assert.ErrorIs(t, err, seqs.ErrOutOfRange)

			assert.Equal(t, "c", s.ElementAtOrDefault(2))
			assert.Equal(t, "", s.ElementAtOrDefault(7))
		})
	}
}

func TestQuantifiers(t *testing.T) {
	s := seqs.From([]int{2, 4, 5})
	even := func(v int) bool { return v%2 == 0 }

	assert.True(t, s.Any())
	assert.False(t, seqs.Empty[int]().Any())
	assert.False(t, s.Where(func(v int) bool { return v > 10 }).Any())
	assert.True(t, s.AnyFunc(even))
	assert.False(t, s.All(even))
	assert.True(t, s.Take(2).All(even))
	assert.True(t, seqs.Empty[int]().All(even))
	assert.False(t, s.None(even))
	assert.True(t, s.None(func(v int) bool { return v < 0 }))

	pulls := 0
	assert.False(t, counted([]int{2, 3, 4, 6}, &pulls).All(even))
	assert.Equal(t, 2, pulls)
}

func TestAggregate(t *testing.T) {
	s := seqs.From([]string{"a", "b", "c"})

	joined, err := s.Aggregate(func(acc, v string) string { return acc + "," + v })
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", joined)

	_, err = seqs.Empty[string]().Aggregate(func(acc, v string) string { return acc + v })
	assert.ErrorIs(t, err, seqs.ErrEmptySequence)

	n := seqs.AggregateSeed(s, 10, func(acc int, v string) int { return acc + len(v) })
	assert.Equal(t, 13, n)
	assert.Equal(t, 10, seqs.AggregateSeed(seqs.Empty[string](), 10, func(acc int, v string) int { return acc + 1 }))

	upper := seqs.AggregateResult(s, "", func(acc, v string) string { return v + acc }, strings.ToUpper)
	assert.Equal(t, "CBA", upper)
}

func TestContainsAndSequenceEqual(t *testing.T) {
	s := seqs.From([]string{"Go", "Rust"})

	assert.True(t, seqs.Contains(s, "Go"))
	assert.False(t, seqs.Contains(s, "go"))
	assert.True(t, s.ContainsFunc("go", strings.EqualFold))

	assert.True(t, seqs.SequenceEqual(s, seqs.From([]string{"Go", "Rust"})))
	assert.False(t, seqs.SequenceEqual(s, seqs.From([]string{"Go"})))
	assert.False(t, seqs.SequenceEqual(s, seqs.From([]string{"Go", "Rust", "Zig"}).Where(func(string) bool { return true })))
	assert.False(t, seqs.SequenceEqual(s, seqs.From([]string{"Rust", "Go"})))
	assert.True(t, seqs.SequenceEqual(seqs.Empty[string](), seqs.From([]string{})))
	assert.True(t, s.SequenceEqualFunc(seqs.From([]string{"GO", "rust"}), strings.EqualFold))
}

func TestForEach(t *testing.T) {
	var got []int
	seqs.Range(3, 0, -1).ForEach(func(v int) {
		got = append(got, v)
	})
	assert.Equal(t, []int{3, 2, 1}, got)
}

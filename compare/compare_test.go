package compare_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"lazyq/compare"
)

type person struct {
	name string
	age  int
}

func TestNaturalAndReverse(t *testing.T) {
	nat := compare.Natural[int]()
	assert.Negative(t, nat(1, 2))
	assert.Zero(t, nat(2, 2))
	assert.Positive(t, nat(3, 2))

	rev := compare.Reverse(nat)
	assert.Positive(t, rev(1, 2))
	assert.Zero(t, rev(2, 2))
}

func TestChain(t *testing.T) {
	people := []person{{"bob", 30}, {"al", 25}, {"cy", 30}, {"al", 20}}
	byAgeThenName := compare.Chain(
		compare.By(func(p person) int { return p.age }),
		compare.By(func(p person) string { return p.name }),
	)
	slices.SortFunc(people, byAgeThenName)
	assert.Equal(t, []person{{"al", 20}, {"al", 25}, {"bob", 30}, {"cy", 30}}, people)

	assert.Zero(t, compare.Chain[int]()(1, 2), "empty chain treats everything as equal")
}

func TestByFunc(t *testing.T) {
	byLen := compare.ByFunc(func(s string) int { return len(s) }, compare.Reverse(compare.Natural[int]()))
	words := []string{"a", "ccc", "bb"}
	slices.SortFunc(words, byLen)
	assert.Equal(t, []string{"ccc", "bb", "a"}, words)
}

func TestDerefAndLess(t *testing.T) {
	a, b := 1, 2
	c := compare.Deref(compare.Natural[int]())
	assert.Negative(t, c(&a, &b))

	less := compare.Less(compare.Natural[int]())
	assert.True(t, less(1, 2))
	assert.False(t, less(2, 2))
}

func TestCollation(t *testing.T) {
	words := []string{"Zebra", "äpfel", "apfel", "Bär"}

	t.Run("German", func(t *testing.T) {
		got := slices.Clone(words)
		slices.SortStableFunc(got, compare.Collation(language.German))
		assert.Equal(t, []string{"apfel", "äpfel", "Bär", "Zebra"}, got)
	})

	t.Run("ByteOrderDiffers", func(t *testing.T) {
		got := slices.Clone(words)
		slices.SortFunc(got, strings.Compare)
		assert.Equal(t, "Bär", got[0], "plain byte order puts upper case first")
	})

	t.Run("IgnoreCase", func(t *testing.T) {
		c := compare.Collation(language.English, collate.IgnoreCase)
		assert.Zero(t, c("hello", "HELLO"))
	})

	t.Run("CollationFor", func(t *testing.T) {
		c, err := compare.CollationFor("sv")
		require.NoError(t, err)
		// Swedish sorts ö after z
		assert.Positive(t, c("ö", "z"))

		_, err = compare.CollationFor("not a locale!")
		assert.Error(t, err)
	})
}

/*
Package seqs provides deferred-execution queries over ordered data sources.

A [Lazy] sequence wraps any source (a slice, an iter.Seq, a map, a string, a
container from package lists, or a generated [Range] / [Repeat]) behind a
pull-based producer. Operators never touch the source when they are applied;
they return a new Lazy whose producer runs only when a [Cursor] or a terminal
reducer asks for elements.

  - **Filtering & Projection**: [Lazy.Where], [Select], [SelectMany], [Lazy.Skip], [Lazy.Take],
    [Lazy.SkipWhile], [Lazy.TakeWhile] and their index-aware variants.
  - **Set Algebra**: [Distinct], [Union], [Intersect], [Except] and the comparator-driven
    Func variants. Membership is decided by a three-way comparator over element pointers;
    elements are never copied to be compared.
  - **Relational**: [GroupBy], [GroupValuesBy], [GroupByAndFold], [Join], [GroupJoin].
  - **Ordering**: [OrderBy], [OrderByDescending], [ThenBy], [ThenByDescending]. Any number of
    ThenBy stages collapse into a single stable sort.
  - **Combinators**: [Lazy.Concat], [Zip], [Lazy.Reverse].
  - **Reducers**: [Lazy.Aggregate], [Sum], [Average], [Min], [Max], [Lazy.First], [Lazy.Last],
    [Lazy.Single], [Lazy.ElementAt], [Lazy.Any], [Lazy.All], [Contains], [SequenceEqual],
    [Lazy.ToSlice], [ToMap], [Into].

# Multi-pass

Every call to [Lazy.Begin] (and every reducer) starts a fresh pass from the
unconsumed source. Operators that need an auxiliary structure (a sorted
index, a grouping, a lookup table) build it once, on the first pull of the
first pass, and share it with every later pass of the same Lazy.

	byAge := seqs.OrderBy(seqs.From(people), func(p Person) int { return p.Age })
	oldest, _ := byAge.Last()   // sorts
	youngest, _ := byAge.First() // reuses the sorted index

# Errors

Reducers that need at least one element return [ErrEmptySequence] on empty
input; lookups past the end, predicate lookups that match nothing and
ambiguous [Lazy.Single] calls return [ErrOutOfRange]. The OrDefault variants
return the zero value instead. Panics raised by user callables are not
recovered.

# Concurrency

Nothing in this package takes a lock. A Lazy whose deferred state has not been
built yet must not be iterated from several goroutines at once.
*/
package seqs

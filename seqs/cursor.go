package seqs

import "fmt"

// Cursor is a forward-only position in one pass of a Lazy.
//
// A cursor pulls its element only when dereferenced or compared and keeps it
// until Next. Two cursors are equal when both are exhausted, or when neither is
// and both sit at the same ordinal position; the producer they came from is not
// part of the comparison.
type Cursor[T any] struct {
	next   Producer[T]
	stop   func()
	cur    *T
	pos    int
	pulled bool
	done   bool
}

func (c *Cursor[T]) load() {
	if c.pulled {
		return
	}
	c.pulled = true
	if c.next != nil {
		c.cur = c.next()
	}
	if c.cur == nil {
		c.done = true
		c.Close()
	}
}

// Done reports whether the pass is exhausted.
func (c *Cursor[T]) Done() bool {
	c.load()
	return c.done
}

// Ptr returns a pointer to the current element, or nil at the end.
func (c *Cursor[T]) Ptr() *T {
	c.load()
	return c.cur
}

// Value returns the current element.
// If the cursor is exhausted, it returns the zero value of T
func (c *Cursor[T]) Value() (val T) {
	if p := c.Ptr(); p != nil {
		return *p
	}
	return val
}

// Next advances past the current element. It is a no-op at the end.
func (c *Cursor[T]) Next() {
	c.load()
	if c.done {
		return
	}
	c.cur = nil
	c.pulled = false
	c.pos++
}

// Pos returns the ordinal position of the cursor within its pass.
func (c *Cursor[T]) Pos() int {
	return c.pos
}

// Equal compares two cursors, pulling either one if needed.
func (c *Cursor[T]) Equal(other *Cursor[T]) bool {
	cd, od := c.Done(), other.Done()
	if cd || od {
		return cd && od
	}
	return c.pos == other.pos
}

// Close releases an unfinished pass and turns the cursor into an end cursor.
// Cursors over iter.Seq sources hold a coroutine until they are exhausted or
// closed.
func (c *Cursor[T]) Close() {
	if c.stop != nil {
		stop := c.stop
		c.stop = nil
		stop()
	}
	c.cur = nil
	c.pulled = true
	c.done = true
}

// String returns a string representation of the cursor
func (c *Cursor[T]) String() string {
	if c.Done() {
		return "Cursor(end)"
	}
	return fmt.Sprintf("Cursor(pos=%d, value=%v)", c.pos, *c.cur)
}

// Distance advances first until it equals last and returns the number of steps.
// It stops early if first runs out before reaching last.
func Distance[T any](first, last *Cursor[T]) int {
	n := 0
	for !first.Equal(last) && !first.Done() {
		first.Next()
		n++
	}
	return n
}

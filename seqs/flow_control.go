package seqs

// Take yields the first n elements. The upstream is never pulled past the
// n-th element.
func (s Lazy[T]) Take(n int) Lazy[T] {
	n = max(n, 0)
	out := Lazy[T]{
		open: func() (Producer[T], func()) {
			next, stop := s.start()
			taken := 0
			return func() *T {
				if taken >= n {
					stop()
					return nil
				}
				p := next()
				if p == nil {
					taken = n
					return nil
				}
				taken++
				return p
			}, stop
		},
	}
	if s.size != nil {
		out.size = func() int {
			return min(n, s.size())
		}
		if s.back != nil {
			out.back = func() (Producer[T], func()) {
				size := s.size()
				return Lazy[T]{open: s.back}.Skip(size - min(n, size)).open()
			}
		}
	}
	if s.at != nil {
		out.at = func(i int) *T {
			if i >= n {
				return nil
			}
			return s.at(i)
		}
	}
	return out
}

// Skip bypasses the first n elements and yields the rest.
func (s Lazy[T]) Skip(n int) Lazy[T] {
	if n <= 0 {
		return s
	}
	out := s.SkipWhileIndexed(func(_ T, i int) bool {
		return i < n
	})
	if s.size != nil {
		out.size = func() int {
			return max(0, s.size()-n)
		}
		if s.back != nil {
			out.back = func() (Producer[T], func()) {
				return Lazy[T]{open: s.back}.Take(max(0, s.size()-n)).open()
			}
		}
	}
	if s.at != nil {
		out.at = func(i int) *T {
			if i < 0 {
				return nil
			}
			return s.at(i + n)
		}
	}
	return out
}

// TakeWhile yields elements as long as predicate holds.
func (s Lazy[T]) TakeWhile(predicate func(T) bool) Lazy[T] {
	return s.TakeWhileIndexed(func(v T, _ int) bool {
		return predicate(v)
	})
}

// TakeWhileIndexed yields elements as long as predicate holds for the element
// and its index. Once predicate fails the pass is over: the upstream is
// released and never pulled again.
func (s Lazy[T]) TakeWhileIndexed(predicate func(T, int) bool) Lazy[T] {
	return Lazy[T]{
		open: func() (Producer[T], func()) {
			next, stop := s.start()
			failed := false
			i := 0
			return func() *T {
				if failed {
					return nil
				}
				p := next()
				if p == nil || !predicate(*p, i) {
					failed = true
					stop()
					return nil
				}
				i++
				return p
			}, stop
		},
	}
}

// SkipWhile bypasses elements as long as predicate holds, then yields the rest.
func (s Lazy[T]) SkipWhile(predicate func(T) bool) Lazy[T] {
	return s.SkipWhileIndexed(func(v T, _ int) bool {
		return predicate(v)
	})
}

// SkipWhileIndexed bypasses elements as long as predicate holds for the
// element and its index, then yields the rest without testing again.
func (s Lazy[T]) SkipWhileIndexed(predicate func(T, int) bool) Lazy[T] {
	return Lazy[T]{
		open: func() (Producer[T], func()) {
			next, stop := s.start()
			skipping := true
			i := 0
			return func() *T {
				if !skipping {
					return next()
				}
				skipping = false
				for p := next(); p != nil; p = next() {
					if !predicate(*p, i) {
						return p
					}
					i++
				}
				return nil
			}, stop
		},
	}
}

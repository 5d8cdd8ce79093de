package query

import "lazyq/seqs"

// pipeline is the sequence built so far. ordered is set right after an
// order-by or then-by stage, so that a following then-by can refine it.
type pipeline struct {
	cur     seqs.Lazy[int]
	ordered *seqs.Ordered[int]
}

func (p *pipeline) set(s seqs.Lazy[int]) {
	p.cur = s
	p.ordered = nil
}

func (p *pipeline) setOrdered(o seqs.Ordered[int]) {
	p.cur = o.Lazy
	p.ordered = &o
}

type stage func(p *pipeline, args []string) error

var stages = map[string]stage{
	"where":      predicateStage(seqs.Lazy[int].Where),
	"skip-while": predicateStage(seqs.Lazy[int].SkipWhile),
	"take-while": predicateStage(seqs.Lazy[int].TakeWhile),
	"skip":       countStage(seqs.Lazy[int].Skip),
	"take":       countStage(seqs.Lazy[int].Take),
	"union":      listStage(seqs.Union[int]),
	"intersect":  listStage(seqs.Intersect[int]),
	"except":     listStage(seqs.Except[int]),
	"concat":     listStage(seqs.Lazy[int].Concat),
	"zip": listStage(func(a, b seqs.Lazy[int]) seqs.Lazy[int] {
		return seqs.Zip(a, b, func(x, y int) int { return x + y })
	}),
	"distinct": func(p *pipeline, args []string) error {
		if err := wantArgs(args, 0, ""); err != nil {
			return err
		}
		p.set(seqs.Distinct(p.cur))
		return nil
	},
	"reverse": func(p *pipeline, args []string) error {
		if err := wantArgs(args, 0, ""); err != nil {
			return err
		}
		p.set(p.cur.Reverse())
		return nil
	},
	"select": func(p *pipeline, args []string) error {
		if err := wantArgs(args, 1, "PROJECTION"); err != nil {
			return err
		}
		f, err := parseProjection(args[0])
		if err != nil {
			return err
		}
		p.set(seqs.Select(p.cur, f))
		return nil
	},
	"order-by": func(p *pipeline, args []string) error {
		key, desc, err := orderArgs(args)
		if err != nil {
			return err
		}
		if desc {
			p.setOrdered(seqs.OrderByDescending(p.cur, key))
		} else {
			p.setOrdered(seqs.OrderBy(p.cur, key))
		}
		return nil
	},
	"then-by": func(p *pipeline, args []string) error {
		if p.ordered == nil {
			return syntaxErr("then-by must follow order-by or then-by")
		}
		key, desc, err := orderArgs(args)
		if err != nil {
			return err
		}
		if desc {
			p.setOrdered(seqs.ThenByDescending(*p.ordered, key))
		} else {
			p.setOrdered(seqs.ThenBy(*p.ordered, key))
		}
		return nil
	},
}

func wantArgs(args []string, n int, usage string) error {
	if len(args) == n {
		return nil
	}
	if n == 0 {
		return syntaxErr("takes no arguments")
	}
	return syntaxErr("expected %s", usage)
}

func predicateStage(op func(seqs.Lazy[int], func(int) bool) seqs.Lazy[int]) stage {
	return func(p *pipeline, args []string) error {
		if err := wantArgs(args, 1, "PREDICATE"); err != nil {
			return err
		}
		pred, err := parsePredicate(args[0])
		if err != nil {
			return err
		}
		p.set(op(p.cur, pred))
		return nil
	}
}

func countStage(op func(seqs.Lazy[int], int) seqs.Lazy[int]) stage {
	return func(p *pipeline, args []string) error {
		if err := wantArgs(args, 1, "N"); err != nil {
			return err
		}
		nums, err := parseInts(args)
		if err != nil {
			return err
		}
		p.set(op(p.cur, nums[0]))
		return nil
	}
}

func listStage(op func(a, b seqs.Lazy[int]) seqs.Lazy[int]) stage {
	return func(p *pipeline, args []string) error {
		if err := wantArgs(args, 1, "LIST"); err != nil {
			return err
		}
		nums, err := parseList(args[0])
		if err != nil {
			return err
		}
		p.set(op(p.cur, seqs.From(nums)))
		return nil
	}
}

func orderArgs(args []string) (key func(int) int, desc bool, err error) {
	switch {
	case len(args) == 2 && args[1] == "desc":
		desc = true
	case len(args) == 2 && args[1] == "asc", len(args) == 1:
	default:
		return nil, false, syntaxErr("expected KEY [asc|desc]")
	}
	key, err = parseProjection(args[0])
	return key, desc, err
}

type reducer func(seqs.Lazy[int]) (any, error)

var terminals = map[string]func(args []string) (reducer, error){
	"count": noArgs(func(s seqs.Lazy[int]) (any, error) {
		return s.Count(), nil
	}),
	"sum": noArgs(func(s seqs.Lazy[int]) (any, error) {
		return seqs.Sum(s)
	}),
	"average": noArgs(func(s seqs.Lazy[int]) (any, error) {
		return seqs.Average(s)
	}),
	"min": noArgs(func(s seqs.Lazy[int]) (any, error) {
		return seqs.Min(s)
	}),
	"max": noArgs(func(s seqs.Lazy[int]) (any, error) {
		return seqs.Max(s)
	}),
	"first":  lookupTerminal(seqs.Lazy[int].First, seqs.Lazy[int].FirstFunc),
	"last":   lookupTerminal(seqs.Lazy[int].Last, seqs.Lazy[int].LastFunc),
	"single": lookupTerminal(seqs.Lazy[int].Single, seqs.Lazy[int].SingleFunc),
	"any": func(args []string) (reducer, error) {
		if len(args) == 0 {
			return func(s seqs.Lazy[int]) (any, error) { return s.Any(), nil }, nil
		}
		return predicateTerminal(seqs.Lazy[int].AnyFunc)(args)
	},
	"all":  predicateTerminal(seqs.Lazy[int].All),
	"none": predicateTerminal(seqs.Lazy[int].None),
	"element-at": func(args []string) (reducer, error) {
		if err := wantArgs(args, 1, "N"); err != nil {
			return nil, err
		}
		nums, err := parseInts(args)
		if err != nil {
			return nil, err
		}
		return func(s seqs.Lazy[int]) (any, error) {
			return s.ElementAt(nums[0])
		}, nil
	},
	"contains": func(args []string) (reducer, error) {
		if err := wantArgs(args, 1, "N"); err != nil {
			return nil, err
		}
		nums, err := parseInts(args)
		if err != nil {
			return nil, err
		}
		return func(s seqs.Lazy[int]) (any, error) {
			return seqs.Contains(s, nums[0]), nil
		}, nil
	},
	"group": func(args []string) (reducer, error) {
		if err := wantArgs(args, 1, "KEY"); err != nil {
			return nil, err
		}
		key, err := parseProjection(args[0])
		if err != nil {
			return nil, err
		}
		return func(s seqs.Lazy[int]) (any, error) {
			groups := seqs.GroupByAndFold(s, key, identity, func(k int, vals seqs.Lazy[int]) Group {
				return Group{Key: k, Values: vals.ToSlice()}
			})
			return groups.ToSlice(), nil
		}, nil
	},
}

func identity(v int) int { return v }

func noArgs(r reducer) func([]string) (reducer, error) {
	return func(args []string) (reducer, error) {
		if err := wantArgs(args, 0, ""); err != nil {
			return nil, err
		}
		return r, nil
	}
}

func lookupTerminal(
	plain func(seqs.Lazy[int]) (int, error),
	matching func(seqs.Lazy[int], func(int) bool) (int, error),
) func([]string) (reducer, error) {
	return func(args []string) (reducer, error) {
		switch len(args) {
		case 0:
			return func(s seqs.Lazy[int]) (any, error) { return plain(s) }, nil
		case 1:
			pred, err := parsePredicate(args[0])
			if err != nil {
				return nil, err
			}
			return func(s seqs.Lazy[int]) (any, error) { return matching(s, pred) }, nil
		}
		return nil, syntaxErr("expected [PREDICATE]")
	}
}

func predicateTerminal(op func(seqs.Lazy[int], func(int) bool) bool) func([]string) (reducer, error) {
	return func(args []string) (reducer, error) {
		if err := wantArgs(args, 1, "PREDICATE"); err != nil {
			return nil, err
		}
		pred, err := parsePredicate(args[0])
		if err != nil {
			return nil, err
		}
		return func(s seqs.Lazy[int]) (any, error) {
			return op(s, pred), nil
		}, nil
	}
}

// Package query parses and runs the integer pipelines accepted by
// `lazyq query`, for example:
//
//	range 1 20 | where odd | select square | take 3 | sum
//
// A query is a source, any number of stages and an optional terminal, joined
// by '|'. Without a terminal the query evaluates to the resulting sequence.
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lazyq/seqs"
)

// ErrSyntax is wrapped by every error Parse returns.
var ErrSyntax = errors.New("syntax error")

func syntaxErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

// Query is a parsed pipeline. Parsing only wires the stages; nothing is
// evaluated before Run.
type Query struct {
	Text   string
	seq    seqs.Lazy[int]
	reduce reducer
}

// Group is one group of a `group` terminal.
type Group struct {
	Key    int   `json:"key" yaml:"key"`
	Values []int `json:"values" yaml:"values"`
}

// Result is the outcome of Run. Value is a []int for sequences, a []Group
// for `group`, and a scalar for every other terminal.
type Result struct {
	Query string `json:"query" yaml:"query"`
	Value any    `json:"value" yaml:"value"`
}

// Text renders the value on its own: sequences space-separated, one group per
// line.
func (r Result) Text() string {
	switch v := r.Value.(type) {
	case []int:
		return joinInts(v)
	case []Group:
		lines := make([]string, len(v))
		for i, g := range v {
			lines[i] = strconv.Itoa(g.Key) + ": " + joinInts(g.Values)
		}
		return strings.Join(lines, "\n")
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func joinInts(vs []int) string {
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, " ")
}

// Parse parses text into a Query.
func Parse(text string) (*Query, error) {
	segments := strings.Split(text, "|")

	head := strings.Fields(segments[0])
	if len(head) == 0 {
		return nil, syntaxErr("missing source")
	}
	src, err := parseSource(head[0], head[1:])
	if err != nil {
		return nil, err
	}

	q := &Query{Text: strings.Join(strings.Fields(text), " ")}
	p := &pipeline{cur: src}
	rest := segments[1:]
	for i, seg := range rest {
		words := strings.Fields(seg)
		if len(words) == 0 {
			return nil, syntaxErr("empty stage %d", i+1)
		}
		verb, args := words[0], words[1:]

		if build, ok := terminals[verb]; ok {
			if i != len(rest)-1 {
				return nil, syntaxErr("%s must be the last stage", verb)
			}
			if q.reduce, err = build(args); err != nil {
				return nil, fmt.Errorf("%s: %w", verb, err)
			}
			break
		}
		apply, ok := stages[verb]
		if !ok {
			return nil, syntaxErr("unknown stage %q", verb)
		}
		if err := apply(p, args); err != nil {
			return nil, fmt.Errorf("%s: %w", verb, err)
		}
	}
	q.seq = p.cur
	return q, nil
}

// Run evaluates the query.
func (q *Query) Run() (Result, error) {
	if q.reduce == nil {
		return Result{Query: q.Text, Value: q.seq.ToSlice()}, nil
	}
	v, err := q.reduce(q.seq)
	if err != nil {
		return Result{}, err
	}
	return Result{Query: q.Text, Value: v}, nil
}

func parseSource(verb string, args []string) (seqs.Lazy[int], error) {
	switch verb {
	case "range":
		if len(args) != 2 && len(args) != 3 {
			return seqs.Lazy[int]{}, syntaxErr("range takes START END [STEP]")
		}
		nums, err := parseInts(args)
		if err != nil {
			return seqs.Lazy[int]{}, err
		}
		step := 1
		if len(nums) == 3 {
			step = nums[2]
		}
		return seqs.Range(nums[0], nums[1], step), nil
	case "repeat":
		if len(args) != 2 {
			return seqs.Lazy[int]{}, syntaxErr("repeat takes VALUE COUNT")
		}
		nums, err := parseInts(args)
		if err != nil {
			return seqs.Lazy[int]{}, err
		}
		return seqs.Repeat(nums[0], nums[1]), nil
	case "values":
		if len(args) > 1 {
			return seqs.Lazy[int]{}, syntaxErr("values takes one comma-separated list")
		}
		if len(args) == 0 {
			return seqs.Empty[int](), nil
		}
		nums, err := parseList(args[0])
		if err != nil {
			return seqs.Lazy[int]{}, err
		}
		return seqs.From(nums), nil
	}
	return seqs.Lazy[int]{}, syntaxErr("unknown source %q", verb)
}

func parseInts(args []string) ([]int, error) {
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, syntaxErr("%q is not an integer", a)
		}
		nums[i] = n
	}
	return nums, nil
}

func parseList(arg string) ([]int, error) {
	if arg == "" {
		return []int{}, nil
	}
	return parseInts(strings.Split(arg, ","))
}

// operand splits "name:N" into its parts. hasN is false for a bare name.
func operand(arg string) (name string, n int, hasN bool, err error) {
	name, num, found := strings.Cut(arg, ":")
	if !found {
		return name, 0, false, nil
	}
	n, err = strconv.Atoi(num)
	if err != nil {
		return "", 0, false, syntaxErr("%q is not an integer", num)
	}
	return name, n, true, nil
}

func parsePredicate(arg string) (func(int) bool, error) {
	name, n, hasN, err := operand(arg)
	if err != nil {
		return nil, err
	}
	if !hasN {
		switch name {
		case "even":
			return func(v int) bool { return v%2 == 0 }, nil
		case "odd":
			return func(v int) bool { return v%2 != 0 }, nil
		}
		return nil, syntaxErr("unknown predicate %q", arg)
	}
	switch name {
	case "eq":
		return func(v int) bool { return v == n }, nil
	case "ne":
		return func(v int) bool { return v != n }, nil
	case "gt":
		return func(v int) bool { return v > n }, nil
	case "ge":
		return func(v int) bool { return v >= n }, nil
	case "lt":
		return func(v int) bool { return v < n }, nil
	case "le":
		return func(v int) bool { return v <= n }, nil
	}
	return nil, syntaxErr("unknown predicate %q", arg)
}

func parseProjection(arg string) (func(int) int, error) {
	name, n, hasN, err := operand(arg)
	if err != nil {
		return nil, err
	}
	if !hasN {
		switch name {
		case "id":
			return func(v int) int { return v }, nil
		case "square":
			return func(v int) int { return v * v }, nil
		case "negate":
			return func(v int) int { return -v }, nil
		case "even":
			return func(v int) int {
				if v%2 == 0 {
					return 1
				}
				return 0
			}, nil
		}
		return nil, syntaxErr("unknown projection %q", arg)
	}
	switch name {
	case "add":
		return func(v int) int { return v + n }, nil
	case "mul":
		return func(v int) int { return v * n }, nil
	case "mod":
		if n == 0 {
			return nil, syntaxErr("mod:0 divides by zero")
		}
		return func(v int) int { return v % n }, nil
	}
	return nil, syntaxErr("unknown projection %q", arg)
}

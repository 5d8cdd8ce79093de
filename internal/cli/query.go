package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"lazyq/internal/query"
)

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <pipeline>",
		Short: "Evaluate an integer pipeline",
		Long: `Evaluate an integer pipeline of the form

  SOURCE | STAGE | ... | [TERMINAL]

Sources:   range START END [STEP], repeat VALUE COUNT, values A,B,C
Stages:    where P, select F, skip N, take N, skip-while P, take-while P,
           distinct, reverse, union L, intersect L, except L, concat L,
           zip L, order-by F [asc|desc], then-by F [asc|desc]
Terminals: count, sum, average, min, max, first [P], last [P], single [P],
           element-at N, any [P], all P, none P, contains N, group F

Predicates P:  even, odd, eq:N, ne:N, gt:N, ge:N, lt:N, le:N
Projections F: id, square, negate, even, add:N, mul:N, mod:N
Lists L:       comma-separated integers`,
		Example: `  lazyq query "range 1 20 | where odd | select square | take 3"
  lazyq query "values 4,8,15,16,23,42 | group mod:2" --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, cmd, strings.Join(args, " "))
		},
	}
	return cmd
}

func runQuery(opts *RootOptions, cmd *cobra.Command, text string) error {
	formatter := opts.Formatter(cmd)

	q, err := query.Parse(text)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeSyntax, err)
	}
	opts.Logger.Debug().Str("query", q.Text).Msg("query parsed")

	res, err := q.Run()
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeEval, err)
	}
	return formatter.Success(res)
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"

	"lazyq/compare"
	"lazyq/seqs"
)

// WordsOptions holds flags for the words command.
type WordsOptions struct {
	Descending bool
	Distinct   bool
	IgnoreCase bool
	Numeric    bool
}

// WordsResult is the output of the words command.
type WordsResult struct {
	Locale string   `json:"locale" yaml:"locale"`
	Words  []string `json:"words" yaml:"words"`
}

// Text renders one word per line.
func (r WordsResult) Text() string {
	return strings.Join(r.Words, "\n")
}

// NewWordsCommand creates the words command.
func NewWordsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WordsOptions{}

	cmd := &cobra.Command{
		Use:   "words <word>...",
		Short: "Sort words by the collation rules of a locale",
		Long: `Sort words by the collation rules of a locale.

The locale comes from --locale, LAZYQ_LOCALE or the config file, and
defaults to "en".`,
		Example: `  lazyq words --locale sv zebra ödla apa
  lazyq words --distinct --ignore-case Go go GO rust`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWords(rootOpts, opts, cmd, args)
		},
	}

	cmd.Flags().String("locale", "en", "BCP 47 collation locale")
	cmd.Flags().BoolVar(&opts.Descending, "desc", false, "sort in descending order")
	cmd.Flags().BoolVar(&opts.Distinct, "distinct", false, "drop words that collate equal to an earlier one")
	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "ignore case differences")
	cmd.Flags().BoolVar(&opts.Numeric, "numeric", false, "order runs of digits by numeric value")

	return cmd
}

func (o *WordsOptions) collateOptions() []collate.Option {
	var opts []collate.Option
	if o.IgnoreCase {
		opts = append(opts, collate.IgnoreCase)
	}
	if o.Numeric {
		opts = append(opts, collate.Numeric)
	}
	return opts
}

func runWords(rootOpts *RootOptions, opts *WordsOptions, cmd *cobra.Command, args []string) error {
	formatter := rootOpts.Formatter(cmd)
	locale := rootOpts.Config.Locale

	order, err := compare.CollationFor(locale, opts.collateOptions()...)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeConfig, err)
	}

	words := seqs.From(args)
	if opts.Distinct {
		words = words.DistinctFunc(order)
	}
	if opts.Descending {
		order = compare.Reverse(order)
	}
	sorted := words.Sort(order)

	rootOpts.Logger.Debug().
		Str("locale", locale).
		Int("words", len(args)).
		Msg("sorting words")

	return formatter.Success(WordsResult{Locale: locale, Words: sorted.ToSlice()})
}

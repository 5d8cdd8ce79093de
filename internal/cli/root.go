// Package cli implements the lazyq command tree.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"lazyq/internal/config"
	"lazyq/internal/logging"
	"lazyq/seqs"
)

// RootOptions holds global flags and the configuration resolved from them.
type RootOptions struct {
	ConfigFile string
	EnvFile    string

	Config *config.Config
	Logger zerolog.Logger
}

// Formatter returns an OutputFormatter for cmd in the configured format.
func (o *RootOptions) Formatter(cmd *cobra.Command) *OutputFormatter {
	format := "text"
	if o.Config != nil {
		format = o.Config.Format
	}
	return &OutputFormatter{Format: format, Writer: cmd.OutOrStdout()}
}

// NewRootCommand creates the root command for the lazyq CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "lazyq",
		Short: "lazyq - deferred queries over integer and word sequences",
		Long: `Evaluate lazy query pipelines from the command line.

Every stage is deferred: nothing is read until the final reducer, or the
output, asks for elements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("format", "text", "output format (text|json|yaml)")
	flags.String("log-level", "warn", "log level (trace|debug|info|warn|error|disabled)")
	flags.String("log-format", logging.FormatConsole, "log format (console|json)")
	flags.Bool("no-color", false, "disable colored log output")
	flags.StringVar(&opts.ConfigFile, "config", "", "YAML config file")
	flags.StringVar(&opts.EnvFile, "env-file", "", ".env file with LAZYQ_* overrides")

	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewWordsCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

func (o *RootOptions) load(cmd *cobra.Command) error {
	var loaderOpts []config.LoaderOption
	if o.ConfigFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(o.ConfigFile))
	}
	if o.EnvFile != "" {
		loaderOpts = append(loaderOpts, config.WithEnvFile(o.EnvFile))
	}

	cfg, err := config.Load(cmd.Flags(), loaderOpts...)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		// the format itself may be what failed, so report in text
		f := &OutputFormatter{Format: "text", Writer: cmd.OutOrStdout()}
		return f.Fail(ExitCommandError, ErrCodeConfig, err)
	}

	o.Config = cfg
	o.Logger = logging.New(cfg.Log, cmd.ErrOrStderr())
	seqs.SetLogger(o.Logger)
	o.Logger.Debug().
		Str("command", cmd.Name()).
		Str("format", cfg.Format).
		Str("locale", cfg.Locale).
		Msg("configuration loaded")
	return nil
}

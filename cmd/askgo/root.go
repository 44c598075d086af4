package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leofalp/askgo/internal/config"
	"github.com/leofalp/askgo/providers/observability/slogobs"
)

// rootOptions holds the persistent flags shared by all commands.
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	ask := &askOptions{root: opts}

	rootCmd := &cobra.Command{
		Use:   "askgo [question...]",
		Short: "askgo answers general knowledge questions",
		Long: `askgo looks up a question on Wikipedia first, falls back to Google Custom Search,
and finally asks a Groq-hosted language model to rethink the answer.
Without a subcommand the arguments are treated as the question.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          ask.run,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	ask.bindFlags(rootCmd)

	rootCmd.AddCommand(newAskCmd(opts), newCalcCmd(opts))
	return rootCmd
}

// load reads the configuration and builds the observer writing to the
// command's stderr.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, *slogobs.Observer, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	level, err := slogobs.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	observer := slogobs.New(
		slogobs.WithFormat(slogobs.ParseFormat(cfg.Log.Format)),
		slogobs.WithLevel(level),
		slogobs.WithOutput(cmd.ErrOrStderr()),
	)
	return cfg, observer, nil
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

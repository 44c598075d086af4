package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leofalp/askgo/core/resolver"
	"github.com/leofalp/askgo/internal/config"
	"github.com/leofalp/askgo/providers/ai/openai"
	"github.com/leofalp/askgo/providers/encyclopedia/wikipedia"
	"github.com/leofalp/askgo/providers/observability"
	"github.com/leofalp/askgo/providers/search/googlesearch"
)

const prompt = "Ask a general knowledge question: "

type askOptions struct {
	root                *rootOptions
	quiet               bool
	timeout             time.Duration
	continueOnAmbiguous bool
}

func newAskCmd(root *rootOptions) *cobra.Command {
	opts := &askOptions{root: root}
	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Answer a question, prompting for it when no arguments are given",
		Args:  cobra.ArbitraryArgs,
		RunE:  opts.run,
	}
	opts.bindFlags(cmd)
	return cmd
}

func (o *askOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "Do not print status lines")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "Time limit for each lookup (overrides config)")
	cmd.Flags().BoolVar(&o.continueOnAmbiguous, "continue-on-ambiguous", false, "Fall through to search when Wikipedia is ambiguous")
}

func (o *askOptions) run(cmd *cobra.Command, args []string) error {
	cfg, observer, err := o.root.load(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("timeout") {
		cfg.StrategyTimeout = o.timeout
	}
	if cmd.Flags().Changed("continue-on-ambiguous") {
		cfg.ContinueOnAmbiguous = o.continueOnAmbiguous
	}

	out := cmd.OutOrStdout()
	question := strings.Join(args, " ")
	if strings.TrimSpace(question) == "" {
		question, err = readQuestion(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
	}

	r := newResolver(cfg, observer).WithProgress(func(source resolver.Source) {
		if o.quiet {
			return
		}
		switch source {
		case resolver.SourceWikipedia:
			fmt.Fprintln(out, "Fetching data...")
		case resolver.SourceModel:
			fmt.Fprintln(out, "Using Groq LLM to rethink the answer...")
		}
	})

	answer, err := r.Resolve(cmd.Context(), question)
	if err != nil {
		return err
	}
	observer.Info(cmd.Context(), "Answer resolved", observability.String(observability.AttrResolverSource, answer.Source.String()))
	return resolver.Render(out, answer)
}

// newResolver wires the production clients from cfg.
func newResolver(cfg *config.Config, observer observability.Provider) *resolver.Resolver {
	wikiOpts := []wikipedia.Option{wikipedia.WithLanguage(cfg.Wikipedia.Language)}
	if cfg.Wikipedia.BaseURL != "" {
		wikiOpts = append(wikiOpts, wikipedia.WithBaseURL(cfg.Wikipedia.BaseURL))
	}
	if cfg.Wikipedia.UserAgent != "" {
		wikiOpts = append(wikiOpts, wikipedia.WithUserAgent(cfg.Wikipedia.UserAgent))
	}

	searchOpts := []googlesearch.Option{googlesearch.WithEngineID(cfg.Google.EngineID)}
	if cfg.Google.BaseURL != "" {
		searchOpts = append(searchOpts, googlesearch.WithBaseURL(cfg.Google.BaseURL))
	}

	model := openai.New().WithAPIKey(cfg.Groq.APIKey)
	if cfg.Groq.BaseURL != "" {
		model = model.WithBaseURL(cfg.Groq.BaseURL)
	}

	return resolver.NewDefault(resolver.Config{
		Model:               cfg.Model,
		Sentences:           cfg.Wikipedia.Sentences,
		StrategyTimeout:     cfg.StrategyTimeout,
		ContinueOnAmbiguous: cfg.ContinueOnAmbiguous,
		Observer:            observer,
	},
		wikipedia.New(wikiOpts...),
		googlesearch.New(cfg.Google.APIKey, searchOpts...),
		model,
	)
}

// readQuestion reads one line from in without its line terminator. The
// prompt is only shown when in is an interactive terminal.
func readQuestion(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, prompt)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read question: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

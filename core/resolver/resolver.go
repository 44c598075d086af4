package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leofalp/askgo/providers/observability"
)

// Config holds resolver settings. The zero value is usable.
type Config struct {
	// Model is the chat model used by the last strategy.
	Model string
	// Sentences is the encyclopedia summary length.
	Sentences int
	// StrategyTimeout bounds each lookup. 0 means no limit beyond ctx.
	StrategyTimeout time.Duration
	// ContinueOnAmbiguous makes an ambiguous encyclopedia match fall through
	// to the next strategy.
	ContinueOnAmbiguous bool
	// Observer receives spans and logs. Optional.
	Observer observability.Provider
}

// Resolver runs strategies in order.
type Resolver struct {
	cfg        Config
	strategies []Strategy
	onStrategy func(Source)
}

// New creates a resolver over an explicit strategy list.
func New(cfg Config, strategies ...Strategy) *Resolver {
	return &Resolver{cfg: cfg, strategies: strategies}
}

// NewDefault builds the encyclopedia, search and model chain.
func NewDefault(cfg Config, enc Encyclopedia, search WebSearch, model ChatModel) *Resolver {
	return New(cfg,
		&EncyclopediaStrategy{Client: enc, Sentences: cfg.Sentences, ContinueOnAmbiguous: cfg.ContinueOnAmbiguous},
		&SearchStrategy{Client: search},
		&ModelStrategy{Client: model, Model: cfg.Model},
	)
}

// WithProgress registers fn to be called before each strategy runs.
func (r *Resolver) WithProgress(fn func(Source)) *Resolver {
	r.onStrategy = fn
	return r
}

// Resolve returns the first answer produced by the strategies, in order.
// An error from a strategy is returned wrapped with the strategy name.
// The question reaches each strategy exactly as given; a blank question is
// rejected with ErrEmptyQuestion.
func (r *Resolver) Resolve(ctx context.Context, question string) (*Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	var span observability.Span
	if r.cfg.Observer != nil {
		ctx, span = r.cfg.Observer.StartSpan(ctx, observability.SpanResolve,
			observability.String(observability.AttrResolverQuestion, question))
		defer span.End()
	}

	for _, strategy := range r.strategies {
		if r.onStrategy != nil {
			r.onStrategy(strategy.Source())
		}

		outcome, err := r.lookup(ctx, strategy, question)
		if err != nil {
			if span != nil {
				span.RecordError(err)
				span.SetStatus(observability.StatusError, "strategy failed")
			}
			return nil, fmt.Errorf("%s lookup: %w", strategy.Source(), err)
		}
		if outcome.Answered {
			if span != nil {
				span.SetAttributes(observability.String(observability.AttrResolverSource, strategy.Source().String()))
				span.SetStatus(observability.StatusOK, "")
			}
			return &Answer{Source: strategy.Source(), Text: outcome.Text}, nil
		}
	}

	if span != nil {
		span.SetStatus(observability.StatusError, ErrNoAnswer.Error())
	}
	return nil, ErrNoAnswer
}

func (r *Resolver) lookup(ctx context.Context, strategy Strategy, question string) (Outcome, error) {
	if r.cfg.StrategyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.StrategyTimeout)
		defer cancel()
	}

	if r.cfg.Observer == nil {
		return strategy.Lookup(ctx, question)
	}

	ctx, span := r.cfg.Observer.StartSpan(ctx, observability.SpanStrategy,
		observability.String(observability.AttrResolverStrategy, strategy.Source().String()))
	defer span.End()

	outcome, err := strategy.Lookup(ctx, question)
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(observability.StatusError, "lookup error")
	case outcome.Answered:
		span.SetAttributes(observability.String(observability.AttrResolverOutcome, "answered"))
		span.SetStatus(observability.StatusOK, "")
	default:
		span.SetAttributes(
			observability.String(observability.AttrResolverOutcome, "failed"),
			observability.String(observability.AttrResolverReason, outcome.Reason),
		)
		r.cfg.Observer.Debug(ctx, "Strategy failed, trying next",
			observability.String(observability.AttrResolverStrategy, strategy.Source().String()),
			observability.String(observability.AttrResolverReason, outcome.Reason))
	}
	return outcome, err
}

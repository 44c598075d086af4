package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leofalp/askgo/providers/ai"
	"github.com/leofalp/askgo/providers/encyclopedia/wikipedia"
	"github.com/leofalp/askgo/providers/search/googlesearch"
)

const (
	// DefaultModel is the chat model used when the config names none.
	DefaultModel = "llama3-70b-8192"
	// DefaultSentences is the length of encyclopedia summaries.
	DefaultSentences = 2

	noSearchResult = "No relevant result found."
	systemPrompt   = "Answer accurately and concisely."
	userPrompt     = "Answer this question accurately: "
)

// Strategy is one step of the fallback chain. A non-nil error aborts
// resolution; a failed Outcome moves on to the next strategy.
type Strategy interface {
	Source() Source
	Lookup(ctx context.Context, question string) (Outcome, error)
}

// Encyclopedia returns article summaries. *wikipedia.Client implements it.
type Encyclopedia interface {
	Summary(ctx context.Context, query string, sentences int) (*wikipedia.Summary, error)
}

// WebSearch runs web searches. *googlesearch.Client implements it.
type WebSearch interface {
	Search(ctx context.Context, query string) (*googlesearch.Response, error)
}

// ChatModel sends chat completions. Every ai.Provider implements it.
type ChatModel interface {
	SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)
}

// EncyclopediaStrategy answers with the lead sentences of an article.
type EncyclopediaStrategy struct {
	Client    Encyclopedia
	Sentences int
	// ContinueOnAmbiguous turns a disambiguation page into a failure instead
	// of answering with the list of candidates.
	ContinueOnAmbiguous bool
}

func (s *EncyclopediaStrategy) Source() Source { return SourceWikipedia }

func (s *EncyclopediaStrategy) Lookup(ctx context.Context, question string) (Outcome, error) {
	sentences := s.Sentences
	if sentences <= 0 {
		sentences = DefaultSentences
	}

	summary, err := s.Client.Summary(ctx, question, sentences)
	if err == nil {
		return Answered(summary.Extract), nil
	}

	var disambig *wikipedia.DisambiguationError
	switch {
	case errors.As(err, &disambig):
		if s.ContinueOnAmbiguous {
			return Failed("ambiguous: " + disambig.Title), nil
		}
		return Answered("Multiple results found: " + quoteList(disambig.Options)), nil
	case errors.Is(err, wikipedia.ErrPageNotFound):
		return Failed("no page found"), nil
	}
	return Outcome{}, err
}

// SearchStrategy answers with the first web search snippet.
type SearchStrategy struct {
	Client WebSearch
}

func (s *SearchStrategy) Source() Source { return SourceGoogle }

// Lookup answers with a placeholder when the search succeeds without
// results; only an error status from the service counts as a failure.
func (s *SearchStrategy) Lookup(ctx context.Context, question string) (Outcome, error) {
	resp, err := s.Client.Search(ctx, question)
	if err != nil {
		var statusErr *googlesearch.StatusError
		if errors.As(err, &statusErr) {
			return Failed(fmt.Sprintf("search status %d", statusErr.StatusCode)), nil
		}
		return Outcome{}, err
	}
	if snippet, ok := resp.FirstSnippet(); ok {
		return Answered(snippet), nil
	}
	return Answered(noSearchResult), nil
}

// ModelStrategy asks a chat model. It never fails softly.
type ModelStrategy struct {
	Client ChatModel
	Model  string
}

func (s *ModelStrategy) Source() Source { return SourceModel }

func (s *ModelStrategy) Lookup(ctx context.Context, question string) (Outcome, error) {
	model := s.Model
	if model == "" {
		model = DefaultModel
	}

	resp, err := s.Client.SendMessage(ctx, ai.ChatRequest{
		Model:        model,
		SystemPrompt: systemPrompt,
		Messages:     []ai.Message{{Role: ai.RoleUser, Content: userPrompt + question}},
	})
	if err != nil {
		return Outcome{}, err
	}
	return Answered(resp.Content), nil
}

// quoteList formats items as a bracketed list of quoted strings, e.g.
// ['Mercury (planet)', 'Mercury (element)']. An item holding a single quote
// and no double quote is wrapped in double quotes instead.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quote := "'"
		if strings.Contains(item, "'") && !strings.Contains(item, `"`) {
			quote = `"`
		}
		escaped := strings.NewReplacer(
			`\`, `\\`,
			quote, `\`+quote,
			"\n", `\n`,
			"\r", `\r`,
			"\t", `\t`,
		).Replace(item)
		quoted[i] = quote + escaped + quote
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

package resolver

import (
	"context"

	"github.com/leofalp/askgo/providers/ai"
	"github.com/leofalp/askgo/providers/encyclopedia/wikipedia"
	"github.com/leofalp/askgo/providers/search/googlesearch"
)

type fakeEncyclopedia struct {
	summary   *wikipedia.Summary
	err       error
	calls     int
	sentences int
}

func (f *fakeEncyclopedia) Summary(_ context.Context, _ string, sentences int) (*wikipedia.Summary, error) {
	f.calls++
	f.sentences = sentences
	return f.summary, f.err
}

type fakeSearch struct {
	resp  *googlesearch.Response
	err   error
	calls int
}

func (f *fakeSearch) Search(context.Context, string) (*googlesearch.Response, error) {
	f.calls++
	return f.resp, f.err
}

type fakeModel struct {
	content string
	err     error
	calls   int
	last    ai.ChatRequest
}

func (f *fakeModel) SendMessage(_ context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	f.calls++
	f.last = request
	if f.err != nil {
		return nil, f.err
	}
	return &ai.ChatResponse{Content: f.content}, nil
}

// staticStrategy returns a fixed outcome and counts calls.
type staticStrategy struct {
	source  Source
	outcome Outcome
	err     error
	calls   int
	lookup  func(ctx context.Context) (Outcome, error)
}

func (s *staticStrategy) Source() Source { return s.source }

func (s *staticStrategy) Lookup(ctx context.Context, _ string) (Outcome, error) {
	s.calls++
	if s.lookup != nil {
		return s.lookup(ctx)
	}
	return s.outcome, s.err
}

package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeWiki answers the three kinds of query the client sends. Pages missing
// from the maps are reported as missing.
type fakeWiki struct {
	suggestion string
	hits       []string
	extracts   map[string]string
	disambig   map[string][]string
	redirects  map[string]string
	requests   []string
}

func (f *fakeWiki) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f.requests = append(f.requests, q.Get("list")+q.Get("prop"))
	if q.Get("format") != "json" || q.Get("formatversion") != "2" || q.Get("action") != "query" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if r.Header.Get("User-Agent") == "" {
		http.Error(w, "missing user agent", http.StatusForbidden)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	title := q.Get("titles")
	if target, ok := f.redirects[title]; ok {
		title = target
	}
	_, isArticle := f.extracts[title]
	options, isDisambig := f.disambig[title]

	switch {
	case q.Get("list") == "search":
		search := "[]"
		if len(f.hits) > 0 {
			search = fmt.Sprintf(`[{"title":%q}]`, f.hits[0])
		}
		fmt.Fprintf(w, `{"query":{"searchinfo":{"suggestion":%q},"search":%s}}`, f.suggestion, search)
	case q.Get("prop") == "info|pageprops":
		switch {
		case isDisambig:
			fmt.Fprintf(w, `{"query":{"pages":[{"title":%q,"pageprops":{"disambiguation":""}}]}}`, title)
		case isArticle:
			fmt.Fprintf(w, `{"query":{"pages":[{"title":%q,"fullurl":"https://en.wikipedia.org/wiki/%s"}]}}`, title, title)
		default:
			fmt.Fprintf(w, `{"query":{"pages":[{"title":%q,"missing":true}]}}`, title)
		}
	case q.Get("prop") == "links":
		links := ""
		for i, option := range options {
			if i > 0 {
				links += ","
			}
			links += fmt.Sprintf(`{"ns":0,"title":%q}`, option)
		}
		fmt.Fprintf(w, `{"query":{"pages":[{"title":%q,"links":[%s,{"ns":14,"title":"Category:X"}]}]}}`, title, links)
	case q.Get("prop") == "extracts":
		if q.Get("exintro") != "1" || q.Get("exsentences") != "2" {
			http.Error(w, "unexpected extract params "+r.URL.RawQuery, http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, `{"query":{"pages":[{"title":%q,"extract":%q}]}}`, title, f.extracts[title]+"\n")
	default:
		http.Error(w, "unknown query", http.StatusBadRequest)
	}
}

func newTestClient(t *testing.T, wiki *fakeWiki) *Client {
	t.Helper()
	server := httptest.NewServer(wiki)
	t.Cleanup(server.Close)
	return New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
}

func TestSummary_Found(t *testing.T) {
	wiki := &fakeWiki{
		hits:     []string{"Paris"},
		extracts: map[string]string{"Paris": "Paris is the capital of France. It is large."},
	}
	client := newTestClient(t, wiki)

	summary, err := client.Summary(context.Background(), "capital of France", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Title != "Paris" || summary.Extract != "Paris is the capital of France. It is large." {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.URL != "https://en.wikipedia.org/wiki/Paris" {
		t.Errorf("URL = %q", summary.URL)
	}
	if len(wiki.requests) != 3 {
		t.Errorf("requests = %v, want search, info and extract", wiki.requests)
	}
}

// TestSummary_PrefersSuggestion verifies that a spelling suggestion wins
// over the top search hit.
func TestSummary_PrefersSuggestion(t *testing.T) {
	wiki := &fakeWiki{
		suggestion: "Albert Einstein",
		hits:       []string{"Einstein (crater)"},
		extracts:   map[string]string{"Albert Einstein": "Albert Einstein was a physicist."},
	}
	summary, err := newTestClient(t, wiki).Summary(context.Background(), "albert einstien", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Title != "Albert Einstein" {
		t.Errorf("Title = %q, want the suggestion", summary.Title)
	}
}

func TestSummary_FollowsRedirect(t *testing.T) {
	wiki := &fakeWiki{
		hits:      []string{"UK"},
		redirects: map[string]string{"UK": "United Kingdom"},
		extracts:  map[string]string{"United Kingdom": "The United Kingdom is a country."},
	}
	summary, err := newTestClient(t, wiki).Summary(context.Background(), "UK", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Title != "United Kingdom" {
		t.Errorf("Title = %q", summary.Title)
	}
}

func TestSummary_NoSearchResults(t *testing.T) {
	_, err := newTestClient(t, &fakeWiki{}).Summary(context.Background(), "xyzzy plugh", 2)
	if !errors.Is(err, ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
}

func TestSummary_MissingPage(t *testing.T) {
	wiki := &fakeWiki{hits: []string{"Ghost"}}
	_, err := newTestClient(t, wiki).Summary(context.Background(), "ghost", 2)
	if !errors.Is(err, ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
}

func TestSummary_Disambiguation(t *testing.T) {
	wiki := &fakeWiki{
		hits:     []string{"Mercury"},
		disambig: map[string][]string{"Mercury": {"Mercury (planet)", "Mercury (element)"}},
	}
	_, err := newTestClient(t, wiki).Summary(context.Background(), "mercury", 2)

	var disambig *DisambiguationError
	if !errors.As(err, &disambig) {
		t.Fatalf("expected *DisambiguationError, got %v", err)
	}
	if disambig.Title != "Mercury" {
		t.Errorf("Title = %q", disambig.Title)
	}
	if len(disambig.Options) != 2 || disambig.Options[0] != "Mercury (planet)" || disambig.Options[1] != "Mercury (element)" {
		t.Errorf("Options = %v, want the namespace-0 links in order", disambig.Options)
	}
}

func TestSummary_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := New(WithBaseURL(server.URL)).Summary(context.Background(), "anything", 2)
	if err == nil || errors.Is(err, ErrPageNotFound) {
		t.Errorf("expected a transport error distinct from ErrPageNotFound, got %v", err)
	}
}

func TestSummary_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"code":"badvalue","info":"Unrecognized value"}}`)
	}))
	defer server.Close()

	_, err := New(WithBaseURL(server.URL)).Summary(context.Background(), "anything", 2)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != "badvalue" {
		t.Errorf("expected *APIError badvalue, got %v", err)
	}
}

func TestEndpoint(t *testing.T) {
	if got := New().Endpoint(); got != "https://en.wikipedia.org/w/api.php" {
		t.Errorf("default endpoint = %q", got)
	}
	if got := New(WithLanguage("DE")).Endpoint(); got != "https://de.wikipedia.org/w/api.php" {
		t.Errorf("language endpoint = %q", got)
	}
	if got := New(WithLanguage("de"), WithBaseURL("http://localhost/api.php")).Endpoint(); got != "http://localhost/api.php" {
		t.Errorf("base URL should win, got %q", got)
	}
}

package googlesearch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/askgo/internal/utils"
)

// DefaultBaseURL is the Custom Search JSON API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// Response is the subset of a Custom Search response used by askgo.
type Response struct {
	Items []Item `json:"items"`
}

// Item is a single search result.
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	HTMLSnippet string `json:"htmlSnippet"`
}

// FirstSnippet returns the snippet of the first item. When the plain snippet
// is empty the HTML snippet is converted to Markdown instead. ok is false
// when there are no items or neither snippet has text.
func (r *Response) FirstSnippet() (snippet string, ok bool) {
	if r == nil || len(r.Items) == 0 {
		return "", false
	}
	item := r.Items[0]
	if s := strings.TrimSpace(item.Snippet); s != "" {
		return s, true
	}
	if item.HTMLSnippet == "" {
		return "", false
	}
	markdown, err := htmltomarkdown.ConvertString(item.HTMLSnippet)
	if err != nil {
		return "", false
	}
	markdown = strings.TrimSpace(markdown)
	return markdown, markdown != ""
}

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("google search returned status %d: %s", e.StatusCode, utils.TruncateString(e.Body, 200))
}

// Client calls the Custom Search API.
type Client struct {
	apiKey     string
	engineID   string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEngineID sets the programmable search engine ID (cx).
func WithEngineID(engineID string) Option {
	return func(c *Client) {
		c.engineID = engineID
	}
}

// WithBaseURL overrides [DefaultBaseURL].
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client. The key is sent as-is; an empty or invalid key is
// rejected by Google and surfaces as a [*StatusError].
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs query and returns the decoded response.
func (c *Client) Search(ctx context.Context, query string) (*Response, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	if c.engineID != "" {
		params.Set("cx", c.engineID)
	}

	res, resp, err := utils.DoGetSync[Response](ctx, c.httpClient, c.baseURL+"?"+params.Encode(), nil)
	if res != nil && res.StatusCode != http.StatusOK {
		statusErr := &StatusError{StatusCode: res.StatusCode}
		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) {
			statusErr.Body = httpErr.Body
		}
		return nil, statusErr
	}
	if err != nil {
		return nil, fmt.Errorf("google search request failed: %w", err)
	}
	return resp, nil
}

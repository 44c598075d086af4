package wikipedia

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/leofalp/askgo/internal/utils"
)

const (
	// DefaultLanguage is the Wikipedia edition queried when none is set.
	DefaultLanguage  = "en"
	defaultUserAgent = "askgo/1.0 (https://github.com/leofalp/askgo)"
)

// Client queries one Wikipedia edition.
type Client struct {
	baseURL    string
	language   string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the api.php endpoint, overriding the language edition.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLanguage selects the edition, e.g. "de" for de.wikipedia.org.
func WithLanguage(language string) Option {
	return func(c *Client) {
		if language != "" {
			c.language = strings.ToLower(language)
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets the User-Agent header. Wikimedia rejects requests
// without a descriptive one.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New creates a client for the English Wikipedia unless options say otherwise.
func New(opts ...Option) *Client {
	c := &Client{
		language:   DefaultLanguage,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the api.php URL requests are sent to.
func (c *Client) Endpoint() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return "https://" + c.language + ".wikipedia.org/w/api.php"
}

// Summary returns the first sentences of the article matching query.
// sentences <= 0 returns the whole introduction.
func (c *Client) Summary(ctx context.Context, query string, sentences int) (*Summary, error) {
	title, err := c.searchTitle(ctx, query)
	if err != nil {
		return nil, err
	}

	p, err := c.pageInfo(ctx, title)
	if err != nil {
		return nil, err
	}
	if p.isDisambiguation() {
		options, err := c.links(ctx, p.Title)
		if err != nil {
			return nil, err
		}
		return nil, &DisambiguationError{Title: p.Title, Options: options}
	}

	extract, err := c.extract(ctx, p.Title, sentences)
	if err != nil {
		return nil, err
	}
	return &Summary{Title: p.Title, Extract: extract, URL: p.FullURL}, nil
}

// searchTitle picks the suggested spelling when the search engine offers
// one, otherwise the top hit.
func (c *Client) searchTitle(ctx context.Context, query string) (string, error) {
	resp, err := c.query(ctx, url.Values{
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {"1"},
		"srprop":   {""},
		"srinfo":   {"suggestion"},
	})
	if err != nil {
		return "", err
	}

	if suggestion := resp.Query.SearchInfo.Suggestion; suggestion != "" {
		return suggestion, nil
	}
	if len(resp.Query.Search) == 0 {
		return "", fmt.Errorf("%w: %q", ErrPageNotFound, query)
	}
	return resp.Query.Search[0].Title, nil
}

func (c *Client) pageInfo(ctx context.Context, title string) (*page, error) {
	resp, err := c.query(ctx, url.Values{
		"titles":    {title},
		"prop":      {"info|pageprops"},
		"inprop":    {"url"},
		"ppprop":    {"disambiguation"},
		"redirects": {"1"},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Query.Pages) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, title)
	}
	p := resp.Query.Pages[0]
	if p.Missing || p.Invalid {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, title)
	}
	return &p, nil
}

// links returns the article titles a disambiguation page points to, in page
// order.
func (c *Client) links(ctx context.Context, title string) ([]string, error) {
	resp, err := c.query(ctx, url.Values{
		"titles":      {title},
		"prop":        {"links"},
		"plnamespace": {"0"},
		"pllimit":     {"max"},
	})
	if err != nil {
		return nil, err
	}

	var options []string
	for _, p := range resp.Query.Pages {
		for _, link := range p.Links {
			if link.NS == 0 {
				options = append(options, link.Title)
			}
		}
	}
	return options, nil
}

func (c *Client) extract(ctx context.Context, title string, sentences int) (string, error) {
	params := url.Values{
		"titles":      {title},
		"prop":        {"extracts"},
		"explaintext": {"1"},
		"exintro":     {"1"},
	}
	if sentences > 0 {
		params.Set("exsentences", strconv.Itoa(sentences))
	}

	resp, err := c.query(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Query.Pages) == 0 || resp.Query.Pages[0].Missing {
		return "", fmt.Errorf("%w: %q", ErrPageNotFound, title)
	}
	return strings.TrimSpace(resp.Query.Pages[0].Extract), nil
}

func (c *Client) query(ctx context.Context, params url.Values) (*queryResponse, error) {
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	header := http.Header{"User-Agent": []string{c.userAgent}}
	_, resp, err := utils.DoGetSync[queryResponse](ctx, c.httpClient, c.Endpoint()+"?"+params.Encode(), header)
	if err != nil {
		return nil, fmt.Errorf("wikipedia request failed: %w", err)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp, nil
}

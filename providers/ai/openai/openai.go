package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/leofalp/askgo/internal/utils"
	"github.com/leofalp/askgo/providers/ai"
	"github.com/leofalp/askgo/providers/observability"
)

const (
	// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
	DefaultBaseURL          = "https://api.groq.com/openai/v1"
	chatCompletionsEndpoint = "/chat/completions"
)

var (
	// ErrMissingAPIKey is returned by SendMessage when no key was configured.
	ErrMissingAPIKey = errors.New("API key is not set")
	// ErrNoChoices is returned when the API answers without any choice.
	ErrNoChoices = errors.New("no choices in response")
)

// Provider implements ai.Provider for OpenAI-compatible chat completions.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a provider pointed at [DefaultBaseURL] with no API key.
func New() *Provider {
	return &Provider{
		baseURL: DefaultBaseURL,
		client:  &http.Client{},
	}
}

var _ ai.Provider = (*Provider)(nil)

// WithAPIKey sets the API key for the provider
func (p *Provider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API. A trailing slash is ignored.
func (p *Provider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = strings.TrimRight(baseURL, "/")
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *Provider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements ai.Provider.
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint := p.baseURL + chatCompletionsEndpoint
	observability.SetSpanAttributes(ctx,
		observability.String(observability.AttrLLMModel, request.Model),
		observability.String(observability.AttrLLMEndpoint, endpoint),
	)

	_, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, endpoint, p.apiKey, requestToChatCompletion(request))
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrNoChoices
	}

	out := chatCompletionToGeneric(*resp)
	observability.SetSpanAttributes(ctx, observability.String(observability.AttrLLMFinishReason, out.FinishReason))
	if out.Usage != nil {
		observability.SetSpanAttributes(ctx, observability.Int(observability.AttrLLMTokensTotal, out.Usage.TotalTokens))
	}
	return out, nil
}

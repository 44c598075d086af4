package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/leofalp/askgo/providers/observability"
)

// HTTPError is returned when a server answers with a non-2xx status.
// Body holds the raw response body.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("non-2xx status %d: %s", e.StatusCode, TruncateString(e.Body, DefaultMaxStringLength))
}

// DoGetSync performs a synchronous HTTP GET request and decodes the JSON
// response into OutputStruct. Extra headers are added to the request.
//
// Error Handling Strategy:
//   - Context errors (timeout, cancellation) are wrapped and can be matched with errors.Is
//   - Non-2xx responses return an [*HTTPError] carrying the response body
//   - Response body close errors are logged but don't override primary errors
//   - JSON parsing errors include a response preview for debugging
func DoGetSync[OutputStruct any](ctx context.Context, client *http.Client, url string, header http.Header) (*http.Response, *OutputStruct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	return doSync[OutputStruct](ctx, client, req, 0)
}

// DoPostSync performs a synchronous HTTP POST request with a JSON body and
// decodes the JSON response. A non-empty apiKey is sent as a bearer token.
// Errors follow the same rules as [DoGetSync].
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, body any) (*http.Response, *OutputStruct, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	return doSync[OutputStruct](ctx, client, req, len(jsonBody))
}

func doSync[OutputStruct any](ctx context.Context, client *http.Client, req *http.Request, bodySize int) (*http.Response, *OutputStruct, error) {
	url := RedactURL(req.URL.String())

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	observability.AddSpanEvent(ctx, observability.EventHTTPRequestPrepared,
		observability.String(observability.AttrHTTPMethod, req.Method),
		observability.String(observability.AttrHTTPURL, url),
		observability.Int(observability.AttrHTTPRequestBodySize, bodySize),
	)

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		observability.AddSpanEvent(ctx, observability.EventHTTPRequestError,
			observability.Error(err),
			observability.Duration(observability.AttrHTTPDuration, requestDuration),
		)
		return nil, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer CloseWithLog(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	observability.AddSpanEvent(ctx, observability.EventHTTPResponse,
		observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
		observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
		observability.Duration(observability.AttrHTTPDuration, requestDuration),
	)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, &HTTPError{StatusCode: res.StatusCode, Body: string(respBody)}
	}

	var resStruct OutputStruct
	if err = json.Unmarshal(respBody, &resStruct); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling response body (status %d): %w\nResponse preview: %s", res.StatusCode, err, TruncateString(string(respBody), DefaultMaxStringLength))
	}

	return res, &resStruct, nil
}

// CloseWithLog closes c and logs a warning if that fails.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close resource", "error", err.Error())
	}
}

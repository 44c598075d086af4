package observability

// Semantic conventions for observability attributes.

// --- Resolver Attributes ---

const (
	// AttrResolverQuestion is the question being resolved
	AttrResolverQuestion = "resolver.question"

	// AttrResolverStrategy is the strategy currently running (wikipedia, google, model)
	AttrResolverStrategy = "resolver.strategy"

	// AttrResolverOutcome is "answered" or "failed"
	AttrResolverOutcome = "resolver.outcome"

	// AttrResolverReason explains why a strategy failed
	AttrResolverReason = "resolver.reason"

	// AttrResolverSource is the strategy that produced the final answer
	AttrResolverSource = "resolver.source"
)

// --- LLM Attributes ---

const (
	// AttrLLMModel is the model identifier (e.g., "llama3-70b-8192")
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMTokensTotal is the total number of tokens
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the request URL with credentials redacted
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"

	// AttrHTTPDuration is the round-trip duration
	AttrHTTPDuration = "http.request.duration"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanResolve wraps a whole resolution
	SpanResolve = "resolver.resolve"

	// SpanStrategy wraps a single strategy attempt
	SpanStrategy = "resolver.strategy"
)

// --- Event Names ---

const (
	EventHTTPRequestPrepared = "http.request.prepared"
	EventHTTPRequestError    = "http.request.error"
	EventHTTPResponse        = "http.response.received"
)

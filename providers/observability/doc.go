// Package observability defines the tracing and logging interfaces used by
// askgo to report what happens while a question is resolved.
//
// [Provider] composes a [Tracer] and a [Logger] into a single injectable
// dependency. The active [Span] travels through a [context.Context] with
// [ContextWithSpan] and is retrieved with [SpanFromContext], so low-level HTTP
// helpers can attach events to whatever strategy is currently running.
//
// semconv.go holds the attribute keys, span names and event names shared by
// all components.
package observability

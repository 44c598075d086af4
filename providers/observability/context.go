package observability

import "context"

type spanKey struct{}

// SpanFromContext returns the span carried by ctx, or nil.
func SpanFromContext(ctx context.Context) Span {
	if ctx == nil {
		return nil
	}
	span, _ := ctx.Value(spanKey{}).(Span)
	return span
}

// ContextWithSpan attaches span to ctx. A nil span leaves ctx unchanged and
// a nil ctx is replaced with context.Background().
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if span == nil {
		return ctx
	}
	return context.WithValue(ctx, spanKey{}, span)
}

// AddSpanEvent records an event on the span in ctx, if there is one.
func AddSpanEvent(ctx context.Context, name string, attrs ...Attribute) {
	if span := SpanFromContext(ctx); span != nil {
		span.AddEvent(name, attrs...)
	}
}

// SetSpanAttributes sets attrs on the span in ctx, if there is one.
func SetSpanAttributes(ctx context.Context, attrs ...Attribute) {
	if span := SpanFromContext(ctx); span != nil {
		span.SetAttributes(attrs...)
	}
}

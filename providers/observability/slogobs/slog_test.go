package slogobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/leofalp/askgo/providers/observability"
)

func newTestObserver(format Format, level slog.Level) (*Observer, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(WithFormat(format), WithLevel(level), WithOutput(&buf)), &buf
}

func TestObserver_TextLogging(t *testing.T) {
	obs, buf := newTestObserver(FormatText, slog.LevelInfo)

	obs.Info(context.Background(), "Answer ready", observability.String(observability.AttrResolverSource, "wikipedia"))

	output := buf.String()
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected INFO level in output, got: %s", output)
	}
	if !strings.Contains(output, "Answer ready resolver.source=wikipedia") {
		t.Errorf("Expected message and attribute in output, got: %s", output)
	}
}

func TestObserver_LevelFiltering(t *testing.T) {
	obs, buf := newTestObserver(FormatText, slog.LevelWarn)

	obs.Debug(context.Background(), "hidden")
	obs.Info(context.Background(), "hidden too")
	obs.Warn(context.Background(), "shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("Expected debug and info records to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("Expected warn record, got: %s", output)
	}
}

func TestObserver_JSON(t *testing.T) {
	obs, buf := newTestObserver(FormatJSON, slog.LevelDebug)

	obs.Error(context.Background(), "request failed", observability.Int(observability.AttrHTTPStatusCode, 503))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if record["msg"] != "request failed" || record["level"] != "ERROR" {
		t.Errorf("unexpected record: %v", record)
	}
	if record[observability.AttrHTTPStatusCode] != float64(503) {
		t.Errorf("status code = %v, want 503", record[observability.AttrHTTPStatusCode])
	}
}

func TestObserver_SpanLifecycle(t *testing.T) {
	obs, buf := newTestObserver(FormatText, slog.LevelDebug)

	ctx, span := obs.StartSpan(context.Background(), observability.SpanStrategy,
		observability.String(observability.AttrResolverStrategy, "google"))
	if observability.SpanFromContext(ctx) != span {
		t.Fatal("StartSpan should attach the span to the returned context")
	}

	span.AddEvent(observability.EventHTTPResponse, observability.Int(observability.AttrHTTPStatusCode, 200))
	span.RecordError(errors.New("boom"))
	span.SetStatus(observability.StatusError, "failed")
	span.End()
	span.End()

	output := buf.String()
	for _, want := range []string{
		"Span started", "resolver.strategy=google",
		"Span event", "event=http.response.received",
		"Span error", "error=boom",
		"Span ended", "status=error", "status_description=failed",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
	if n := strings.Count(output, "Span ended"); n != 1 {
		t.Errorf("End logged %d times, want 1", n)
	}
}

func TestObserver_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := New(WithLogger(logger))

	if obs.Logger() != logger {
		t.Fatal("expected the provided logger to be used")
	}
	obs.Debug(context.Background(), "through custom logger")
	if !strings.Contains(buf.String(), "through custom logger") {
		t.Errorf("expected record in custom logger output, got: %s", buf.String())
	}
}

func TestTextHandler_GroupsAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewTextHandler(&buf, slog.LevelInfo)).WithGroup("http").With("method", "GET")

	logger.Info("call", "url", "https://example.org/a b")

	output := buf.String()
	if !strings.Contains(output, "http.method=GET") {
		t.Errorf("expected grouped attribute, got: %s", output)
	}
	if !strings.Contains(output, `http.url="https://example.org/a b"`) {
		t.Errorf("expected quoted value, got: %s", output)
	}
}

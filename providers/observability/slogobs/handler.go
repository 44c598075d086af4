package slogobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"
)

// NewHandler returns the slog.Handler for format. JSON records use the
// standard library encoder; text records use [TextHandler].
func NewHandler(format Format, level slog.Level, output io.Writer) slog.Handler {
	if output == nil {
		output = os.Stderr
	}
	if format == FormatJSON {
		return slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
	}
	return NewTextHandler(output, level)
}

// TextHandler writes "TIME LEVEL message key=value ..." lines. Attribute keys
// are sorted so output is stable. Levels are colored when the output is a
// terminal.
type TextHandler struct {
	level  slog.Level
	output io.Writer
	colors bool
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

// NewTextHandler creates a TextHandler writing to output.
func NewTextHandler(output io.Writer, level slog.Level) *TextHandler {
	colors := false
	if f, ok := output.(*os.File); ok {
		colors = term.IsTerminal(int(f.Fd()))
	}
	return &TextHandler{
		level:  level,
		output: output,
		colors: colors,
		mu:     &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *TextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a log record.
func (h *TextHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]string, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		fields[attr.Key] = attr.Value.String()
	}
	r.Attrs(func(attr slog.Attr) bool {
		fields[h.prefix+attr.Key] = attr.Value.String()
		return true
	})

	var b strings.Builder
	b.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	b.WriteByte(' ')
	level := r.Level.String()
	if h.colors {
		b.WriteString(colorForLevel(r.Level))
		fmt.Fprintf(&b, "%-5s", level)
		b.WriteString(colorReset)
	} else {
		fmt.Fprintf(&b, "%-5s", level)
	}
	b.WriteByte(' ')
	b.WriteString(r.Message)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(quoteIfNeeded(fields[k]))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.output, b.String())
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *TextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, attr := range attrs {
		attr.Key = h.prefix + attr.Key
		clone.attrs = append(clone.attrs, attr)
	}
	return &clone
}

// WithGroup returns a new handler that prefixes keys with name.
func (h *TextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
)

func colorForLevel(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return colorBlue
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	default:
		return colorRed
	}
}

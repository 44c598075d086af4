// Package slogobs implements observability.Provider on top of log/slog.
//
// Spans are not exported anywhere; their start, events and end are written as
// debug records so that running askgo with ASKGO_LOG_LEVEL=debug shows which
// strategy ran, which HTTP calls it made and how long each step took.
//
// Two output formats are supported: [FormatText], a single line per record
// with sorted key=value attributes, and [FormatJSON], one JSON object per line.
// Logs go to stderr by default so they never mix with answers on stdout.
package slogobs

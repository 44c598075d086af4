// Package parse decodes loosely formatted text into Go values. Input typed by
// people on a command line or produced by a language model is often almost,
// but not quite, JSON: single quotes, unquoted keys, trailing commas. The
// generic [ParseStringAs] decodes strictly first and falls back to repairing
// the text with jsonrepair before giving up with a descriptive error.
package parse

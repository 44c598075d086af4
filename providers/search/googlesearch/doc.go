// Package googlesearch queries the Google Custom Search JSON API.
//
// Only the fields askgo reads are decoded. Non-200 answers are returned as
// [*StatusError] so callers can tell "the service said no" apart from a
// transport failure.
package googlesearch

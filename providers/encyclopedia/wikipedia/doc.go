// Package wikipedia is a small client for the MediaWiki action API that
// returns the lead sentences of the article best matching a free-text query.
//
// [Client.Summary] runs three requests: a search (using the search engine's
// spelling suggestion when it has one), a page lookup that follows redirects
// and detects disambiguation pages, and finally the plain-text extract.
// Disambiguation pages are reported as [*DisambiguationError] listing the
// candidate titles; queries with no matching article fail with
// [ErrPageNotFound].
package wikipedia

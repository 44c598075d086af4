// Package utils provides shared low-level helpers used by the askgo
// providers: synchronous JSON round-trips over HTTP ([DoGetSync],
// [DoPostSync]), the [HTTPError] returned for non-2xx responses, and small
// string helpers for log output.
package utils

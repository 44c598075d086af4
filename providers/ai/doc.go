// Package ai defines the provider-agnostic chat types used by askgo's
// language-model fallback. Provider implementations map [ChatRequest] and
// [ChatResponse] to their own wire format, so the resolver never depends on
// a specific vendor.
package ai

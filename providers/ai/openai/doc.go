// Package openai implements [ai.Provider] for OpenAI-compatible
// /chat/completions endpoints.
//
// The default base URL points at Groq (https://api.groq.com/openai/v1), which
// serves the llama3 models askgo uses to rethink unanswered questions. Any
// other compatible host can be selected with [Provider.WithBaseURL]. The
// provider never reads the environment; keys come from internal/config.
package openai

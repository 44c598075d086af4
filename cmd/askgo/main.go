// Command askgo answers general knowledge questions from Wikipedia, Google
// Custom Search or a Groq-hosted model, and evaluates arithmetic.
//
// Usage:
//
//	askgo "Who wrote Dune?"
//	askgo ask --quiet What is the speed of light
//	askgo calc 2 '**' 10
//	askgo calc --json '{"a": 7, "b": 2, "op": "//"}'
package main

func main() {
	Execute()
}

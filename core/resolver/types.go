package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuestion is returned for a blank question.
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrNoAnswer is returned when every strategy failed.
	ErrNoAnswer = errors.New("no strategy produced an answer")
)

// Source identifies where an answer came from.
type Source int

const (
	SourceWikipedia Source = iota + 1
	SourceGoogle
	SourceModel
)

// String returns the short name used in logs.
func (s Source) String() string {
	switch s {
	case SourceWikipedia:
		return "wikipedia"
	case SourceGoogle:
		return "google"
	case SourceModel:
		return "model"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// Label returns the provenance line printed before an answer. Model answers
// have no label.
func (s Source) Label() string {
	switch s {
	case SourceWikipedia:
		return "Answer from Wikipedia:"
	case SourceGoogle:
		return "Answer from Google:"
	}
	return ""
}

// Outcome is the result of a single strategy. Reason is set only for
// failures.
type Outcome struct {
	Answered bool
	Text     string
	Reason   string
}

// Answered returns a successful outcome carrying text.
func Answered(text string) Outcome {
	return Outcome{Answered: true, Text: text}
}

// Failed returns an outcome telling the resolver to try the next strategy.
func Failed(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Answer is the final result of [Resolver.Resolve].
type Answer struct {
	Source Source
	Text   string
}

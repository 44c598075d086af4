package wikipedia

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPageNotFound is returned when no article matches the query.
var ErrPageNotFound = errors.New("wikipedia: page not found")

// DisambiguationError is returned when the query resolves to a
// disambiguation page. Options holds the titles the page links to.
type DisambiguationError struct {
	Title   string
	Options []string
}

func (e *DisambiguationError) Error() string {
	return fmt.Sprintf("wikipedia: %q may refer to: %s", e.Title, strings.Join(e.Options, ", "))
}

// APIError is an error reported in the body of a MediaWiki response.
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wikipedia api error %s: %s", e.Code, e.Info)
}

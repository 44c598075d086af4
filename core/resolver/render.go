package resolver

import (
	"fmt"
	"io"
)

// Render writes the provenance label on its own line, when the source has
// one, followed by the answer text.
func Render(w io.Writer, answer *Answer) error {
	if label := answer.Source.Label(); label != "" {
		if _, err := fmt.Fprintln(w, label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, answer.Text)
	return err
}

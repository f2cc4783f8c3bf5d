package backend

import (
	"io"

	"github.com/sarchlab/tapec/program"
)

// Text is an artifact holding rendered text.
type Text string

// WriteTo writes the text unchanged.
func (t Text) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(t))
	return int64(n), err
}

// Listing renders the resolved program as a table for inspection.
type Listing struct{}

// Name returns "listing".
func (Listing) Name() string {
	return "listing"
}

// Compile renders p.
func (Listing) Compile(p *program.Resolved) (Text, error) {
	return Text(program.Listing(p) + "\n"), nil
}

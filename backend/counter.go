package backend

import (
	"io"
	"strconv"

	"github.com/sarchlab/tapec/program"
)

// Count is the artifact of the Counter backend.
type Count int

// WriteTo writes the count as a decimal line.
func (c Count) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, strconv.Itoa(int(c))+"\n")
	return int64(n), err
}

// Counter reports how many slots a program has. It is the smallest backend
// that satisfies the contract and is mostly useful for checking a program.
type Counter struct{}

// Name returns "count".
func (Counter) Name() string {
	return "count"
}

// Compile returns the number of slots in p.
func (Counter) Compile(p *program.Resolved) (Count, error) {
	return Count(p.Len()), nil
}

// Package backend defines how a resolved program is translated into an output
// artifact, and provides the backends that ship with tapec.
package backend

import (
	"io"

	"github.com/sarchlab/tapec/program"
)

// An Artifact is the output of a backend. Its format is up to the backend; the
// only requirement is that it can be written to a single sink.
type Artifact interface {
	io.WriterTo
}

// A Backend translates a resolved program into an artifact of type A.
type Backend[A Artifact] interface {
	// Name identifies the backend, e.g. "count".
	Name() string

	// Compile translates p. It is only ever given a program that has passed
	// label resolution.
	Compile(p *program.Resolved) (A, error)
}

type erased[A Artifact] struct {
	b Backend[A]
}

// Erase hides the concrete artifact type of b so that backends producing
// different artifacts can be selected at run time.
func Erase[A Artifact](b Backend[A]) Backend[Artifact] {
	return erased[A]{b: b}
}

func (e erased[A]) Name() string {
	return e.b.Name()
}

func (e erased[A]) Compile(p *program.Resolved) (Artifact, error) {
	a, err := e.b.Compile(p)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Package config provides the default configuration of a tapec compilation.
package config

import (
	"errors"
)

const (
	// OutputFileName is the name of the artifact written into the output
	// directory.
	OutputFileName = "Program.h"

	// DefaultBackend is the backend used when none is named.
	DefaultBackend = "count"
)

var (
	// ErrUsage means the invocation cannot be understood and usage should be
	// shown.
	ErrUsage = errors.New("usage requested")

	ErrMissingSource = errors.New("missing source")
	ErrMissingOutDir = errors.New("missing output directory")
)

// Options collects everything the command line can set.
type Options struct {
	Source  string
	OutDir  string
	Backend string
	Listing bool
	Verbose bool
	Help    bool
}

// Default returns options with the default backend selected.
func Default() Options {
	return Options{Backend: DefaultBackend}
}

// Validate checks that the options describe a compilation.
func (o Options) Validate() error {
	switch {
	case o.Help:
		return ErrUsage
	case o.Source == "" && o.OutDir == "":
		return ErrUsage
	case o.Source == "":
		return ErrMissingSource
	case o.OutDir == "":
		return ErrMissingOutDir
	}

	return nil
}

// BackendName returns the selected backend, falling back to DefaultBackend.
func (o Options) BackendName() string {
	if o.Backend == "" {
		return DefaultBackend
	}

	return o.Backend
}

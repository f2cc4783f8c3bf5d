// Package api defines the driver API that runs a tapec compilation from source
// text to a persisted artifact.
package api

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sarchlab/tapec/backend"
	"github.com/sarchlab/tapec/parser"
	"github.com/sarchlab/tapec/program"
	"github.com/sarchlab/tapec/resolve"
	"github.com/sarchlab/tapec/verify"
)

// Driver runs compilations. Every call is independent of the others; a driver
// holds no state that one compilation leaves for the next.
type Driver interface {
	// Compile parses, resolves and lints src and hands the result to the
	// backend. Nothing reaches the backend unless resolution succeeded.
	Compile(src string) (*Compilation, error)

	// CompileFile reads the source text from path and compiles it.
	CompileFile(path string) (*Compilation, error)

	// Persist writes an artifact into the output directory and returns the
	// path written.
	Persist(a backend.Artifact) (string, error)

	// Run compiles src and persists the artifact.
	Run(src string) (string, error)
}

// Compilation is the outcome of a successful compile.
type Compilation struct {
	Program  *program.Resolved
	Artifact backend.Artifact
	Issues   []verify.Issue
}

// Resolve runs the front end: it parses src and resolves the labels of the
// parsed program.
func Resolve(src string) (*program.Resolved, error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	r, err := resolve.Resolve(prog)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}

	return r, nil
}

// CompileWith runs the front end and then b, keeping the concrete artifact
// type of the backend.
func CompileWith[A backend.Artifact](b backend.Backend[A], src string) (A, error) {
	var zero A

	r, err := Resolve(src)
	if err != nil {
		return zero, err
	}

	a, err := b.Compile(r)
	if err != nil {
		return zero, fmt.Errorf("backend %s: %w", b.Name(), err)
	}

	return a, nil
}

type driverImpl struct {
	backend  backend.Backend[backend.Artifact]
	writer   Writer
	outDir   string
	fileName string
	lint     bool
	logger   *slog.Logger
}

func (d *driverImpl) Compile(src string) (*Compilation, error) {
	trace(d.logger, "compile start", "bytes", len(src))

	r, err := Resolve(src)
	if err != nil {
		d.logger.Debug("front end failed", "error", err)
		return nil, err
	}

	c := &Compilation{Program: r}

	if d.lint {
		c.Issues = verify.RunLint(r)
		for _, issue := range c.Issues {
			d.logger.Warn("lint",
				"type", issue.Type,
				"slot", issue.Index,
				"message", issue.Message)
		}
	}

	a, err := d.backend.Compile(r)
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", d.backend.Name(), err)
	}
	c.Artifact = a

	d.logger.Debug("compiled",
		"backend", d.backend.Name(),
		"slots", r.Len(),
		"labels", r.Symbols().Len())

	return c, nil
}

func (d *driverImpl) CompileFile(path string) (*Compilation, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}

	return d.Compile(src)
}

func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read source %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read source %s: %w", path, err)
	}

	return string(data), nil
}

func (d *driverImpl) Persist(a backend.Artifact) (string, error) {
	path := filepath.Join(d.outDir, d.fileName)

	if err := d.writer.Write(path, a); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", path, err)
	}

	d.logger.Info("artifact written", "path", path)

	return path, nil
}

func (d *driverImpl) Run(src string) (string, error) {
	c, err := d.Compile(src)
	if err != nil {
		return "", err
	}

	return d.Persist(c.Artifact)
}

package api

import (
	"log/slog"
	"path/filepath"

	"github.com/sarchlab/tapec/backend"
	"github.com/sarchlab/tapec/config"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	backend  backend.Backend[backend.Artifact]
	writer   Writer
	outDir   string
	fileName string
	noLint   bool
	logger   *slog.Logger
}

// WithBackend sets the backend. The counting backend is used if none is set.
func (b DriverBuilder) WithBackend(be backend.Backend[backend.Artifact]) DriverBuilder {
	b.backend = be
	return b
}

// WithWriter sets how artifacts are persisted.
func (b DriverBuilder) WithWriter(w Writer) DriverBuilder {
	b.writer = w
	return b
}

// WithOutputDir sets the directory that receives the artifact.
func (b DriverBuilder) WithOutputDir(dir string) DriverBuilder {
	b.outDir = dir
	return b
}

// WithFileName overrides config.OutputFileName.
func (b DriverBuilder) WithFileName(name string) DriverBuilder {
	b.fileName = name
	return b
}

// WithLint turns the lint stage on or off. It is on by default.
func (b DriverBuilder) WithLint(enabled bool) DriverBuilder {
	b.noLint = !enabled
	return b
}

// WithLogger sets the logger. slog.Default is used if none is set.
func (b DriverBuilder) WithLogger(logger *slog.Logger) DriverBuilder {
	b.logger = logger
	return b
}

func (b DriverBuilder) loggerOrDefault() *slog.Logger {
	if b.logger == nil {
		return slog.Default()
	}

	return b.logger
}

// outputDir returns the configured output directory, "." if none is set.
func (b DriverBuilder) outputDir() string {
	if b.outDir == "" {
		return "."
	}

	return filepath.Clean(b.outDir)
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	d := &driverImpl{
		backend:  b.backend,
		writer:   b.writer,
		outDir:   b.outputDir(),
		fileName: b.fileName,
		lint:     !b.noLint,
		logger:   b.loggerOrDefault().With("driver", name),
	}

	if d.backend == nil {
		d.backend = backend.Erase[backend.Count](backend.Counter{})
	}

	if d.writer == nil {
		d.writer = FileWriter{}
	}

	if d.fileName == "" {
		d.fileName = config.OutputFileName
	}

	return d
}

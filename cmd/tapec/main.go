// Command tapec compiles tape notation source into an artifact file.
//
//	tapec -s 'a: + jmp a, b - b: .' -o build
//
// writes build/Program.h using the selected backend.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/tapec/api"
	"github.com/sarchlab/tapec/backend"
	"github.com/sarchlab/tapec/config"
	"github.com/sarchlab/tapec/program"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	atexit.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newRootCommand(opts *config.Options, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tapec -s <code> -o <dir>",
		Short: "Compile tape notation into " + config.OutputFileName,
		Long: `tapec parses tape notation source, checks that every label is declared
once and every jump target exists, and writes the backend's artifact to
<dir>/` + config.OutputFileName + `.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrUsage, err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.Source, "src", "s", "", "inline source code")
	flags.StringVarP(&opts.OutDir, "out", "o", "", "directory receiving "+config.OutputFileName)
	flags.StringVarP(&opts.Backend, "backend", "b", opts.Backend, "backend producing the artifact")
	flags.BoolVarP(&opts.Listing, "listing", "l", false, "print the resolved program")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log each compilation stage")
	flags.BoolVarP(&opts.Help, "help", "h", false, "print usage")

	return cmd
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts := config.Default()
	cmd := newRootCommand(&opts, stdout, stderr)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if err := opts.Validate(); err != nil {
			return err
		}

		return compile(opts, stdout, stderr)
	}

	cmd.SetArgs(args)
	err := cmd.Execute()

	// cobra answers --help itself without calling RunE.
	if err == nil && opts.Help {
		err = config.ErrUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrUsage):
		if err != config.ErrUsage {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		if !opts.Help {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return exitUsage
	case errors.Is(err, config.ErrMissingSource), errors.Is(err, config.ErrMissingOutDir):
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
}

func compile(opts config.Options, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	be, err := backend.NewRegistry().Lookup(opts.BackendName())
	if err != nil {
		return err
	}

	driver := api.DriverBuilder{}.
		WithBackend(be).
		WithOutputDir(opts.OutDir).
		WithLogger(logger).
		Build("tapec")

	c, err := driver.Compile(opts.Source)
	if err != nil {
		return err
	}

	if opts.Listing {
		fmt.Fprintln(stdout, program.Listing(c.Program))
	}

	path, err := driver.Persist(c.Artifact)
	if err != nil {
		return err
	}

	logger.Debug("done", "path", path)

	return nil
}

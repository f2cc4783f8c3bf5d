package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/tapec/api"
	"github.com/sarchlab/tapec/backend"
	"github.com/sarchlab/tapec/program"
	"github.com/sarchlab/tapec/verify"
)

//go:embed invert.tape
var invert string

//go:embed echo.tape
var echo string

//go:embed mark.tape
var mark string

func main() {
	outRoot, err := os.MkdirTemp("", "tapec-samples")
	if err != nil {
		panic(err)
	}
	atexit.Register(func() { os.RemoveAll(outRoot) })

	units := []api.Unit{
		{Name: "invert", Source: invert},
		{Name: "echo", Source: echo},
		{Name: "mark", Source: mark},
	}

	for i := range units {
		units[i].OutDir = filepath.Join(outRoot, units[i].Name)
		if err := os.MkdirAll(units[i].OutDir, 0o755); err != nil {
			panic(err)
		}
	}

	builder := api.DriverBuilder{}.
		WithBackend(backend.Erase[backend.Text](backend.Listing{})).
		WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	failed := false
	for _, res := range api.Batch(context.Background(), builder, units, 2) {
		if res.Err != nil {
			fmt.Printf("%s (%s): %v\n", res.Unit.Name, res.ID, res.Err)
			failed = true
			continue
		}

		fmt.Printf("%s (%s) -> %s\n", res.Unit.Name, res.ID, res.Path)
	}

	r, err := api.Resolve(invert)
	if err != nil {
		panic(err)
	}
	fmt.Println(program.Listing(r))
	verify.GenerateReport(r).WriteReport(os.Stdout)

	if failed {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// Command tapelint resolves tape notation files and reports lint issues.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/tapec/api"
	"github.com/sarchlab/tapec/verify"
)

func main() {
	atexit.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		reportPath string
		strict     bool
		code       int
	)

	cmd := &cobra.Command{
		Use:           "tapelint [flags] file...",
		Short:         "Check tape notation files for likely mistakes",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, files []string) error {
			for _, path := range files {
				n, err := lintFile(path, reportPath, stdout)
				if err != nil {
					fmt.Fprintf(stderr, "%s: %v\n", path, err)
					code = 1
					continue
				}

				if n > 0 && strict {
					code = 1
				}
			}

			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&reportPath, "report", "r", "", "also save the report of the last file to this path")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when lint issues are found")
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	return code
}

func lintFile(path, reportPath string, w io.Writer) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	r, err := api.Resolve(string(src))
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "%s\n", path)

	report := verify.GenerateReport(r)
	report.WriteReport(w)

	if reportPath != "" {
		if err := report.SaveReportToFile(reportPath); err != nil {
			return 0, err
		}
	}

	return len(report.Issues), nil
}

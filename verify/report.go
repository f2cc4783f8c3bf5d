package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarchlab/tapec/program"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	SlotCount      int
	LabelCount     int
	Issues         []Issue
	UnusedLabels   []Issue
	Unreachable    []Issue
	TrivialLoops   []Issue
	ResolvedLabels map[program.LabelName]int
}

// GenerateReport runs the lint checks and groups the results by type.
func GenerateReport(r *program.Resolved) *VerificationReport {
	report := &VerificationReport{
		SlotCount:      r.Len(),
		LabelCount:     r.Symbols().Len(),
		ResolvedLabels: r.Symbols().Entries(),
	}

	report.Issues = RunLint(r)

	for _, issue := range report.Issues {
		switch issue.Type {
		case IssueUnusedLabel:
			report.UnusedLabels = append(report.UnusedLabels, issue)
		case IssueUnreachable:
			report.Unreachable = append(report.Unreachable, issue)
		case IssueTrivialLoop:
			report.TrivialLoops = append(report.TrivialLoops, issue)
		}
	}

	return report
}

// Clean reports whether no issue was found.
func (r *VerificationReport) Clean() bool {
	return len(r.Issues) == 0
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "TAPE PROGRAM VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nResolved %d slots, %d labels\n", r.SlotCount, r.LabelCount)

	if r.Clean() {
		fmt.Fprintln(w, "No lint issues found")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "Found %d lint issues:\n", len(r.Issues))

	groups := []struct {
		title  string
		issues []Issue
	}{
		{"TRIVIAL LOOPS", r.TrivialLoops},
		{"UNREACHABLE SLOTS", r.Unreachable},
		{"UNUSED LABELS", r.UnusedLabels},
	}

	for _, g := range groups {
		if len(g.issues) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s (%d):\n", g.title, len(g.issues))
		fmt.Fprintln(w, dash)
		for _, issue := range g.issues {
			fmt.Fprintf(w, "  [slot %d] %s\n", issue.Index, issue.Message)
		}
	}

	fmt.Fprintln(w)
}

// SaveReportToFile saves the report to a file.
func (r *VerificationReport) SaveReportToFile(filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", filename, err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report file %s: %w", filename, cerr)
		}
	}()

	r.WriteReport(file)

	return nil
}

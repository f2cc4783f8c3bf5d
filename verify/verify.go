// Package verify provides static checks over resolved tape programs.
//
// Resolution already guarantees that a program is well formed: labels are
// unique and every jump target exists. The checks here look for programs that
// are well formed but probably not what the author meant. None of them stop a
// compilation; callers decide whether to log, report or reject.
//
// # Checks
//
//   - UNUSED_LABEL: a label that no jump references.
//   - UNREACHABLE: a slot that no control path from slot 0 reaches.
//   - TRIVIAL_LOOP: a jump whose both targets lead straight back to the jump
//     through nothing but labels, so the machine spins without touching the
//     tape.
//
// # Usage Example
//
//	r, err := resolve.Resolve(prog)
//	if err != nil {
//	    return err
//	}
//
//	report := verify.GenerateReport(r)
//	if !report.Clean() {
//	    report.WriteReport(os.Stderr)
//	}
package verify

// IssueType categorizes lint issues
type IssueType string

const (
	IssueUnusedLabel IssueType = "UNUSED_LABEL"
	IssueUnreachable IssueType = "UNREACHABLE"
	IssueTrivialLoop IssueType = "TRIVIAL_LOOP"
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType              // Check that produced the issue
	Index   int                    // Slot index
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}

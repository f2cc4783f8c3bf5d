package resolve

import (
	"errors"
	"fmt"

	"github.com/sarchlab/tapec/program"
)

var (
	ErrDuplicateLabel     = errors.New("duplicate label")
	ErrUnknownTarget      = errors.New("unknown jump target")
	ErrInvalidInstruction = errors.New("invalid instruction")
)

// DuplicateLabelError reports a label declared more than once.
type DuplicateLabelError struct {
	Name   program.LabelName
	First  int
	Second int
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("duplicate label %q at slot %d (first declared at slot %d)",
		e.Name, e.Second, e.First)
}

func (e *DuplicateLabelError) Unwrap() error {
	return ErrDuplicateLabel
}

// UnknownTargetError reports a jump to a label that is never declared.
type UnknownTargetError struct {
	Index int
	Name  program.LabelName
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("jump at slot %d targets unknown label %q", e.Index, e.Name)
}

func (e *UnknownTargetError) Unwrap() error {
	return ErrUnknownTarget
}

// InvalidInstructionError reports an instruction that the parser could never
// have produced, such as a Seek of zero cells.
type InvalidInstructionError struct {
	Index  int
	Reason string
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction at slot %d: %s", e.Index, e.Reason)
}

func (e *InvalidInstructionError) Unwrap() error {
	return ErrInvalidInstruction
}

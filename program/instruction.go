package program

import (
	"fmt"
	"strings"
	"unicode"
)

// Instruction is one slot of a tape program. The set of variants is closed:
// Write, Seek, IO, Label, Jump and Debug.
type Instruction interface {
	fmt.Stringer
	isInstruction()
}

// WriteMode selects whether a Write sets or clears the bit under the head.
type WriteMode int

const (
	Set WriteMode = iota
	Unset
)

// SeekDirection is the direction the head moves in.
type SeekDirection int

const (
	Left SeekDirection = iota
	Right
)

// IODirection selects between reading a bit into the current cell and
// emitting the current cell.
type IODirection int

const (
	In IODirection = iota
	Out
)

// Write sets or clears the tape bit at the head.
type Write struct {
	Mode WriteMode
}

// Seek moves the head Count cells. Count is at least 1.
type Seek struct {
	Direction SeekDirection
	Count     int
}

// IO reads one bit into the current cell or emits the current cell's bit.
type IO struct {
	Direction IODirection
}

// Label declares a jump target at its own slot. Executing it falls through.
type Label struct {
	Name LabelName
}

// Jump branches on the bit under the head: OnSet is taken when the bit is 1,
// OnUnset when it is 0.
type Jump struct {
	OnSet   Target
	OnUnset Target
}

// Debug is a no-op introspection marker.
type Debug struct{}

func (Write) isInstruction() {}
func (Seek) isInstruction()  {}
func (IO) isInstruction()    {}
func (Label) isInstruction() {}
func (Jump) isInstruction()  {}
func (Debug) isInstruction() {}

func (w Write) String() string {
	switch w.Mode {
	case Set:
		return "+"
	case Unset:
		return "-"
	default:
		panic(fmt.Sprintf("invalid write mode %d", w.Mode))
	}
}

func (s Seek) String() string {
	switch s.Direction {
	case Left:
		return strings.Repeat("<", s.Count)
	case Right:
		return strings.Repeat(">", s.Count)
	default:
		panic(fmt.Sprintf("invalid seek direction %d", s.Direction))
	}
}

func (io IO) String() string {
	switch io.Direction {
	case In:
		return ","
	case Out:
		return "."
	default:
		panic(fmt.Sprintf("invalid io direction %d", io.Direction))
	}
}

func (l Label) String() string {
	return string(l.Name) + ":"
}

func (j Jump) String() string {
	if j.OnUnset.IsNext() {
		return "jmp " + j.OnSet.String()
	}

	return "jmp " + j.OnSet.String() + ", " + j.OnUnset.String()
}

func (Debug) String() string {
	return "!"
}

// Name returns the short variant name of an instruction.
func Name(inst Instruction) string {
	switch inst.(type) {
	case Write:
		return "Write"
	case Seek:
		return "Seek"
	case IO:
		return "IO"
	case Label:
		return "Label"
	case Jump:
		return "Jump"
	case Debug:
		return "Debug"
	default:
		panic(fmt.Sprintf("unknown instruction %T", inst))
	}
}

// LabelName names a jump target.
type LabelName string

// ValidLabelName reports whether s is a non-empty run of letters, digits,
// apostrophes and underscores.
func ValidLabelName(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !IsLabelRune(r) {
			return false
		}
	}

	return true
}

// IsLabelRune reports whether r may appear in a label name.
func IsLabelRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '_'
}

// TargetKind distinguishes the fall-through sentinel from a named target.
type TargetKind int

const (
	TargetNext TargetKind = iota
	TargetNamed
)

// Target is one of the two destinations of a Jump. The zero value is the
// "next instruction" sentinel.
type Target struct {
	Kind  TargetKind
	Label LabelName
}

// NextInstruction returns the sentinel target that resolves to the slot
// after the jump.
func NextInstruction() Target {
	return Target{Kind: TargetNext}
}

// Named returns a target pointing at the label called name.
func Named(name LabelName) Target {
	return Target{Kind: TargetNamed, Label: name}
}

// IsNext reports whether t is the fall-through sentinel.
func (t Target) IsNext() bool {
	return t.Kind == TargetNext
}

func (t Target) String() string {
	switch t.Kind {
	case TargetNext:
		return "<next>"
	case TargetNamed:
		return string(t.Label)
	default:
		panic(fmt.Sprintf("invalid target kind %d", t.Kind))
	}
}

package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// Syntax means a production started at the failure offset but could not
	// be completed. A bare identifier such as "foo" in "+ foo -" starts a
	// label declaration, so a missing ':' is a Syntax error.
	Syntax ErrorKind = iota
	// LeftoverInput means no production can start with the character at the
	// failure offset.
	LeftoverInput
)

func (k ErrorKind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case LeftoverInput:
		return "leftover input"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var (
	ErrSyntax        = errors.New("syntax error")
	ErrLeftoverInput = errors.New("leftover input")
)

// Error is returned by Parse.
type Error struct {
	Kind ErrorKind

	// Message describes what was expected. Empty for LeftoverInput.
	Message string

	// Remainder is the unparsed input starting at Offset.
	Remainder string

	Offset int
	Line   int
	Column int
}

func (e *Error) Error() string {
	switch e.Kind {
	case LeftoverInput:
		return fmt.Sprintf("%d:%d: leftover input %q", e.Line, e.Column, e.Remainder)
	default:
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
}

// Is lets errors.Is match ErrSyntax and ErrLeftoverInput.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrSyntax:
		return e.Kind == Syntax
	case ErrLeftoverInput:
		return e.Kind == LeftoverInput
	default:
		return false
	}
}

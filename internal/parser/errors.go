package parser

import (
	"errors"
	"fmt"
)

// ErrSyntax is returned for statements that cannot be parsed.
var ErrSyntax = errors.New("syntax error")

// ParseError reports where parsing failed.
type ParseError struct {
	Position int // byte offset into the statement
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Position, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

func errorf(pos int, format string, args ...any) *ParseError {
	return &ParseError{Position: pos, Msg: fmt.Sprintf(format, args...)}
}

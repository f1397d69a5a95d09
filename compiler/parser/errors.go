// File: parser/errors.go
package parser

import (
	"errors"
	"fmt"

	"github.com/dangerclosesec/cscm/compiler/lexer"
)

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota + 1
	UnexpectedEOF
	UnparsablePrimary
	UnknownToken
)

// Sentinels for errors.Is matching against an *Error of the same kind
var (
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrUnexpectedEOF     = errors.New("unexpected end of input")
	ErrUnparsablePrimary = errors.New("unparsable primary expression")
	ErrUnknownToken      = errors.New("unknown token classification")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnexpectedToken:
		return ErrUnexpectedToken
	case UnexpectedEOF:
		return ErrUnexpectedEOF
	case UnparsablePrimary:
		return ErrUnparsablePrimary
	case UnknownToken:
		return ErrUnknownToken
	}
	return nil
}

// Code is a stable machine-readable name for the kind
func (k ErrorKind) Code() string {
	switch k {
	case UnexpectedToken:
		return "unexpected_token"
	case UnexpectedEOF:
		return "unexpected_eof"
	case UnparsablePrimary:
		return "unparsable_primary"
	case UnknownToken:
		return "unknown_token"
	}
	return "unknown"
}

func (k ErrorKind) String() string { return k.Code() }

// Error is the single failure a parse run can produce. The first error
// aborts the run; there is no recovery. Expected is zero when input ended
// where any primary expression could start.
type Error struct {
	Kind     ErrorKind
	Expected lexer.Kind // zero unless Kind is UnexpectedToken or UnexpectedEOF
	Found    lexer.Kind
	Pos      lexer.Location
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedToken, UnexpectedEOF:
		if e.Expected == 0 {
			return fmt.Sprintf("%s - expected expression but found %s instead", e.Pos, e.Found)
		}
		return fmt.Sprintf("%s - expected token %s but found %s instead", e.Pos, e.Expected, e.Found)
	case UnparsablePrimary:
		return fmt.Sprintf("%s - cannot parse tokens of type %s", e.Pos, e.Found)
	default:
		return fmt.Sprintf("%s - unknown token %s", e.Pos, e.Found)
	}
}

// Is reports whether target is the sentinel for e's kind
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func unexpected(expected lexer.Kind, found TokenInfo) *Error {
	kind := UnexpectedToken
	if found.IsEOF() {
		kind = UnexpectedEOF
	}
	return &Error{Kind: kind, Expected: expected, Found: found.Kind, Pos: found.Pos}
}

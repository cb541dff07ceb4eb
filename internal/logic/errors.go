package logic

import (
	"errors"
	"fmt"
)

// ErrorKind classifies compile and evaluation failures.
type ErrorKind string

const (
	ErrInvalidCharacter        ErrorKind = "invalid character"
	ErrUnexpectedNot           ErrorKind = "unexpected negation"
	ErrUnsupportedNegatedGroup ErrorKind = "negation of a parenthesized group is not supported"
	ErrInvalidExpression       ErrorKind = "invalid expression"
	ErrUnmatchedParenthesis    ErrorKind = "unmatched parenthesis"
	ErrStackUnderflow          ErrorKind = "stack underflow"
	ErrMalformedExpression     ErrorKind = "malformed expression"
	ErrUndefinedVariable       ErrorKind = "undefined variable"
	ErrUnexpectedToken         ErrorKind = "unexpected token in compiled expression"
)

func (e ErrorKind) Error() string {
	return string(e)
}

// Error is a positioned failure. Pos is the byte offset in the source text,
// or -1 when the failure has no source position (evaluation errors).
type Error struct {
	Kind   ErrorKind
	Pos    int
	Char   byte
	Detail string
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Char != 0 {
		msg = fmt.Sprintf("%s %q", msg, e.Char)
	}
	if e.Pos >= 0 {
		msg = fmt.Sprintf("%s at position %d", msg, e.Pos)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind ErrorKind, pos int) *Error {
	return &Error{Kind: kind, Pos: pos}
}

func newEvalError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Pos: -1, Detail: detail}
}

// Name returns the identifier of the kind, e.g. "UnmatchedParenthesis".
func (e ErrorKind) Name() string {
	switch e {
	case ErrInvalidCharacter:
		return "InvalidCharacter"
	case ErrUnexpectedNot:
		return "UnexpectedNot"
	case ErrUnsupportedNegatedGroup:
		return "UnsupportedNegatedGroup"
	case ErrInvalidExpression:
		return "InvalidExpression"
	case ErrUnmatchedParenthesis:
		return "UnmatchedParenthesis"
	case ErrStackUnderflow:
		return "StackUnderflow"
	case ErrMalformedExpression:
		return "MalformedExpression"
	case ErrUndefinedVariable:
		return "UndefinedVariable"
	case ErrUnexpectedToken:
		return "UnexpectedToken"
	default:
		return "Unknown"
	}
}

// KindOf reports the ErrorKind in err's chain, if any.
func KindOf(err error) (ErrorKind, bool) {
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return "", false
}

var errorKinds = []ErrorKind{
	ErrInvalidCharacter,
	ErrUnexpectedNot,
	ErrUnsupportedNegatedGroup,
	ErrInvalidExpression,
	ErrUnmatchedParenthesis,
	ErrStackUnderflow,
	ErrMalformedExpression,
	ErrUndefinedVariable,
	ErrUnexpectedToken,
}

// ParseErrorKind looks a kind up by its Name.
func ParseErrorKind(name string) (ErrorKind, bool) {
	for _, k := range errorKinds {
		if k.Name() == name {
			return k, true
		}
	}
	return "", false
}

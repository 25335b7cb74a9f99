package golisp

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput       = errors.New("empty input")
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	ErrTrailingInput    = errors.New("trailing input after expression")
)

// LexError reports a token the tokenizer cannot make sense of: either an
// unrecognized character, or a numeric literal that does not fit in an int64.
type LexError struct {
	Pos  int
	Text string
	Err  error
}

func (e *LexError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid number %q (%d): %v", e.Text, e.Pos, e.Err)
	}
	return fmt.Sprintf("invalid character %q (%d)", e.Text, e.Pos)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

type EvalErrorKind int

const (
	UndefinedSymbol EvalErrorKind = iota
	NotCallable
	ArityError
	TypeError
	UnknownOperator
	EmptyList
	Overflow
)

// EvalError is any failure during evaluation. Name carries the symbol or
// operator involved when there is one.
type EvalError struct {
	Kind EvalErrorKind
	Name string
	Msg  string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case UndefinedSymbol:
		return "undefined symbol: " + e.Name
	case NotCallable:
		return "illegal function call: " + e.Msg
	case ArityError:
		return "invalid arguments for " + e.Name
	case TypeError:
		return e.Name + ": " + e.Msg
	case UnknownOperator:
		return "invalid op: " + e.Name
	case EmptyList:
		return e.Name + ": empty list"
	case Overflow:
		return e.Name + ": integer overflow"
	}
	return "eval error"
}

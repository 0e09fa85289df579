package vm

import (
	"fmt"
	"strconv"
)

type ErrorKind byte

const (
	KindNotInScope ErrorKind = iota
	KindMismatchedType
	KindEmptyStack
	KindUnsupportedInstruction
	KindDivisionByZero
	KindStackOverflow
	KindCallStackUnderflow
	KindInvalidTarget
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotInScope:
		return "not in scope"
	case KindMismatchedType:
		return "mismatched type"
	case KindEmptyStack:
		return "empty stack"
	case KindUnsupportedInstruction:
		return "unsupported instruction"
	case KindDivisionByZero:
		return "division by zero"
	case KindStackOverflow:
		return "stack overflow"
	case KindCallStackUnderflow:
		return "call stack underflow"
	case KindInvalidTarget:
		return "invalid jump target"
	}
	return fmt.Sprintf("error kind %d", byte(k))
}

// Error is the single error type produced by the engine. Detail holds the
// offending name, expected type, opcode or jump target, depending on Kind.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	switch e.Kind {
	case KindMismatchedType:
		return fmt.Sprintf("%s: expected %s", e.Kind, e.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
}

// Is matches on kind only, so errors.Is(err, ErrNotInScope) holds for every
// unbound name.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNotInScope             = &Error{Kind: KindNotInScope}
	ErrMismatchedType         = &Error{Kind: KindMismatchedType}
	ErrEmptyStack             = &Error{Kind: KindEmptyStack}
	ErrUnsupportedInstruction = &Error{Kind: KindUnsupportedInstruction}
	ErrDivisionByZero         = &Error{Kind: KindDivisionByZero}
	ErrStackOverflow          = &Error{Kind: KindStackOverflow}
	ErrCallStackUnderflow     = &Error{Kind: KindCallStackUnderflow}
	ErrInvalidTarget          = &Error{Kind: KindInvalidTarget}
)

func NotInScope(name string) *Error {
	return &Error{Kind: KindNotInScope, Detail: name}
}

func MismatchedType(expected string) *Error {
	return &Error{Kind: KindMismatchedType, Detail: expected}
}

func UnsupportedInstruction(op Opcode) *Error {
	return &Error{Kind: KindUnsupportedInstruction, Detail: op.String()}
}

func InvalidTarget(target int) *Error {
	return &Error{Kind: KindInvalidTarget, Detail: strconv.Itoa(target)}
}

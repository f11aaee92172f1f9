package types

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

type ErrorTag string

const (
	EmptyContainerErrorTag  ErrorTag = "EmptyContainerError"
	IndexErrorTag           ErrorTag = "IndexError"
	OperandMismatchErrorTag ErrorTag = "OperandMismatchError"
	StackUnderflowErrorTag  ErrorTag = "StackUnderflowError"
	SyntaxErrorTag          ErrorTag = "SyntaxError"
	TypeErrorTag            ErrorTag = "TypeError"
	UnmatchedParenErrorTag  ErrorTag = "UnmatchedParenError"
	ValueErrorTag           ErrorTag = "ValueError"
	ZeroDivisionErrorTag    ErrorTag = "ZeroDivisionError"
)

type Exception interface {
	error
	Exception() any
}

type Error struct {
	Tag   ErrorTag
	Err   error
	Extra map[string]any
}

var _ Exception = (*Error)(nil)

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Tag)
	}

	var b strings.Builder
	b.WriteString(string(e.Tag))
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Exception() any {
	tags := []any{e.Tag}
	for err := e.Err; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok {
			tags = append(tags, e.Tag)
		}
	}

	o := map[string]any{
		"tags":    tags,
		"message": Message(e),
	}
	if len(e.Extra) != 0 {
		o = lo.Assign(o, e.Extra)
	}
	return o
}

// HasTag reports whether any *Error in the chain of err carries tag.
func HasTag(err error, tag ErrorTag) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok && e.Tag == tag {
			return true
		}
	}
	return false
}

// Message returns the text shown to users: the innermost message without tags.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	for errors.As(err, &e) {
		if e.Err == nil {
			return string(e.Tag)
		}
		err = e.Err
	}
	return err.Error()
}

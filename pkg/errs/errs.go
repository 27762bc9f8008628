package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an operation outcome so the transport layer can pick a
// response without inspecting message text.
type Kind int

const (
	Validation Kind = iota
	NotFound
	Permission
	Consistency
	Store
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Permission:
		return "permission"
	case Consistency:
		return "consistency"
	case Store:
		return "store"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap marks err as a store-layer failure. Store errors are retryable from
// the caller's point of view.
func Wrap(msg string, err error) *Error {
	return &Error{Kind: Store, Msg: msg, Err: err}
}

func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Message returns the human-readable part of err, or a generic retry hint
// for store failures.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Kind == Store {
			return "temporary storage failure, please retry"
		}
		return e.Msg
	}
	return "internal error"
}

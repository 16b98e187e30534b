package store

import (
	"errors"
	"fmt"
)

// Kind classifies a store error for the HTTP boundary.
type Kind int

const (
	KindUnexpected Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
)

// Error carries the taxonomy spec'd for the service: BadRequest for malformed
// input, NotFound for unresolvable natural-key lookups, Conflict for double
// payment. Everything else propagates unwrapped.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func BadRequestf(format string, args ...interface{}) error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the taxonomy kind of err, KindUnexpected for anything that
// is not a *Error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnexpected
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

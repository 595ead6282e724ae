// Package apperr carries the service-tier error kinds that adapters map to transport codes.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindInvalid
	KindForbidden
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	case KindForbidden:
		return "forbidden"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// Error is a service error with a client-safe message.
type Error struct {
	kind Kind
	msg  string
}

func New(kind Kind, msg string) *Error { return &Error{kind: kind, msg: msg} }

func NotFound(msg string) *Error        { return New(KindNotFound, msg) }
func Conflict(msg string) *Error        { return New(KindConflict, msg) }
func Invalid(msg string) *Error         { return New(KindInvalid, msg) }
func Forbidden(msg string) *Error       { return New(KindForbidden, msg) }
func Unauthenticated(msg string) *Error { return New(KindUnauthenticated, msg) }

func Forbiddenf(format string, args ...any) *Error {
	return New(KindForbidden, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Kind() Kind    { return e.kind }

type kinded interface{ Kind() Kind }

// KindOf walks the wrap chain for the first error that declares a Kind.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindInternal
}

// Message returns the client-safe text of err, or "" when err carries no kind.
func Message(err error) string {
	var k kinded
	if errors.As(err, &k) {
		return k.(error).Error()
	}
	return ""
}

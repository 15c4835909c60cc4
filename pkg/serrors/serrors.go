// Package serrors defines the semantic error kinds of the referral service and
// a wrapper type that attaches a kind, a public message and a cause to an error.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Every kind knows the HTTP status it maps to.
type Kind interface {
	error
	Status() int
	isKind()
}

type kind struct {
	name   string
	status int
}

func (k kind) Error() string { return k.name }
func (k kind) Status() int   { return k.status }
func (k kind) isKind()       {}

// NewKind creates a kind sentinel. Kinds are comparable and match through
// errors.Is/errors.As on an *Error carrying them.
func NewKind(name string, status int) Kind { return kind{name: name, status: status} }

var (
	// ErrMissingField is returned when a required submission field is absent or empty.
	ErrMissingField = NewKind("MISSING_FIELD", http.StatusBadRequest)
	// ErrInvalidEmailFormat is returned when an email does not look like local@domain.tld.
	ErrInvalidEmailFormat = NewKind("INVALID_EMAIL_FORMAT", http.StatusBadRequest)
	// ErrStoreUnavailable means the referral store could not be reached.
	ErrStoreUnavailable = NewKind("STORE_UNAVAILABLE", http.StatusInternalServerError)
	// ErrStoreConstraintViolation means the store rejected the data (constraint, type mismatch).
	ErrStoreConstraintViolation = NewKind("STORE_CONSTRAINT_VIOLATION", http.StatusInternalServerError)
	// ErrDeliveryFailed means the mail transport rejected or failed to send a message.
	ErrDeliveryFailed = NewKind("DELIVERY_FAILED", http.StatusInternalServerError)
	// ErrUnhandled covers every failure that has no more specific kind.
	ErrUnhandled = NewKind("UNHANDLED_EXCEPTION", http.StatusInternalServerError)
	// ErrRateLimited is returned when a client exceeded its request budget.
	ErrRateLimited = NewKind("RATE_LIMITED", http.StatusTooManyRequests)
)

// Error is a semantic error: a kind, an optional cause and an optional message.
//
// errors.Is and errors.As match both the kind and anything in the cause chain.
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an error of kind k around cause err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds an error that carries nothing but its kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.err != nil && errors.As(e.err, target))
}

// Kind returns the kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message without the cause.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost kind found in err's chain, or ErrUnhandled.
func KindOf(err error) Kind {
	var k Kind
	if err != nil && errors.As(err, &k) {
		return k
	}

	return ErrUnhandled
}

// StatusOf returns the HTTP status associated with err's kind.
func StatusOf(err error) int {
	return KindOf(err).Status()
}

// PublicMessage returns the text a client may see for err. Client errors (4xx)
// expose their own message; everything else is replaced by fallback so
// internal details never leave the process.
func PublicMessage(err error, fallback string) string {
	if StatusOf(err) >= http.StatusInternalServerError {
		return fallback
	}

	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	return fallback
}

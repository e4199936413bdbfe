package apierr

import (
	"errors"
	"fmt"
)

// Kind categorizes client errors.
type Kind string

const (
	// KindValidation marks a local precondition failure. These never reach
	// the network.
	KindValidation Kind = "validation"

	// KindTransport marks network failures, timeouts and malformed
	// responses. Re-invoking the same operation is safe.
	KindTransport Kind = "transport"

	// KindAuth marks rejected credentials (expired token, bad OTP).
	KindAuth Kind = "auth"

	// KindConflict marks server-side conflicts such as a duplicate job
	// application. Must not be retried.
	KindConflict Kind = "conflict"
)

// Error carries the failure kind plus the operation that produced it.
type Error struct {
	Kind    Kind
	Op      string // operation context, e.g. "auth.verify" or "posts.list"
	Message string
	Status  int // HTTP status when the error came off the wire
	wrapped error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.wrapped }

// New builds an Error explicitly.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap attaches a kind and operation to an underlying error. If err is
// already an *Error its kind is preserved and only missing context is
// filled in, so annotating layers never mask the original kind.
func Wrap(err error, kind Kind, op string) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Op == "" {
			ae.Op = op
		}
		return ae
	}
	return &Error{Kind: kind, Op: op, Message: err.Error(), wrapped: err}
}

// WithStatus records the HTTP status the error came with.
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

func classify(kind Kind) func(error) bool {
	return func(err error) bool {
		if err == nil {
			return false
		}
		var ae *Error
		if errors.As(err, &ae) {
			return ae.Kind == kind
		}
		return false
	}
}

// Predicates for common handling patterns.
var (
	IsValidation = classify(KindValidation)
	IsTransport  = classify(KindTransport)
	IsAuth       = classify(KindAuth)
	IsConflict   = classify(KindConflict)
)

package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindInvalidRequest  Kind = "INVALID_REQUEST"
	KindConflict        Kind = "CONFLICT"
	KindExpired         Kind = "EXPIRED"
	KindExternalService Kind = "EXTERNAL_SERVICE"
	KindPersistence     Kind = "PERSISTENCE"
)

// Kind sentinels, matched with errors.Is
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrConflict        = errors.New("conflict")
	ErrExpired         = errors.New("expired")
	ErrExternalService = errors.New("external service error")
	ErrPersistence     = errors.New("persistence error")
)

var sentinels = map[Kind]error{
	KindNotFound:        ErrNotFound,
	KindInvalidRequest:  ErrInvalidRequest,
	KindConflict:        ErrConflict,
	KindExpired:         ErrExpired,
	KindExternalService: ErrExternalService,
	KindPersistence:     ErrPersistence,
}

// Error is the tagged error returned by use cases. Detail carries
// field-level context (violated bound, conflicting item) for clients.
type Error struct {
	Kind    Kind
	Message string
	Detail  map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

func E(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Ef(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithCause keeps the stack of the underlying error.
func (e *Error) WithCause(err error) *Error {
	if err != nil {
		e.cause = WithStack(err)
	}
	return e
}

func (e *Error) WithDetail(key string, value any) *Error {
	if e.Detail == nil {
		e.Detail = map[string]any{}
	}
	e.Detail[key] = value
	return e
}

// KindOf returns the kind of the first tagged error in the chain.
// Untagged errors are reported as persistence failures.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for kind, s := range sentinels {
		if errors.Is(err, s) {
			return kind
		}
	}
	return KindPersistence
}

func DetailOf(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return nil
}

func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

package common

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// ErrorKind classifies a failure so handlers can map it to a transport
// status without string matching.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindConflict
	KindNotFound
	KindUnauthorized
	KindStore
	KindNotifier
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindStore:
		return "store"
	case KindNotifier:
		return "notifier"
	}
	return "unknown"
}

// Error is the taxonomy error carried across service boundaries.
// Validation, conflict, not-found and unauthorized are terminal outcomes of
// a single call; store errors are the only retryable kind, and only on read
// paths.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Unauthorizedf(format string, args ...interface{}) error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// StoreError wraps a backend failure, keeping the cause for %w chains.
func StoreError(msg string, err error) error {
	return &Error{Kind: KindStore, Message: msg, Err: err}
}

func NotifierError(msg string, err error) error {
	return &Error{Kind: KindNotifier, Message: msg, Err: err}
}

func kindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsValidation(err error) bool   { return kindOf(err) == KindValidation }
func IsConflict(err error) bool     { return kindOf(err) == KindConflict }
func IsNotFound(err error) bool     { return kindOf(err) == KindNotFound }
func IsUnauthorized(err error) bool { return kindOf(err) == KindUnauthorized }
func IsStore(err error) bool        { return kindOf(err) == KindStore }

// GRPCCode maps a taxonomy error to the gRPC status code the handlers
// return. Unknown errors surface as Internal.
func GRPCCode(err error) codes.Code {
	switch kindOf(err) {
	case KindValidation:
		return codes.InvalidArgument
	case KindConflict:
		return codes.FailedPrecondition
	case KindNotFound:
		return codes.NotFound
	case KindUnauthorized:
		return codes.PermissionDenied
	case KindStore:
		return codes.Unavailable
	}
	return codes.Internal
}

// HTTPStatus is the gateway-side equivalent of GRPCCode.
func HTTPStatus(err error) int {
	switch kindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusForbidden
	case KindStore:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Package errors provides a structured error type with wrapping, error codes,
// and retry metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode defines the closed set of failure kinds used across the library.
// Values are stable for wire compatibility; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified or foreign errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeValidation is for malformed caller input, never retryable
	ErrorCodeValidation

	// ErrorCodeAuth is for bad or insufficient credentials, never retryable
	ErrorCodeAuth

	// ErrorCodeQuotaExceeded is for a server declared rate limit window,
	// retryable with a precise wait
	ErrorCodeQuotaExceeded

	// ErrorCodeNetwork is for transport or server side failures,
	// retryable only when the condition is plausibly transient
	ErrorCodeNetwork
)

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeAuth:
		return http.StatusUnauthorized
	case ErrorCodeQuotaExceeded:
		return http.StatusTooManyRequests
	case ErrorCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// QuotaMeta carries the server declared quota facts on a QuotaExceeded error
type QuotaMeta struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (for validation); op is optional operation tag
// retryable and retryAfter drive caller retry policy; orig is the wrapped cause
type Error struct {
	orig       error
	msg        string
	code       ErrorCode
	field      string
	op         string
	retryable  bool
	retryAfter time.Duration
	quota      *QuotaMeta
}

// Wire is the JSON-serializable form returned by the API
type Wire struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Field     string    `json:"field,omitempty"`
	Retryable bool      `json:"retryable"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Retryable reports whether the same operation may succeed if reattempted
func (e *Error) Retryable() bool { return e != nil && e.retryable }

// RetryAfter returns the server declared wait before a retry, 0 when none
func (e *Error) RetryAfter() time.Duration {
	if e == nil {
		return 0
	}
	return e.retryAfter
}

// Quota returns the quota facts when present (QuotaExceeded only)
func (e *Error) Quota() (QuotaMeta, bool) {
	if e == nil || e.quota == nil {
		return QuotaMeta{}, false
	}
	return *e.quota, true
}

// ToWire converts an *Error to a Wire payload
func (e *Error) ToWire() Wire {
	return Wire{Code: e.code, Message: e.msg, Field: e.field, Retryable: e.retryable}
}

// WireFrom converts any error into a Wire payload with best-effort mapping
// If err is nil, returns the zero-value Wire (no error)
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// Retryable reports the stored retry flag, false for foreign errors.
// Auth and Validation errors are never constructed retryable
func Retryable(err error) bool {
	if e, ok := As(err); ok {
		return e.retryable
	}
	return false
}

// RetryAfterOf returns the declared wait and whether one is present
func RetryAfterOf(err error) (time.Duration, bool) {
	if e, ok := As(err); ok && e.retryAfter > 0 {
		return e.retryAfter, true
	}
	return 0, false
}

// QuotaOf returns quota facts from any error when present
func QuotaOf(err error) (QuotaMeta, bool) {
	if e, ok := As(err); ok {
		return e.Quota()
	}
	return QuotaMeta{}, false
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message, not retryable
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message, not retryable
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message, not retryable
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message, not retryable
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// Sugar

// Validationf returns a validation error, never retryable
func Validationf(format string, a ...any) error {
	return &Error{code: ErrorCodeValidation, msg: fmt.Sprintf(format, a...)}
}

// Authf returns an auth error, never retryable regardless of the status that produced it
func Authf(format string, a ...any) error {
	return &Error{code: ErrorCodeAuth, msg: fmt.Sprintf(format, a...)}
}

// Networkf returns a network error with an explicit retryable flag
func Networkf(retryable bool, format string, a ...any) error {
	return &Error{code: ErrorCodeNetwork, retryable: retryable, msg: fmt.Sprintf(format, a...)}
}

// NetworkWrap wraps a transport cause as a network error with an explicit retryable flag
func NetworkWrap(orig error, retryable bool, format string, a ...any) error {
	return &Error{code: ErrorCodeNetwork, retryable: retryable, msg: fmt.Sprintf(format, a...), orig: orig}
}

// QuotaExceeded returns a quota error carrying the server declared window.
// retryAfter is resetAt-now floored at zero; retryable by definition
func QuotaExceeded(limit, remaining int, resetAt, now time.Time) error {
	wait := resetAt.Sub(now)
	if wait < 0 {
		wait = 0
	}
	return &Error{
		code:       ErrorCodeQuotaExceeded,
		retryable:  true,
		retryAfter: wait,
		quota:      &QuotaMeta{Limit: limit, Remaining: remaining, ResetAt: resetAt},
		msg:        fmt.Sprintf("rate limit exhausted, resets at %s", resetAt.UTC().Format(time.RFC3339)),
	}
}

// HTTP bundles status + wire in one shot (nice for handlers)
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

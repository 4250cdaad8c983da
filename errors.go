package apiclient

//
// Typed errors and error conversion
//

import (
	"errors"
	"fmt"
)

// ErrMalformedRequestURL indicates that [Client.NewRequest] could not
// assemble the request URL from the base URL and the endpoint path.
var ErrMalformedRequestURL = errors.New("apiclient: malformed request URL")

// ErrCannotSerializeBody indicates that [Request.SetBody] could not
// serialize the given value to JSON.
var ErrCannotSerializeBody = errors.New("apiclient: cannot serialize request body")

// ErrHTTPRequestFailed indicates that the server returned >= 400. The
// response body, if readable, is still handed to the [Transformer], so
// a decoded error body and this error may be delivered together.
type ErrHTTPRequestFailed struct {
	// StatusCode is the status code that failed.
	StatusCode int
}

// Error implements error.
func (err *ErrHTTPRequestFailed) Error() string {
	return fmt.Sprintf("apiclient: http request failed: %d", err.StatusCode)
}

// ErrorConverter wraps a transport-level failure into a typed domain
// error. A [Client] invokes its converter with the transport error of
// every completed dispatch, including a nil one.
type ErrorConverter interface {
	// Convert converts the given transport error, which may be nil,
	// into a domain error or nil.
	Convert(cause error) error
}

// DomainError is the builtin domain error produced by wrapping a
// transport-level failure. A nil Cause is the "unknown" variant, used
// when a failure occurred but no underlying cause is available.
type DomainError struct {
	// Cause is the OPTIONAL underlying transport error.
	Cause error
}

// NewDomainError constructs a [*DomainError] with the given cause. A
// nil cause yields the unknown variant.
func NewDomainError(cause error) *DomainError {
	return &DomainError{Cause: cause}
}

// Error implements error.
func (err *DomainError) Error() string {
	if err.Cause == nil {
		return "apiclient: unknown failure"
	}
	return fmt.Sprintf("apiclient: %s", err.Cause.Error())
}

// Unwrap returns the underlying cause, possibly nil.
func (err *DomainError) Unwrap() error {
	return err.Cause
}

// StdErrorConverter is the builtin [ErrorConverter] used when the
// [Client] does not specify one.
type StdErrorConverter struct{}

var _ ErrorConverter = &StdErrorConverter{}

// Convert implements [ErrorConverter]. A nil cause yields nil, so a
// successful dispatch carries a nil error slot; any other cause yields
// the wrapped [DomainError] variant.
func (*StdErrorConverter) Convert(cause error) error {
	if cause == nil {
		return nil
	}
	return NewDomainError(cause)
}

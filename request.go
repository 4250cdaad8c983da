package apiclient

//
// Chainable request descriptor
//

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Method is an HTTP request method.
type Method string

// All the methods that a [Request] may use.
const (
	MethodGet     = Method("GET")
	MethodPost    = Method("POST")
	MethodDelete  = Method("DELETE")
	MethodPut     = Method("PUT")
	MethodUpdate  = Method("UPDATE")
	MethodOptions = Method("OPTIONS")
	MethodHead    = Method("HEAD")
	MethodTrace   = Method("TRACE")
	MethodConnect = Method("CONNECT")
	MethodPatch   = Method("PATCH")
)

// Request is a mutable descriptor for a single HTTP request. Construct
// using [Client.NewRequest], which returns a Request using [MethodGet]
// with no headers and no body.
//
// Each mutator returns the same Request, so calls can be chained. The
// builder performs no validation of the method or URL; a malformed base
// URL fails earlier, inside [Client.NewRequest].
//
// A Request is exclusively owned by the calling code from creation until
// passed to [Client.Fetch] and MUST NOT be mutated or reused afterwards.
type Request struct {
	// URL is the request URL.
	URL *url.URL

	// Method is the request method.
	Method Method

	// Header contains the request headers. Field names are
	// case-insensitive and the last write wins.
	Header http.Header

	// Body is the raw request body, with nil meaning no body.
	Body []byte

	// err is the sticky error recorded by a failed SetBody.
	err error
}

// newRequest constructs a [Request] with the given URL.
func newRequest(URL *url.URL) *Request {
	return &Request{
		URL:    URL,
		Method: MethodGet,
		Header: http.Header{},
		Body:   nil,
		err:    nil,
	}
}

// SetMethod sets the request method and returns the same [Request].
func (r *Request) SetMethod(method Method) *Request {
	r.Method = method
	return r
}

// SetHeader sets the given header field, overwriting any previous value
// for the same field name, and returns the same [Request].
func (r *Request) SetHeader(key, value string) *Request {
	r.Header.Set(key, value)
	return r
}

// SetAuthorization sets the Authorization header and returns the
// same [Request].
func (r *Request) SetAuthorization(token string) *Request {
	return r.SetHeader("Authorization", token)
}

// SetBody sets the request body and returns the same [Request]. A []byte
// value becomes the body verbatim, nil clears any previously set body,
// and any other value (a single structure or a sequence) is serialized
// using JSON. Setting a body always discards the previous one, so at
// most one body value is active.
//
// When JSON serialization fails the body is left unset and the error is
// recorded on the Request: [Request.Err] returns it synchronously and
// [Client.Fetch] delivers it through the usual error-conversion path.
func (r *Request) SetBody(body any) *Request {
	r.Body, r.err = nil, nil
	switch value := body.(type) {
	case nil:
		// nothing to do
	case []byte:
		r.Body = value
	default:
		data, err := json.Marshal(value)
		if err != nil {
			r.err = fmt.Errorf("%w: %s", ErrCannotSerializeBody, err.Error())
			return r
		}
		r.Body = data
	}
	return r
}

// Err returns the error recorded by a previously failed [Request.SetBody],
// or nil when the Request is well formed.
func (r *Request) Err() error {
	return r.err
}

// Package apiclient implements a small declarative layer for constructing
// and dispatching HTTP requests against a single API surface.
//
// The building blocks are three capability contracts: an [Endpoint] maps a
// logical API operation to a URL path fragment, a [Transformer] decodes raw
// response bytes into a typed value, and an [ErrorConverter] wraps
// transport-level failures into typed domain errors.
//
// A [Client] binds a base URL, a transformer, an error converter, and an
// optional request-customization hook. Use [Client.NewRequest] to turn an
// [Endpoint] plus query parameters into a chainable [Request], and
// [Client.Fetch] to dispatch it and receive the decoded value and the
// domain error through a completion callback.
//
// The value and error channels of a completion are computed independently
// and both delivered together: an HTTP error status carrying a parseable
// body yields a decoded value and a non-nil error at the same time.
package apiclient

// Endpoint maps a logical API operation to the URL path fragment to
// append to the [Client] base URL.
//
// Values implementing Endpoint should be immutable: a Client resolves
// an Endpoint when creating a request and does not retain it.
type Endpoint interface {
	// Path returns the URL path fragment for the operation.
	Path() string
}

// StaticEndpoint is an [Endpoint] with a fixed path fragment.
type StaticEndpoint string

var _ Endpoint = StaticEndpoint("")

// Path implements [Endpoint].
func (e StaticEndpoint) Path() string {
	return string(e)
}

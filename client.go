package apiclient

//
// Per-API configuration and request assembly
//

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ooni/apiclient/model"
)

// DefaultMaxBodySize is the default value for the maximum response
// body size a [Client] is willing to read.
const DefaultMaxBodySize = 1 << 22

// Client describes a single API surface: a base URL plus the transform,
// error-conversion, and request-customization behavior shared by all the
// operations of that API. Output is the type produced by decoding
// response bodies.
//
// The zero value is invalid. Fill all the fields marked as MANDATORY. A
// Client is immutable after initialization and is safe to share across
// arbitrarily many concurrent requests without locking.
type Client[Output any] struct {
	// BaseURL is the MANDATORY base URL of the API.
	BaseURL string

	// Customize is the OPTIONAL hook invoked by [Client.NewRequest] with
	// each new [Request] before returning it to the caller, so an API can
	// inject fixed headers (API keys, content types, app identifiers)
	// before the caller's own chained mutators run. The hook must mutate
	// the Request in place and must not replace it.
	Customize func(req *Request)

	// ErrorConverter is the OPTIONAL [ErrorConverter] wrapping transport
	// failures. A nil value implies [StdErrorConverter].
	ErrorConverter ErrorConverter

	// Host is the OPTIONAL host header override (e.g., for fronting).
	Host string

	// HTTPClient is the MANDATORY HTTP client to use.
	HTTPClient model.HTTPClient

	// LogBody OPTIONALLY enables logging request and response bodies.
	LogBody bool

	// Logger is the OPTIONAL logger. A nil value implies
	// [model.DiscardLogger].
	Logger model.Logger

	// MaxBodySize is the OPTIONAL maximum response body size. A
	// nonpositive value implies [DefaultMaxBodySize].
	MaxBodySize int64

	// Transformer is the MANDATORY [Transformer] decoding response
	// bodies into Output values.
	Transformer Transformer[Output]

	// UserAgent is the OPTIONAL User-Agent header value, added unless
	// the request already carries one.
	UserAgent string
}

// joinURLPath appends resourcePath to urlPath.
func joinURLPath(urlPath, resourcePath string) string {
	if resourcePath == "" {
		if urlPath == "" {
			return "/"
		}
		return urlPath
	}
	if !strings.HasSuffix(urlPath, "/") {
		urlPath += "/"
	}
	resourcePath = strings.TrimPrefix(resourcePath, "/")
	return urlPath + resourcePath
}

// NewRequest creates a [Request] for the given endpoint and query.
//
// The endpoint path is appended to the base URL path as a path component,
// avoiding double slashes and without re-encoding the base URL. A
// non-empty query is percent-encoded and appended; an empty or nil query
// yields a URL with no query string at all. The returned Request uses
// [MethodGet] with no headers and no body, already customized by the
// [Client.Customize] hook when one is set.
//
// On failure this function returns a nil Request and an error matching
// [ErrMalformedRequestURL] according to errors.Is.
func (c *Client[Output]) NewRequest(endpoint Endpoint, query url.Values) (*Request, error) {
	URL, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedRequestURL, err.Error())
	}
	URL.Path = joinURLPath(URL.Path, endpoint.Path())
	if len(query) > 0 {
		URL.RawQuery = query.Encode()
	} else {
		URL.RawQuery = "" // as documented an empty query yields no query string
	}
	request := newRequest(URL)
	if c.Customize != nil {
		c.Customize(request)
	}
	return request, nil
}

// logger returns the configured logger or [model.DiscardLogger].
func (c *Client[Output]) logger() model.Logger {
	return model.ValidLoggerOrDefault(c.Logger)
}

// maxBodySize returns the configured max body size or [DefaultMaxBodySize].
func (c *Client[Output]) maxBodySize() int64 {
	if c.MaxBodySize > 0 {
		return c.MaxBodySize
	}
	return DefaultMaxBodySize
}

// errorConverter returns the configured converter or [StdErrorConverter].
func (c *Client[Output]) errorConverter() ErrorConverter {
	if c.ErrorConverter != nil {
		return c.ErrorConverter
	}
	return &StdErrorConverter{}
}

package model

//
// HTTP transport boundary
//

import "net/http"

// HTTPClient is the interface of a generic HTTP client. The stdlib's
// http.Client implements this interface. Consumers of this package
// typically provide a custom HTTPClient with additional functionality
// (e.g., proxying, custom TLS policies).
type HTTPClient interface {
	// Do should work like http.Client.Do.
	Do(req *http.Request) (*http.Response, error)
}

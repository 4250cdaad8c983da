package apiclient

//
// Dispatching requests
//

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/ooni/apiclient/optional"
)

// Task is the handle for an in-flight [Client.Fetch]. Use [Task.Cancel]
// to interrupt the underlying transport call and [Task.Done] to wait for
// the completion callback to have returned.
type Task struct {
	// cancel cancels the context owned by this task.
	cancel context.CancelFunc

	// done is closed after the completion callback returned.
	done chan any
}

// Cancel interrupts the in-flight request. The completion callback still
// fires exactly once, carrying a cancellation-classified error converted
// through the usual [ErrorConverter] path. Canceling an already-resolved
// task does nothing. Cancel is idempotent and safe to call concurrently.
func (t *Task) Cancel() {
	t.cancel()
}

// Done returns a channel closed after the completion callback returned.
func (t *Task) Done() <-chan any {
	return t.done
}

// Fetch is [Client.FetchContext] using the background context.
func (c *Client[Output]) Fetch(
	req *Request, completion func(value optional.Value[Output], err error)) *Task {
	return c.FetchContext(context.Background(), req, completion)
}

// FetchContext dispatches req over the transport exactly once and
// returns immediately a [*Task] handle for the in-flight operation. The
// completion callback is invoked exactly once, on a background
// goroutine, when the transport call resolves; callers needing results
// on a specific goroutine must hand them off themselves.
//
// The two completion arguments are computed independently and delivered
// together: the raw response body (possibly absent) goes through the
// [Transformer] while the transport error (possibly nil) goes through
// the [ErrorConverter]. Hence a decoded value and a non-nil error can
// coexist, e.g., for an HTTP error status carrying a parseable body.
//
// There is no ordering guarantee between the completions of two
// concurrent FetchContext calls. The req MUST NOT be mutated or reused
// after this call.
func (c *Client[Output]) FetchContext(ctx context.Context,
	req *Request, completion func(value optional.Value[Output], err error)) *Task {
	ctx, cancel := context.WithCancel(ctx)
	task := &Task{
		cancel: cancel,
		done:   make(chan any),
	}
	go func() {
		defer close(task.done)
		defer cancel()
		data, err := c.do(ctx, req)
		completion(c.Transformer.Transform(data), c.errorConverter().Convert(err))
	}()
	return task
}

// do performs the HTTP round trip and returns the raw response body.
//
// When the server returns a status >= 400 this function returns both the
// response body and an [ErrHTTPRequestFailed], so that error bodies
// remain available for decoding.
func (c *Client[Output]) do(ctx context.Context, req *Request) ([]byte, error) {
	if err := req.Err(); err != nil {
		return nil, err
	}
	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	response, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	reader := io.LimitReader(response.Body, c.maxBodySize())
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	c.logger().Debugf("apiclient: response body length: %d bytes", len(data))
	if c.LogBody {
		c.logger().Debugf("apiclient: response body: %s", string(data))
	}
	if response.StatusCode >= 400 {
		return data, &ErrHTTPRequestFailed{response.StatusCode}
	}
	return data, nil
}

// newHTTPRequest converts a [Request] into an http.Request bound to ctx.
func (c *Client[Output]) newHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	var reqBody io.Reader
	if len(req.Body) > 0 {
		reqBody = bytes.NewReader(req.Body)
		c.logger().Debugf("apiclient: request body length: %d", len(req.Body))
		if c.LogBody {
			c.logger().Debugf("apiclient: request body: %s", string(req.Body))
		}
	}
	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL.String(), reqBody)
	if err != nil {
		return nil, err
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	httpReq.Host = c.Host // allow fronting
	if c.UserAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}
	return httpReq, nil
}

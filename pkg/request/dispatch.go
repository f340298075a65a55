package request

import (
	"context"
	"io"
	"net/http"
)

// Dispatcher sends a built request. Implementations resolve the endpoint
// against their base URL, add authentication and return an error for
// statuses other than 2xx and 304.
type Dispatcher interface {
	Do(ctx context.Context, method string, spec *Spec) (*http.Response, error)
}

// Call dispatches spec once and normalizes the response.
func Call(ctx context.Context, d Dispatcher, method string, spec *Spec) (*Response, error) {
	resp, err := d.Do(ctx, method, spec)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()
	return Normalize(resp)
}

// Future is the pending result of an asynchronous call.
type Future struct {
	done chan struct{}
	resp *Response
	err  error
}

// Go runs fn on its own goroutine and returns a Future for its result.
func Go(fn func() (*Response, error)) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.resp, f.err = fn()
	}()
	return f
}

// Failed returns an already completed Future carrying err.
func Failed(err error) *Future {
	f := &Future{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Done is closed once the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx is done. Cancelling
// ctx here does not abort the request; cancel the context passed to the
// facade for that.
func (f *Future) Await(ctx context.Context) (*Response, error) {
	select {
	case <-f.done:
		return f.resp, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

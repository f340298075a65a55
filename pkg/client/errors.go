package client

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cli/go-gh/v2/pkg/api"
)

var (
	// ErrSessionNotOpen is returned when a request is made outside Open/Close.
	ErrSessionNotOpen = errors.New("session not open; call Open or use With before making requests")

	// ErrSessionAlreadyOpen is returned when Open is called on an open client.
	ErrSessionAlreadyOpen = errors.New("session already open")
)

// HTTPStatusError is returned for any response status other than 2xx and
// 304. It is never retried.
type HTTPStatusError struct {
	StatusCode int
	Method     string
	URL        string
	Body       []byte

	// Err holds GitHub's error message and field errors parsed from Body.
	Err *api.HTTPError
}

func (e *HTTPStatusError) Error() string {
	if e.Err != nil && e.Err.Message != "" {
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Err.Message)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
}

func (e *HTTPStatusError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// IsStatus reports whether err is an HTTPStatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

func newHTTPStatusError(resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read error response body: %w", err)
	}
	statusErr := &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Body:       body,
	}
	if resp.Request == nil || resp.Request.URL == nil {
		return statusErr
	}
	statusErr.Method = resp.Request.Method
	statusErr.URL = resp.Request.URL.String()

	// HandleHTTPError consumes the body it parses.
	resp.Body = io.NopCloser(bytes.NewReader(body))
	var apiErr *api.HTTPError
	if errors.As(api.HandleHTTPError(resp), &apiErr) {
		statusErr.Err = apiErr
	}
	return statusErr
}

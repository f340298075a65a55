package request

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// emptyObject is the data of every response that is not a 200, including a
// 304 from a list endpoint. Callers expecting an array must check the status.
var emptyObject = json.RawMessage(`{}`)

// Response is the normalized result of a single request.
type Response struct {
	Data         json.RawMessage
	StatusCode   int
	ETag         *string
	LastModified *string
}

// Metadata is the status and validator part of a Response.
type Metadata struct {
	StatusCode   int     `json:"status_code"`
	ETag         *string `json:"etag"`
	LastModified *string `json:"last_modified"`
}

// Metadata returns the response without its data.
func (r *Response) Metadata() Metadata {
	return Metadata{
		StatusCode:   r.StatusCode,
		ETag:         r.ETag,
		LastModified: r.LastModified,
	}
}

// NotModified reports whether the server answered a conditional request
// with 304.
func (r *Response) NotModified() bool {
	return r.StatusCode == http.StatusNotModified
}

// Decode unmarshals the response data into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// Normalize converts an HTTP response into a Response. The body is parsed
// only for status 200; any other status yields an empty object. The caller
// keeps ownership of resp.Body.
func Normalize(resp *http.Response) (*Response, error) {
	out := &Response{
		Data:         emptyObject,
		StatusCode:   resp.StatusCode,
		ETag:         headerValue(resp.Header, "ETag"),
		LastModified: headerValue(resp.Header, "Last-Modified"),
	}
	if resp.StatusCode != http.StatusOK {
		return out, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: status %d, %d bytes", ErrMalformedResponseBody, resp.StatusCode, len(body))
	}
	out.Data = json.RawMessage(body)
	return out, nil
}

func headerValue(h http.Header, key string) *string {
	values := h.Values(key)
	if len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

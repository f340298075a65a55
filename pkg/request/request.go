// Package request holds the pieces shared by every resource: the request
// spec produced by builders, header defaults, query encoding, the response
// normalizer and the dispatch contract used by both client variants.
package request

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
)

const (
	// AcceptHeader is sent with every request unless the caller overrides it.
	AcceptHeader = "application/vnd.github+json"
	// APIVersion pins the GitHub REST API version.
	APIVersion = "2022-11-28"
)

// Spec is a fully built request: an endpoint relative to the base URL,
// query parameters or a JSON payload, and headers.
type Spec struct {
	Endpoint string
	Query    url.Values
	Payload  any
	Headers  http.Header
}

// Ptr returns a pointer to v. Option structs use pointers for values that
// may be absent.
func Ptr[T any](v T) *T {
	return &v
}

// DefaultHeaders returns the headers every builder starts from.
func DefaultHeaders() http.Header {
	h := make(http.Header)
	h.Set("Accept", AcceptHeader)
	h.Set("X-GitHub-Api-Version", APIVersion)
	return h
}

// MergeHeaders layers extra on top of the default headers. Caller headers
// win on conflict.
func MergeHeaders(extra http.Header) http.Header {
	h := DefaultHeaders()
	for k, values := range extra {
		h.Del(k)
		for _, v := range values {
			h.Add(k, v)
		}
	}
	return h
}

// Conditional carries validators from a previous response. They are sent as
// If-None-Match / If-Modified-Since headers, never as payload or query.
type Conditional struct {
	ETag         *string
	LastModified *string
}

// Apply sets the conditional request headers present on c.
func (c Conditional) Apply(h http.Header) {
	if c.ETag != nil {
		h.Set("If-None-Match", *c.ETag)
	}
	if c.LastModified != nil {
		h.Set("If-Modified-Since", *c.LastModified)
	}
}

// EncodeQuery encodes an option struct tagged with `url:"..."` into query
// values. Nil pointers are omitted.
func EncodeQuery(opts any) (url.Values, error) {
	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query parameters: %w", err)
	}
	return v, nil
}

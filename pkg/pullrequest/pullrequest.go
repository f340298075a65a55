// Package pullrequest builds and sends GitHub pull request requests.
package pullrequest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ryo246912/ghnova/pkg/request"
)

// ListOptions filters a pull request listing. Every field is optional and
// omitted from the query when nil.
type ListOptions struct {
	State     *string `url:"state,omitempty"`
	Head      *string `url:"head,omitempty"`
	Base      *string `url:"base,omitempty"`
	Sort      *string `url:"sort,omitempty"`
	Direction *string `url:"direction,omitempty"`
	PerPage   *int    `url:"per_page,omitempty"`
	Page      *int    `url:"page,omitempty"`

	request.Conditional `url:"-"`
	Headers             http.Header `url:"-"`
}

// ListSpec builds the request for listing pull requests in a repository.
func ListSpec(owner, repository string, opts ListOptions) (*request.Spec, error) {
	query, err := request.EncodeQuery(opts)
	if err != nil {
		return nil, err
	}
	headers := request.MergeHeaders(opts.Headers)
	opts.Conditional.Apply(headers)
	return &request.Spec{
		Endpoint: fmt.Sprintf("/repos/%s/%s/pulls", owner, repository),
		Query:    query,
		Headers:  headers,
	}, nil
}

// PullRequest sends pull request requests and blocks until each completes.
type PullRequest struct {
	d request.Dispatcher
}

// New returns a PullRequest bound to d.
func New(d request.Dispatcher) *PullRequest {
	return &PullRequest{d: d}
}

// List lists pull requests. A 304 yields an empty object, not an empty list.
func (p *PullRequest) List(ctx context.Context, owner, repository string, opts ListOptions) (*request.Response, error) {
	spec, err := ListSpec(owner, repository, opts)
	if err != nil {
		return nil, err
	}
	return request.Call(ctx, p.d, http.MethodGet, spec)
}

// Async mirrors PullRequest but returns a Future.
type Async struct {
	sync *PullRequest
}

// NewAsync returns an Async bound to d.
func NewAsync(d request.Dispatcher) *Async {
	return &Async{sync: New(d)}
}

// List is the asynchronous form of PullRequest.List.
func (a *Async) List(ctx context.Context, owner, repository string, opts ListOptions) *request.Future {
	return request.Go(func() (*request.Response, error) {
		return a.sync.List(ctx, owner, repository, opts)
	})
}

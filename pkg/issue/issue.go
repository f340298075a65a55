package issue

import (
	"context"
	"net/http"

	"github.com/ryo246912/ghnova/pkg/request"
)

// Issue sends issue requests and blocks until each completes.
type Issue struct {
	d request.Dispatcher
}

// New returns an Issue bound to d.
func New(d request.Dispatcher) *Issue {
	return &Issue{d: d}
}

// List lists issues for the authenticated user, an organization or a
// repository. A 304 yields an empty object, not an empty list.
func (i *Issue) List(ctx context.Context, opts ListOptions) (*request.Response, error) {
	spec, _, err := ListSpec(opts)
	if err != nil {
		return nil, err
	}
	return request.Call(ctx, i.d, http.MethodGet, spec)
}

// Create opens a new issue.
func (i *Issue) Create(ctx context.Context, owner, repository string, opts CreateOptions) (*request.Response, error) {
	return request.Call(ctx, i.d, http.MethodPost, CreateSpec(owner, repository, opts))
}

// Get fetches a single issue.
func (i *Issue) Get(ctx context.Context, owner, repository string, number int, opts GetOptions) (*request.Response, error) {
	return request.Call(ctx, i.d, http.MethodGet, GetSpec(owner, repository, number, opts))
}

// Update edits an issue.
func (i *Issue) Update(ctx context.Context, owner, repository string, number int, opts UpdateOptions) (*request.Response, error) {
	return request.Call(ctx, i.d, http.MethodPatch, UpdateSpec(owner, repository, number, opts))
}

// Lock locks an issue's conversation.
func (i *Issue) Lock(ctx context.Context, owner, repository string, number int, opts LockOptions) (*request.Response, error) {
	return request.Call(ctx, i.d, http.MethodPut, LockSpec(owner, repository, number, opts))
}

// Unlock unlocks an issue's conversation.
func (i *Issue) Unlock(ctx context.Context, owner, repository string, number int, opts UnlockOptions) (*request.Response, error) {
	return request.Call(ctx, i.d, http.MethodDelete, UnlockSpec(owner, repository, number, opts))
}

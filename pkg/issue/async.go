package issue

import (
	"context"

	"github.com/ryo246912/ghnova/pkg/request"
)

// Async mirrors Issue but returns immediately with a Future. Parameter
// errors are reported through the Future without issuing a request.
type Async struct {
	sync *Issue
}

// NewAsync returns an Async bound to d.
func NewAsync(d request.Dispatcher) *Async {
	return &Async{sync: New(d)}
}

// List is the asynchronous form of Issue.List.
func (a *Async) List(ctx context.Context, opts ListOptions) *request.Future {
	if _, _, err := ListSpec(opts); err != nil {
		return request.Failed(err)
	}
	return request.Go(func() (*request.Response, error) {
		return a.sync.List(ctx, opts)
	})
}

// Create is the asynchronous form of Issue.Create.
func (a *Async) Create(ctx context.Context, owner, repository string, opts CreateOptions) *request.Future {
	return request.Go(func() (*request.Response, error) {
		return a.sync.Create(ctx, owner, repository, opts)
	})
}

// Get is the asynchronous form of Issue.Get.
func (a *Async) Get(ctx context.Context, owner, repository string, number int, opts GetOptions) *request.Future {
	return request.Go(func() (*request.Response, error) {
		return a.sync.Get(ctx, owner, repository, number, opts)
	})
}

// Update is the asynchronous form of Issue.Update.
func (a *Async) Update(ctx context.Context, owner, repository string, number int, opts UpdateOptions) *request.Future {
	return request.Go(func() (*request.Response, error) {
		return a.sync.Update(ctx, owner, repository, number, opts)
	})
}

// Lock is the asynchronous form of Issue.Lock.
func (a *Async) Lock(ctx context.Context, owner, repository string, number int, opts LockOptions) *request.Future {
	return request.Go(func() (*request.Response, error) {
		return a.sync.Lock(ctx, owner, repository, number, opts)
	})
}

// Unlock is the asynchronous form of Issue.Unlock.
func (a *Async) Unlock(ctx context.Context, owner, repository string, number int, opts UnlockOptions) *request.Future {
	return request.Go(func() (*request.Response, error) {
		return a.sync.Unlock(ctx, owner, repository, number, opts)
	})
}

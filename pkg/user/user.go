// Package user builds and sends GitHub user requests.
package user

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ryo246912/ghnova/pkg/request"
)

// GetOptions identifies the user to fetch. With neither Username nor
// AccountID set, the authenticated user is returned.
type GetOptions struct {
	Username  *string
	AccountID *int64

	request.Conditional
	Headers http.Header
}

// UpdateOptions holds the profile fields of the authenticated user to
// change.
type UpdateOptions struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Blog            *string `json:"blog,omitempty"`
	TwitterUsername *string `json:"twitter_username,omitempty"`
	Company         *string `json:"company,omitempty"`
	Location        *string `json:"location,omitempty"`
	Hireable        *bool   `json:"hireable,omitempty"`
	Bio             *string `json:"bio,omitempty"`

	Headers http.Header `json:"-"`
}

// ContextualInformationOptions narrows the hovercard to a subject such as
// a repository or an issue.
type ContextualInformationOptions struct {
	SubjectType *string `url:"subject_type,omitempty"`
	SubjectID   *string `url:"subject_id,omitempty"`

	Headers http.Header `url:"-"`
}

// Endpoint returns the path for a user lookup.
func Endpoint(username *string, accountID *int64) (string, error) {
	switch {
	case username == nil && accountID == nil:
		return "/user", nil
	case username != nil && accountID == nil:
		return fmt.Sprintf("/users/%s", *username), nil
	case username == nil && accountID != nil:
		return fmt.Sprintf("/user/%d", *accountID), nil
	default:
		return "", fmt.Errorf("%w: specify either username or account_id, not both", request.ErrConflictingParameters)
	}
}

// GetSpec builds the request for fetching a user.
func GetSpec(opts GetOptions) (*request.Spec, error) {
	endpoint, err := Endpoint(opts.Username, opts.AccountID)
	if err != nil {
		return nil, err
	}
	headers := request.MergeHeaders(opts.Headers)
	opts.Conditional.Apply(headers)
	return &request.Spec{Endpoint: endpoint, Headers: headers}, nil
}

// UpdateSpec builds the request for updating the authenticated user.
func UpdateSpec(opts UpdateOptions) *request.Spec {
	return &request.Spec{
		Endpoint: "/user",
		Payload:  opts,
		Headers:  request.MergeHeaders(opts.Headers),
	}
}

// ContextualInformationSpec builds the hovercard request for username.
func ContextualInformationSpec(username string, opts ContextualInformationOptions) (*request.Spec, error) {
	query, err := request.EncodeQuery(opts)
	if err != nil {
		return nil, err
	}
	return &request.Spec{
		Endpoint: fmt.Sprintf("/users/%s/hovercard", username),
		Query:    query,
		Headers:  request.MergeHeaders(opts.Headers),
	}, nil
}

// User sends user requests and blocks until each completes.
type User struct {
	d request.Dispatcher
}

// New returns a User bound to d.
func New(d request.Dispatcher) *User {
	return &User{d: d}
}

// Get fetches a user.
func (u *User) Get(ctx context.Context, opts GetOptions) (*request.Response, error) {
	spec, err := GetSpec(opts)
	if err != nil {
		return nil, err
	}
	return request.Call(ctx, u.d, http.MethodGet, spec)
}

// Update edits the authenticated user's profile.
func (u *User) Update(ctx context.Context, opts UpdateOptions) (*request.Response, error) {
	return request.Call(ctx, u.d, http.MethodPatch, UpdateSpec(opts))
}

// ContextualInformation fetches the hovercard of username.
func (u *User) ContextualInformation(ctx context.Context, username string, opts ContextualInformationOptions) (*request.Response, error) {
	spec, err := ContextualInformationSpec(username, opts)
	if err != nil {
		return nil, err
	}
	return request.Call(ctx, u.d, http.MethodGet, spec)
}

// Async mirrors User but returns a Future.
type Async struct {
	sync *User
}

// NewAsync returns an Async bound to d.
func NewAsync(d request.Dispatcher) *Async {
	return &Async{sync: New(d)}
}

// Get is the asynchronous form of User.Get.
func (a *Async) Get(ctx context.Context, opts GetOptions) *request.Future {
	if _, err := GetSpec(opts); err != nil {
		return request.Failed(err)
	}
	return request.Go(func() (*request.Response, error) {
		return a.sync.Get(ctx, opts)
	})
}

// Update is the asynchronous form of User.Update.
func (a *Async) Update(ctx context.Context, opts UpdateOptions) *request.Future {
	return request.Go(func() (*request.Response, error) {
		return a.sync.Update(ctx, opts)
	})
}

// ContextualInformation is the asynchronous form of
// User.ContextualInformation.
func (a *Async) ContextualInformation(ctx context.Context, username string, opts ContextualInformationOptions) *request.Future {
	return request.Go(func() (*request.Response, error) {
		return a.sync.ContextualInformation(ctx, username, opts)
	})
}

// Package client provides the GitHub REST clients that own the HTTP
// session and hand out the resource facades.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ryo246912/ghnova/pkg/issue"
	"github.com/ryo246912/ghnova/pkg/pullrequest"
	"github.com/ryo246912/ghnova/pkg/request"
	"github.com/ryo246912/ghnova/pkg/user"
)

// GitHub is the blocking client. Requests are only accepted between Open
// and Close.
type GitHub struct {
	session *session
}

// New returns an unopened GitHub client.
func New(config Config) *GitHub {
	return &GitHub{session: newSession(config)}
}

// Open allocates the HTTP session. It fails with ErrSessionAlreadyOpen if
// the client is already open.
func (g *GitHub) Open() error {
	return g.session.open()
}

// Close releases the HTTP session. Closing an unopened client is a no-op.
func (g *GitHub) Close() error {
	return g.session.close()
}

// With opens the client, runs fn and closes the client on every path.
func (g *GitHub) With(fn func(*GitHub) error) error {
	if err := g.Open(); err != nil {
		return err
	}
	err := fn(g)
	return errors.Join(err, g.Close())
}

// Do implements request.Dispatcher.
func (g *GitHub) Do(ctx context.Context, method string, spec *request.Spec) (*http.Response, error) {
	return g.session.do(ctx, method, spec)
}

// Issue returns the issue facade bound to this client.
func (g *GitHub) Issue() *issue.Issue {
	return issue.New(g)
}

// PullRequest returns the pull request facade bound to this client.
func (g *GitHub) PullRequest() *pullrequest.PullRequest {
	return pullrequest.New(g)
}

// User returns the user facade bound to this client.
func (g *GitHub) User() *user.User {
	return user.New(g)
}

func (g *GitHub) String() string {
	return fmt.Sprintf("<GitHub base_url=%s>", g.session.baseURL)
}

// AsyncGitHub is the non-blocking client. Its facades return a
// request.Future for every call.
type AsyncGitHub struct {
	session *session
}

// NewAsync returns an unopened AsyncGitHub client.
func NewAsync(config Config) *AsyncGitHub {
	return &AsyncGitHub{session: newSession(config)}
}

// Open allocates the HTTP session.
func (g *AsyncGitHub) Open() error {
	return g.session.open()
}

// Close releases the HTTP session.
func (g *AsyncGitHub) Close() error {
	return g.session.close()
}

// With opens the client, runs fn and closes the client on every path.
// fn should await its futures before returning.
func (g *AsyncGitHub) With(fn func(*AsyncGitHub) error) error {
	if err := g.Open(); err != nil {
		return err
	}
	err := fn(g)
	return errors.Join(err, g.Close())
}

// Do implements request.Dispatcher.
func (g *AsyncGitHub) Do(ctx context.Context, method string, spec *request.Spec) (*http.Response, error) {
	return g.session.do(ctx, method, spec)
}

// Issue returns the asynchronous issue facade bound to this client.
func (g *AsyncGitHub) Issue() *issue.Async {
	return issue.NewAsync(g)
}

// PullRequest returns the asynchronous pull request facade bound to this
// client.
func (g *AsyncGitHub) PullRequest() *pullrequest.Async {
	return pullrequest.NewAsync(g)
}

// User returns the asynchronous user facade bound to this client.
func (g *AsyncGitHub) User() *user.Async {
	return user.NewAsync(g)
}

func (g *AsyncGitHub) String() string {
	return fmt.Sprintf("<AsyncGitHub base_url=%s>", g.session.baseURL)
}

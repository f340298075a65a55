// Package issue builds and sends GitHub issue requests.
package issue

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v63/github"
	"github.com/ryo246912/ghnova/pkg/request"
)

const (
	defaultPerPage = 30
	defaultPage    = 1
)

// Scope names which issue listing endpoint a request targets.
type Scope string

const (
	ScopeAuthenticatedUser Scope = "authenticated user issues"
	ScopeOrganization      Scope = "organization issues"
	ScopeRepository        Scope = "repository issues"
)

// ListOptions selects the listing endpoint and filters it. Owner,
// Organization and Repository choose the endpoint; everything else becomes
// a query parameter. PerPage and Page default to 30 and 1.
type ListOptions struct {
	Owner        *string `url:"-"`
	Organization *string `url:"-"`
	Repository   *string `url:"-"`

	FilterBy  *string    `url:"filter,omitempty"`
	State     *string    `url:"state,omitempty"`
	Labels    []string   `url:"labels,comma,omitempty"`
	Sort      *string    `url:"sort,omitempty"`
	Direction *string    `url:"direction,omitempty"`
	Since     *time.Time `url:"since,omitempty"`
	Collab    *bool      `url:"collab,omitempty"`
	Orgs      *bool      `url:"orgs,omitempty"`
	Owned     *bool      `url:"owned,omitempty"`
	Pulls     *bool      `url:"pulls,omitempty"`
	IssueType *string    `url:"type,omitempty"`
	Milestone *string    `url:"milestone,omitempty"`
	Assignee  *string    `url:"assignee,omitempty"`
	Creator   *string    `url:"creator,omitempty"`
	Mentioned *string    `url:"mentioned,omitempty"`
	PerPage   *int       `url:"per_page,omitempty"`
	Page      *int       `url:"page,omitempty"`

	request.Conditional `url:"-"`
	Headers             http.Header `url:"-"`
}

// CreateOptions is the payload of a new issue. Labels and Assignees are
// omitted when nil; a pointer to an empty slice is sent as [].
type CreateOptions struct {
	Title     string    `json:"title"`
	Body      *string   `json:"body,omitempty"`
	Assignee  *string   `json:"assignee,omitempty"`
	Milestone *string   `json:"milestone,omitempty"`
	Labels    *[]string `json:"labels,omitempty"`
	Assignees *[]string `json:"assignees,omitempty"`
	IssueType *string   `json:"type,omitempty"`

	Headers http.Header `json:"-"`
}

// GetOptions controls fetching a single issue.
type GetOptions struct {
	request.Conditional
	Headers http.Header
}

// UpdateOptions holds the fields to change. Nil fields are left untouched.
// An empty Labels or Assignees slice clears the field.
type UpdateOptions struct {
	Title       *string   `json:"title,omitempty"`
	Body        *string   `json:"body,omitempty"`
	Assignee    *string   `json:"assignee,omitempty"`
	State       *string   `json:"state,omitempty"`
	StateReason *string   `json:"state_reason,omitempty"`
	Milestone   *string   `json:"milestone,omitempty"`
	Labels      *[]string `json:"labels,omitempty"`
	Assignees   *[]string `json:"assignees,omitempty"`
	IssueType   *string   `json:"type,omitempty"`

	Headers http.Header `json:"-"`
}

// LockOptions holds the optional lock reason: off-topic, too heated,
// resolved or spam.
type LockOptions struct {
	LockReason *string
	Headers    http.Header
}

// UnlockOptions controls unlocking an issue.
type UnlockOptions struct {
	Headers http.Header
}

// ListEndpoint picks the listing endpoint for the identifying parameters.
func ListEndpoint(owner, organization, repository *string) (string, Scope, error) {
	switch {
	case owner == nil && organization == nil && repository == nil:
		return "/issues", ScopeAuthenticatedUser, nil
	case owner == nil && organization != nil && repository == nil:
		return fmt.Sprintf("/orgs/%s/issues", *organization), ScopeOrganization, nil
	case owner != nil && organization == nil && repository != nil:
		return fmt.Sprintf("/repos/%s/%s/issues", *owner, *repository), ScopeRepository, nil
	case owner == nil && organization != nil && repository != nil:
		return fmt.Sprintf("/repos/%s/%s/issues", *organization, *repository), ScopeRepository, nil
	default:
		return "", "", request.ErrInvalidParameterCombination
	}
}

// ListSpec builds the request for listing issues.
func ListSpec(opts ListOptions) (*request.Spec, Scope, error) {
	endpoint, scope, err := ListEndpoint(opts.Owner, opts.Organization, opts.Repository)
	if err != nil {
		return nil, "", err
	}

	if opts.PerPage == nil {
		opts.PerPage = request.Ptr(defaultPerPage)
	}
	if opts.Page == nil {
		opts.Page = request.Ptr(defaultPage)
	}
	query, err := request.EncodeQuery(opts)
	if err != nil {
		return nil, "", err
	}

	headers := request.MergeHeaders(opts.Headers)
	opts.Conditional.Apply(headers)
	return &request.Spec{
		Endpoint: endpoint,
		Query:    query,
		Headers:  headers,
	}, scope, nil
}

// CreateSpec builds the request for creating an issue.
func CreateSpec(owner, repository string, opts CreateOptions) *request.Spec {
	return &request.Spec{
		Endpoint: fmt.Sprintf("/repos/%s/%s/issues", owner, repository),
		Payload:  opts,
		Headers:  request.MergeHeaders(opts.Headers),
	}
}

// GetSpec builds the request for a single issue.
func GetSpec(owner, repository string, number int, opts GetOptions) *request.Spec {
	headers := request.MergeHeaders(opts.Headers)
	opts.Conditional.Apply(headers)
	return &request.Spec{
		Endpoint: issuePath(owner, repository, number),
		Headers:  headers,
	}
}

// UpdateSpec builds the request for updating an issue.
func UpdateSpec(owner, repository string, number int, opts UpdateOptions) *request.Spec {
	return &request.Spec{
		Endpoint: issuePath(owner, repository, number),
		Payload:  opts,
		Headers:  request.MergeHeaders(opts.Headers),
	}
}

// LockSpec builds the request for locking an issue.
func LockSpec(owner, repository string, number int, opts LockOptions) *request.Spec {
	payload := &github.LockIssueOptions{}
	if opts.LockReason != nil {
		payload.LockReason = *opts.LockReason
	}
	return &request.Spec{
		Endpoint: issuePath(owner, repository, number) + "/lock",
		Payload:  payload,
		Headers:  request.MergeHeaders(opts.Headers),
	}
}

// UnlockSpec builds the request for unlocking an issue.
func UnlockSpec(owner, repository string, number int, opts UnlockOptions) *request.Spec {
	return &request.Spec{
		Endpoint: issuePath(owner, repository, number) + "/lock",
		Headers:  request.MergeHeaders(opts.Headers),
	}
}

func issuePath(owner, repository string, number int) string {
	return fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repository, number)
}

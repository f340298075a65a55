package models

import (
	"time"

	"github.com/google/go-github/v63/github"
)

// PullRequestInfo is one row of the pull request table.
type PullRequestInfo struct {
	Number    int
	Title     string
	User      string
	State     string
	Draft     bool
	UpdatedAt string
}

// IssueInfo is one row of the issue table.
type IssueInfo struct {
	Number      int
	Title       string
	User        string
	State       string
	Labels      []string
	PullRequest bool
	UpdatedAt   string
}

func NewPullRequestInfo(pr *github.PullRequest) PullRequestInfo {
	return PullRequestInfo{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		User:      pr.GetUser().GetLogin(),
		State:     pr.GetState(),
		Draft:     pr.GetDraft(),
		UpdatedAt: formatTimestamp(pr.UpdatedAt),
	}
}

func NewIssueInfo(issue *github.Issue) IssueInfo {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}
	return IssueInfo{
		Number:      issue.GetNumber(),
		Title:       issue.GetTitle(),
		User:        issue.GetUser().GetLogin(),
		State:       issue.GetState(),
		Labels:      labels,
		PullRequest: issue.IsPullRequest(),
		UpdatedAt:   formatTimestamp(issue.UpdatedAt),
	}
}

func formatTimestamp(ts *github.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.Format(time.DateTime)
}

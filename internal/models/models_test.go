package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-github/v63/github"

	"github.com/ryo246912/ghnova/pkg/request"
)

func TestOutputShapes(t *testing.T) {
	resp := &request.Response{
		Data:       json.RawMessage(`{"number":1}`),
		StatusCode: 200,
		ETag:       request.Ptr(`"abc"`),
	}

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{
			name:     "metadata wrapped",
			value:    NewOutput(resp),
			expected: `{"data":{"number":1},"metadata":{"status_code":200,"etag":"\"abc\"","last_modified":null}}`,
		},
		{
			name:     "flat",
			value:    NewFlatOutput(resp),
			expected: `{"data":{"number":1},"status_code":200,"etag":"\"abc\"","last_modified":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(b) != tt.expected {
				t.Errorf("got %s, want %s", b, tt.expected)
			}
		})
	}
}

func TestNewIssueInfo(t *testing.T) {
	updated := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	issue := &github.Issue{
		Number:           github.Int(7),
		Title:            github.String("Crash on start"),
		State:            github.String("open"),
		User:             &github.User{Login: github.String("octocat")},
		Labels:           []*github.Label{{Name: github.String("bug")}, {Name: github.String("p1")}},
		PullRequestLinks: &github.PullRequestLinks{URL: github.String("https://api.github.com/repos/o/r/pulls/7")},
		UpdatedAt:        &github.Timestamp{Time: updated},
	}

	got := NewIssueInfo(issue)
	if got.Number != 7 || got.Title != "Crash on start" || got.User != "octocat" || got.State != "open" {
		t.Errorf("Unexpected info: %+v", got)
	}
	if len(got.Labels) != 2 || got.Labels[0] != "bug" || got.Labels[1] != "p1" {
		t.Errorf("labels = %v", got.Labels)
	}
	if !got.PullRequest {
		t.Error("expected pull request flag")
	}
	if got.UpdatedAt != "2024-05-01 12:30:00" {
		t.Errorf("updated = %q", got.UpdatedAt)
	}
}

func TestNewPullRequestInfo(t *testing.T) {
	got := NewPullRequestInfo(&github.PullRequest{
		Number: github.Int(3),
		Title:  github.String("Add feature"),
		State:  github.String("open"),
		Draft:  github.Bool(true),
	})
	if got.Number != 3 || got.Title != "Add feature" || !got.Draft || got.User != "" || got.UpdatedAt != "" {
		t.Errorf("Unexpected info: %+v", got)
	}
}

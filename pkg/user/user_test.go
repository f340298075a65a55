package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"testing"

	"github.com/ryo246912/ghnova/pkg/request"
)

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		username    *string
		accountID   *int64
		expected    string
		expectError bool
	}{
		{
			name:     "authenticated user",
			expected: "/user",
		},
		{
			name:     "by username",
			username: request.Ptr("octocat"),
			expected: "/users/octocat",
		},
		{
			name:      "by account id",
			accountID: request.Ptr(int64(123)),
			expected:  "/user/123",
		},
		{
			name:        "both specified",
			username:    request.Ptr("octocat"),
			accountID:   request.Ptr(int64(123)),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Endpoint(tt.username, tt.accountID)
			if tt.expectError {
				if !errors.Is(err, request.ErrConflictingParameters) {
					t.Fatalf("Expected ErrConflictingParameters, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Endpoint() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGetSpec_Headers(t *testing.T) {
	spec, err := GetSpec(GetOptions{
		Username: request.Ptr("octocat"),
		Headers:  http.Header{"Authorization": {"Bearer token"}},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := http.Header{
		"Accept":               {"application/vnd.github+json"},
		"X-Github-Api-Version": {"2022-11-28"},
		"Authorization":        {"Bearer token"},
	}
	if !reflect.DeepEqual(spec.Headers, expected) {
		t.Errorf("headers = %v, want %v", spec.Headers, expected)
	}
}

func TestUpdateSpec(t *testing.T) {
	spec := UpdateSpec(UpdateOptions{
		Name:     request.Ptr("Mona"),
		Hireable: request.Ptr(false),
		Bio:      request.Ptr("hi"),
	})
	if spec.Endpoint != "/user" {
		t.Errorf("endpoint = %q", spec.Endpoint)
	}
	b, err := json.Marshal(spec.Payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"name":"Mona","hireable":false,"bio":"hi"}` {
		t.Errorf("payload = %s", b)
	}
}

func TestContextualInformationSpec(t *testing.T) {
	spec, err := ContextualInformationSpec("octocat", ContextualInformationOptions{
		SubjectType: request.Ptr("repository"),
		SubjectID:   request.Ptr("1300192"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if spec.Endpoint != "/users/octocat/hovercard" {
		t.Errorf("endpoint = %q", spec.Endpoint)
	}
	expected := url.Values{"subject_type": {"repository"}, "subject_id": {"1300192"}}
	if !reflect.DeepEqual(spec.Query, expected) {
		t.Errorf("query = %v, want %v", spec.Query, expected)
	}

	bare, err := ContextualInformationSpec("octocat", ContextualInformationOptions{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(bare.Query) != 0 {
		t.Errorf("query = %v, want empty", bare.Query)
	}
}

func TestUser_GetByUsername(t *testing.T) {
	d := &request.MockDispatcher{StatusCode: 200, Body: `{"login":"octocat"}`}
	resp, err := New(d).Get(context.Background(), GetOptions{Username: request.Ptr("octocat")})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(resp.Data) != `{"login":"octocat"}` || resp.StatusCode != 200 || resp.ETag != nil || resp.LastModified != nil {
		t.Errorf("Unexpected response: %+v", resp)
	}
	if d.LastSpec.Endpoint != "/users/octocat" || d.LastMethod != http.MethodGet {
		t.Errorf("dispatched %s %s", d.LastMethod, d.LastSpec.Endpoint)
	}
}

func TestUser_GetNotModified(t *testing.T) {
	d := &request.MockDispatcher{
		StatusCode: http.StatusNotModified,
		Header:     http.Header{"Etag": {`"new-etag"`}},
	}
	resp, err := New(d).Get(context.Background(), GetOptions{
		Conditional: request.Conditional{ETag: request.Ptr(`"old-etag"`)},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(resp.Data) != `{}` || resp.StatusCode != 304 || *resp.ETag != `"new-etag"` || resp.LastModified != nil {
		t.Errorf("Unexpected response: %+v", resp)
	}
	if got := d.LastSpec.Headers.Get("If-None-Match"); got != `"old-etag"` {
		t.Errorf("If-None-Match = %q", got)
	}
}

func TestUser_UpdateAndHovercard(t *testing.T) {
	ctx := context.Background()
	d := &request.MockDispatcher{StatusCode: 200, Body: `{}`}
	u := New(d)

	if _, err := u.Update(ctx, UpdateOptions{Location: request.Ptr("Tokyo")}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d.LastMethod != http.MethodPatch || d.LastSpec.Endpoint != "/user" {
		t.Errorf("dispatched %s %s", d.LastMethod, d.LastSpec.Endpoint)
	}

	if _, err := u.ContextualInformation(ctx, "octocat", ContextualInformationOptions{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d.LastMethod != http.MethodGet || d.LastSpec.Endpoint != "/users/octocat/hovercard" {
		t.Errorf("dispatched %s %s", d.LastMethod, d.LastSpec.Endpoint)
	}
}

func TestAsync_GetConflicting(t *testing.T) {
	ctx := context.Background()
	d := &request.MockDispatcher{}
	_, err := NewAsync(d).Get(ctx, GetOptions{
		Username:  request.Ptr("octocat"),
		AccountID: request.Ptr(int64(1)),
	}).Await(ctx)
	if !errors.Is(err, request.ErrConflictingParameters) {
		t.Fatalf("Expected ErrConflictingParameters, got %v", err)
	}
	if d.Calls != 0 {
		t.Errorf("Expected no request, got %d", d.Calls)
	}
}

func TestAsync_Get(t *testing.T) {
	ctx := context.Background()
	d := &request.MockDispatcher{StatusCode: 200, Body: `{"login":"me"}`}
	resp, err := NewAsync(d).Get(ctx, GetOptions{AccountID: request.Ptr(int64(42))}).Await(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(resp.Data) != `{"login":"me"}` || d.LastSpec.Endpoint != "/user/42" {
		t.Errorf("Unexpected response %s for %s", resp.Data, d.LastSpec.Endpoint)
	}
}

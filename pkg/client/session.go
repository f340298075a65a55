package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	"golang.org/x/oauth2"

	"github.com/ryo246912/ghnova/pkg/request"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"
	// DefaultTimeout bounds each request, including reading the body.
	DefaultTimeout = 30 * time.Second
)

// Config holds the settings shared by GitHub and AsyncGitHub.
type Config struct {
	// Token is sent as a bearer token. Ignored when TokenSource is set.
	// With neither set, requests are unauthenticated.
	Token string

	// TokenSource supplies tokens per request.
	TokenSource oauth2.TokenSource

	// BaseURL is the root the relative endpoints are resolved against.
	// Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout is the per-request timeout. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Transport overrides the connection pool. When nil, each session
	// allocates its own pool and releases it on Close.
	Transport http.RoundTripper

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// HTTPLog, when set, receives a dump of every HTTP exchange.
	HTTPLog io.Writer
}

type state int

const (
	stateUnopened state = iota
	stateOpen
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateOpen:
		return "open"
	case stateClosed:
		return "closed"
	default:
		return "unopened"
	}
}

// session owns the HTTP client of one Open/Close lifetime.
type session struct {
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
	tokens    oauth2.TokenSource
	logger    *slog.Logger
	httpLog   io.Writer

	mu    sync.Mutex
	state state
	http  *http.Client
	pool  *http.Transport
}

func newSession(config Config) *session {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tokens := config.TokenSource
	if tokens == nil && config.Token != "" {
		tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token})
	}

	return &session{
		baseURL:   strings.TrimRight(baseURL, "/"),
		timeout:   timeout,
		transport: config.Transport,
		tokens:    tokens,
		logger:    logger,
		httpLog:   config.HTTPLog,
	}
}

func (s *session) open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateOpen {
		return ErrSessionAlreadyOpen
	}

	base, err := url.Parse(s.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL %q: %w", s.baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return fmt.Errorf("base URL %q must be absolute", s.baseURL)
	}

	transport := s.transport
	var pool *http.Transport
	if transport == nil {
		pool = http.DefaultTransport.(*http.Transport).Clone()
		transport = pool
	}

	httpClient, err := s.newHTTPClient(base.Hostname(), transport)
	if err != nil {
		return err
	}

	s.http = httpClient
	s.pool = pool
	s.state = stateOpen
	s.logger.Debug("session opened", "base_url", s.baseURL)
	return nil
}

// newHTTPClient builds the go-gh client for host. go-gh falls back to the
// gh CLI's stored credentials when no token is given, so unauthenticated
// sessions use a plain client instead.
func (s *session) newHTTPClient(host string, transport http.RoundTripper) (*http.Client, error) {
	if s.tokens == nil {
		return &http.Client{Transport: transport, Timeout: s.timeout}, nil
	}

	token, err := s.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain token: %w", err)
	}
	httpClient, err := api.NewHTTPClient(api.ClientOptions{
		Host:               host,
		AuthToken:          token.AccessToken,
		Transport:          transport,
		Timeout:            s.timeout,
		SkipDefaultHeaders: true,
		Log:                s.httpLog,
		LogVerboseHTTP:     s.httpLog != nil,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	return httpClient, nil
}

func (s *session) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateOpen {
		return nil
	}
	if s.pool != nil {
		s.pool.CloseIdleConnections()
	}
	s.http = nil
	s.pool = nil
	s.state = stateClosed
	s.logger.Debug("session closed", "base_url", s.baseURL)
	return nil
}

func (s *session) current() (*http.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateOpen {
		return nil, fmt.Errorf("%w (state: %s)", ErrSessionNotOpen, s.state)
	}
	return s.http, nil
}

// do sends spec. Responses other than 2xx and 304 are returned as
// *HTTPStatusError with the body already closed.
func (s *session) do(ctx context.Context, method string, spec *request.Spec) (*http.Response, error) {
	httpClient, err := s.current()
	if err != nil {
		return nil, err
	}

	target := s.baseURL + spec.Endpoint
	if len(spec.Query) > 0 {
		target += "?" + spec.Query.Encode()
	}

	var body io.Reader
	if spec.Payload != nil {
		encoded, err := json.Marshal(spec.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.tokens != nil {
		token, err := s.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to obtain token: %w", err)
		}
		token.SetAuthHeader(req)
	}
	for key, values := range spec.Headers {
		req.Header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("github request", "method", method, "url", target, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusNotModified || (resp.StatusCode >= 200 && resp.StatusCode < 300) {
		return resp, nil
	}
	return nil, newHTTPStatusError(resp)
}

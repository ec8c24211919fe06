// Package network implements the HTTP session used to talk to MyAnimeList:
// basic credentials on every request, TLS only, one private connection pool per session.
package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/malkit/malkit/constant"
)

// Request describes one call relative to the session's base URL.
// Form, when not nil, is sent url-encoded as the request body.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
}

// Response is a fully read HTTP response.
type Response struct {
	Status int
	Body   []byte
	Header http.Header
}

// Sender exchanges requests with the service.
type Sender interface {
	Send(ctx context.Context, request Request) (*Response, error)
	Close()
}

type Options struct {
	BaseURL  string
	Username string
	Password string

	// Timeout bounds every request, zero means no limit besides the caller's context.
	Timeout time.Duration

	// Fingerprint makes TLS handshakes look like Chrome's.
	Fingerprint bool

	// AllowInsecure permits plain http base URLs. Meant for tests and local mirrors.
	AllowInsecure bool

	// Transport, when set, replaces the session's own transport.
	Transport func() http.RoundTripper
}

// Session is a Sender bound to one base URL and one set of credentials.
type Session struct {
	base     *url.URL
	username string
	password string
	timeout  time.Duration
	client   *http.Client
}

// Dial prepares a session. No connection is opened until the first request.
func Dial(options Options) (*Session, error) {
	base, err := url.Parse(options.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	switch {
	case base.Scheme == "https":
	case base.Scheme == "http" && options.AllowInsecure:
	default:
		return nil, fmt.Errorf("base url %q: only https is allowed", options.BaseURL)
	}

	if base.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", options.BaseURL)
	}

	var transport http.RoundTripper
	switch {
	case options.Transport != nil:
		transport = options.Transport()
	case options.Fingerprint:
		transport = newFingerprintTransport()
	default:
		if transport, err = newTransport(); err != nil {
			return nil, err
		}
	}

	return &Session{
		base:     base,
		username: options.Username,
		password: options.Password,
		timeout:  options.Timeout,
		client:   &http.Client{Transport: transport},
	}, nil
}

// Send performs the request and reads the whole body.
// Errors are returned as produced by net/http, deadline errors included.
func (s *Session) Send(ctx context.Context, request Request) (*Response, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	target := s.base.JoinPath(request.Path)
	target.RawQuery = request.Query.Encode()

	var body io.Reader
	if request.Form != nil {
		body = strings.NewReader(request.Form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(s.username, s.password)
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/xml, text/xml;q=0.9, */*;q=0.8")
	if request.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Response{
		Status: resp.StatusCode,
		Body:   data,
		Header: resp.Header,
	}, nil
}

// Close drops every pooled connection. The session stays usable and will dial again.
func (s *Session) Close() {
	s.client.CloseIdleConnections()
}

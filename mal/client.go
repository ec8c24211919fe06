// Package mal is a typed client for the MyAnimeList XML API.
package mal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/malkit/malkit/log"
	"github.com/malkit/malkit/malerr"
	"github.com/malkit/malkit/network"
)

const (
	DefaultBaseURL = "https://myanimelist.net"
	DefaultTimeout = 30 * time.Second
)

// Config configures a Client.
type Config struct {
	network.Options

	// ReconnectOnNoContent discards the session after every 204 response
	// and dials a fresh one before the next request.
	ReconnectOnNoContent bool
}

// DefaultConfig returns the configuration for the public service.
func DefaultConfig(username, password string) Config {
	return Config{
		Options: network.Options{
			BaseURL:  DefaultBaseURL,
			Username: username,
			Password: password,
			Timeout:  DefaultTimeout,
		},
		ReconnectOnNoContent: true,
	}
}

// Client issues one synchronous request per call. It is safe for concurrent use.
type Client struct {
	mu      sync.Mutex
	session network.Sender
	config  Config
}

// New dials the initial session.
func New(config Config) (*Client, error) {
	session, err := network.Dial(config.Options)
	if err != nil {
		return nil, fmt.Errorf("mal: %w", err)
	}

	return &Client{
		session: session,
		config:  config,
	}, nil
}

// Username is the account the client authenticates as.
func (c *Client) Username() string {
	return c.config.Username
}

// Close releases the pooled connections of the current session.
func (c *Client) Close() {
	c.current().Close()
}

func (c *Client) current() network.Sender {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// reconnect swaps the session for a fresh one. Requests already running on
// the old session finish normally.
func (c *Client) reconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	fresh, err := network.Dial(c.config.Options)
	if err != nil {
		log.Warnf("mal: reconnect failed, keeping the current session: %s", err)
		return
	}

	c.session.Close()
	c.session = fresh
	log.Info("mal: session replaced after an empty response")
}

// exchange sends the request and classifies the response. ok is false for
// successful responses that carry nothing to decode.
func (c *Client) exchange(ctx context.Context, request network.Request) (payload []byte, ok bool, err error) {
	started := time.Now()
	resp, err := c.current().Send(ctx, request)
	if err != nil {
		err = transportError(err)
		log.Warnf("mal: %s %s: %s", request.Method, request.Path, err)
		return nil, false, err
	}

	log.Request(request.Method, request.Path, resp.Status, time.Since(started))

	payload, ok, err = c.classify(resp)
	if err != nil {
		log.Warnf("mal: %s %s: %s", request.Method, request.Path, err)
	}

	return payload, ok, err
}

func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &malerr.TimeoutError{Cause: err}
	}

	return &malerr.TransportError{Cause: err}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

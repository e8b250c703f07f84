// Package wsclient is a thin GET client for a static set of named web
// services. Every call returns a {status, error, content} envelope; all
// failures travel as data, never as returned errors.
package wsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// readChunkSize is the body read granularity fed to the accumulator.
const readChunkSize = 32 * 1024

// Logger is the minimal logging surface the client uses. The default is
// silent; the service's zap wrapper satisfies it.
type Logger interface {
	Debugf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// Client issues synchronous GET requests to registered services.
type Client struct {
	registry Registry
	hc       *http.Client
	scheme   string
	log      Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithTimeout sets a total timeout on the underlying HTTP client. Without
// it the client's default applies.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// WithInsecure switches requests to plain HTTP, for registry entries that
// point at dev or test services without TLS.
func WithInsecure() Option {
	return func(c *Client) { c.scheme = "http" }
}

// WithLogger attaches a logger for per-call diagnostics. Failures still
// travel in the envelope; the logger only mirrors them.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Client over a registry. A nil registry falls back to
// DefaultRegistry.
func New(reg Registry, opts ...Option) *Client {
	if reg == nil {
		reg = DefaultRegistry()
	}
	c := &Client{
		registry: reg,
		hc:       &http.Client{},
		scheme:   "https",
		log:      nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do resolves name against the registry, performs one GET and returns the
// result envelope. query is a raw query string without the leading "?" and
// may be empty.
//
// Failure envelopes: unknown name -> StatusUnknownService (no network
// call), transport error -> StatusTransportFailed, non-2xx response ->
// StatusHTTPFailed. On success the status is the newline count of the
// body and content is the body itself.
func (c *Client) Do(ctx context.Context, name, query string) Envelope {
	svc, ok := c.registry.Lookup(name)
	if !ok {
		c.log.Warnf("unknown service %q", name)
		return Envelope{
			Status: StatusUnknownService,
			Error:  fmt.Sprintf("unknown service %q", name),
		}
	}

	url := fmt.Sprintf("%s://%s/%s", c.scheme, svc.Domain, svc.Path)
	if query != "" {
		url += "?" + query
	}
	c.log.Debugf("GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return Envelope{
			Status: StatusTransportFailed,
			Error:  fmt.Sprintf("failed to build request: %v", err),
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warnf("transport failure for %s: %v", name, err)
		return Envelope{
			Status: StatusTransportFailed,
			Error:  fmt.Sprintf("transport failure: %v", err),
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return c.consume(resp)
}

// consume drains the response body through a per-call accumulator.
func (c *Client) consume(resp *http.Response) Envelope {
	var acc accumulator

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		acc.fail(fmt.Sprintf("HTTP request failed: %s", resp.Status))
		return acc.envelope()
	}

	chunk := make([]byte, readChunkSize)
	for {
		n, err := resp.Body.Read(chunk)
		if n > 0 {
			acc.append(chunk[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			acc.fail(fmt.Sprintf("response body broke off: %v", err))
			break
		}
	}

	return acc.envelope()
}

// Invoke is the string-in, string-out form of Do: it returns the envelope
// as a JSON string.
func (c *Client) Invoke(ctx context.Context, name, query string) string {
	return c.Do(ctx, name, query).JSON()
}

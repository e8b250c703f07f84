package wsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// testClient points a Client at an httptest server under the service name
// "records".
func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	reg := Registry{
		"records": {
			Domain: strings.TrimPrefix(ts.URL, "http://"),
			Path:   "api/records",
		},
	}
	return New(reg, WithInsecure()), ts
}

func TestDoUnknownService(t *testing.T) {
	calls := 0
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	env := c.Do(context.Background(), "no-such-service", "SCY=1")

	if env.Status != StatusUnknownService {
		t.Errorf("status = %d, want %d", env.Status, StatusUnknownService)
	}
	if env.Error == "" {
		t.Error("error should be non-empty for an unknown service")
	}
	if calls != 0 {
		t.Errorf("no network call should be made, server saw %d", calls)
	}
}

func TestDoSuccess(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLines int
	}{
		{name: "no newline", body: `[{"time":"24.11"}]`, wantLines: 0},
		{name: "three lines", body: "line one\nline two\nline three\n", wantLines: 3},
		{name: "empty body", body: "", wantLines: 0},
		{name: "large body", body: strings.Repeat("x\n", 50_000), wantLines: 50_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotQuery string
			c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				_, _ = w.Write([]byte(tt.body))
			}))

			env := c.Do(context.Background(), "records", "SCY=1")

			if gotPath != "/api/records" {
				t.Errorf("request path = %q, want %q", gotPath, "/api/records")
			}
			if gotQuery != "SCY=1" {
				t.Errorf("request query = %q, want %q", gotQuery, "SCY=1")
			}
			if env.Status != tt.wantLines {
				t.Errorf("status = %d, want newline count %d", env.Status, tt.wantLines)
			}
			if env.Error != "" {
				t.Errorf("error = %q, want empty", env.Error)
			}
			if env.Content != tt.body {
				t.Errorf("content does not match body (got %d bytes, want %d)",
					len(env.Content), len(tt.body))
			}
		})
	}
}

func TestDoEmptyQuery(t *testing.T) {
	var gotQuery string
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte("ok"))
	}))

	env := c.Do(context.Background(), "records", "")

	if gotQuery != "" {
		t.Errorf("query = %q, want none appended", gotQuery)
	}
	if !env.OK() {
		t.Errorf("envelope not OK: %+v", env)
	}
}

func TestDoTransportFailure(t *testing.T) {
	c, ts := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	env := c.Do(context.Background(), "records", "SCY=1")

	if env.Status != StatusTransportFailed {
		t.Errorf("status = %d, want %d", env.Status, StatusTransportFailed)
	}
	if !strings.Contains(env.Error, "transport failure") {
		t.Errorf("error = %q, want transport reason", env.Error)
	}
}

func TestDoHTTPFailure(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("these bytes must be discarded\n"))
	}))

	env := c.Do(context.Background(), "records", "SCY=1")

	if env.Status != StatusHTTPFailed {
		t.Errorf("status = %d, want %d", env.Status, StatusHTTPFailed)
	}
	if env.Error == "" {
		t.Error("error should describe the HTTP failure")
	}
	if strings.Contains(env.Content, "discarded") {
		t.Errorf("content still holds the body: %q", env.Content)
	}
	if env.Content != env.Error {
		t.Errorf("content = %q, want the error description %q", env.Content, env.Error)
	}
}

func TestInvokeEnvelopeJSON(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("a\nb\n"))
	}))

	out := c.Invoke(context.Background(), "records", "LCM=1")

	var env Envelope
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("Invoke() did not return valid JSON: %v", err)
	}
	if env.Status != 2 || env.Error != "" || env.Content != "a\nb\n" {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestDoContextCancelled(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	env := c.Do(ctx, "records", "")

	if env.Status != StatusTransportFailed {
		t.Errorf("status = %d, want %d", env.Status, StatusTransportFailed)
	}
}

func TestWithInsecureScheme(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(ts.Close)

	reg := Registry{"records": {
		Domain: strings.TrimPrefix(ts.URL, "http://"),
		Path:   "api/records",
	}}

	// Default scheme is https: against a plain-HTTP server the transport
	// fails and the failure travels in the envelope.
	env := New(reg).Do(context.Background(), "records", "")
	if env.Status != StatusTransportFailed {
		t.Errorf("https against http server: status = %d, want %d", env.Status, StatusTransportFailed)
	}

	// WithInsecure targets the same service over plain HTTP.
	env = New(reg, WithInsecure()).Do(context.Background(), "records", "")
	if !env.OK() {
		t.Errorf("insecure client failed: %+v", env)
	}
	if env.Content != "ok" {
		t.Errorf("content = %q, want %q", env.Content, "ok")
	}
}

// captureLogger records formatted log lines for assertions.
type captureLogger struct {
	debugs []string
	warns  []string
}

func (l *captureLogger) Debugf(template string, args ...interface{}) {
	l.debugs = append(l.debugs, fmt.Sprintf(template, args...))
}

func (l *captureLogger) Warnf(template string, args ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(template, args...))
}

func TestWithLogger(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(ts.Close)

	reg := Registry{"records": {
		Domain: strings.TrimPrefix(ts.URL, "http://"),
		Path:   "api/records",
	}}
	log := &captureLogger{}
	c := New(reg, WithInsecure(), WithLogger(log))

	if env := c.Do(context.Background(), "records", "SCY=1"); !env.OK() {
		t.Fatalf("call failed: %+v", env)
	}
	if len(log.debugs) != 1 || !strings.Contains(log.debugs[0], "/api/records?SCY=1") {
		t.Errorf("debug log = %v, want the request URL", log.debugs)
	}

	if env := c.Do(context.Background(), "missing", ""); env.Status != StatusUnknownService {
		t.Fatalf("status = %d, want %d", env.Status, StatusUnknownService)
	}
	if len(log.warns) != 1 || !strings.Contains(log.warns[0], "missing") {
		t.Errorf("warn log = %v, want the unknown service name", log.warns)
	}
}

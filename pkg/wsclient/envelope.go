package wsclient

import "encoding/json"

// Client-side failure categories, surfaced as negative envelope statuses.
// A non-negative status is the newline count of the response body.
const (
	// StatusUnknownService: the service name is not in the registry.
	// No network call was made.
	StatusUnknownService = -1
	// StatusTransportFailed: the HTTP call itself failed (DNS, refused
	// connection, timeout).
	StatusTransportFailed = -2
	// StatusHTTPFailed: the transport succeeded but the response reported
	// a non-2xx status, or the body broke off mid-read.
	StatusHTTPFailed = -3
)

// Envelope wraps every client response.
//
// Invariant: Status >= 0 exactly when Error is empty; a non-negative
// Status counts the newlines in Content. Content itself is often a nested
// JSON document the caller decodes again.
type Envelope struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Content string `json:"content,omitempty"`
}

// JSON renders the envelope as a JSON string.
func (e Envelope) JSON() string {
	b, err := json.Marshal(e)
	if err != nil {
		// Envelope has only scalar fields; marshaling cannot fail.
		return `{"status":-2,"error":"envelope encoding failed"}`
	}
	return string(b)
}

// OK reports whether the call succeeded.
func (e Envelope) OK() bool {
	return e.Status >= 0
}

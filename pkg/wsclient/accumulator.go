package wsclient

import (
	"bytes"
	"strings"
)

// accumulator collects the response body chunk by chunk. Its state lives
// for one call and is discarded after.
//
// Once failed, further chunks are ignored and anything accumulated so far
// is dropped: a mid-response HTTP failure replaces the content with the
// failure description.
type accumulator struct {
	buf    strings.Builder
	lines  int
	failed bool
	reason string
}

// append adds one body chunk and counts its newlines.
func (a *accumulator) append(chunk []byte) {
	if a.failed {
		return
	}
	a.buf.Write(chunk)
	a.lines += bytes.Count(chunk, []byte{'\n'})
}

// fail marks the call as failed mid-response, discarding the body.
func (a *accumulator) fail(reason string) {
	a.failed = true
	a.reason = reason
	a.buf.Reset()
	a.lines = 0
}

// envelope finalizes the accumulated state. On success the status is the
// running newline count.
func (a *accumulator) envelope() Envelope {
	if a.failed {
		return Envelope{
			Status:  StatusHTTPFailed,
			Error:   a.reason,
			Content: a.reason,
		}
	}
	return Envelope{
		Status:  a.lines,
		Content: a.buf.String(),
	}
}

package wsclient

import (
	"strings"
	"testing"
)

func TestAccumulatorChunks(t *testing.T) {
	var acc accumulator
	acc.append([]byte("first\nsecond"))
	acc.append([]byte(" half\nthird\n"))

	env := acc.envelope()
	if env.Status != 3 {
		t.Errorf("status = %d, want 3 newlines", env.Status)
	}
	if env.Content != "first\nsecond half\nthird\n" {
		t.Errorf("content = %q, chunks must concatenate in arrival order", env.Content)
	}
	if env.Error != "" {
		t.Errorf("error = %q, want empty", env.Error)
	}
}

func TestAccumulatorFailDiscardsBody(t *testing.T) {
	var acc accumulator
	acc.append([]byte("partial body\n"))
	acc.fail("HTTP request failed: 502 Bad Gateway")
	acc.append([]byte("late chunk, must be ignored"))

	env := acc.envelope()
	if env.Status != StatusHTTPFailed {
		t.Errorf("status = %d, want %d", env.Status, StatusHTTPFailed)
	}
	if strings.Contains(env.Content, "partial") || strings.Contains(env.Content, "late chunk") {
		t.Errorf("content = %q, accumulated body must be discarded", env.Content)
	}
	if env.Error != "HTTP request failed: 502 Bad Gateway" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestAccumulatorEmpty(t *testing.T) {
	var acc accumulator
	env := acc.envelope()
	if env.Status != 0 || env.Error != "" || env.Content != "" {
		t.Errorf("zero accumulator should produce a zero envelope, got %+v", env)
	}
}

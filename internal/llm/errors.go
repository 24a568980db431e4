package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorKind classifies provider failures for the retry policy.
type ErrorKind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable ErrorKind = iota
	// KindRateLimit is a 429 response.
	KindRateLimit
	// KindAuth is a rejected or missing API key. Never retried.
	KindAuth
	// KindInvalid is output that is not JSON or fails the request schema.
	KindInvalid
	// KindTruncated is output cut off by the token limit. Never retried.
	KindTruncated
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimit:
		return "rate limited"
	case KindAuth:
		return "unauthorized"
	case KindInvalid:
		return "invalid response"
	case KindTruncated:
		return "response truncated"
	default:
		return "provider unavailable"
	}
}

// Error is returned by every Provider in this package.
type Error struct {
	Kind ErrorKind

	// RetryAfter is the server's requested wait, when it sent one.
	RetryAfter time.Duration

	// Content is the offending output for KindInvalid and KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of err, and false when err did not come from a
// provider.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is a provider error of kind k.
func IsKind(err error, k ErrorKind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// errorForStatus maps an HTTP status from a vendor SDK error.
func errorForStatus(status int, header http.Header, err error) *Error {
	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimit, RetryAfter: parseRetryAfter(header), Err: err}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Kind: KindAuth, Err: err}
	default:
		return &Error{Kind: KindUnavailable, Err: err}
	}
}

// parseRetryAfter reads a Retry-After header in seconds. HTTP dates are
// ignored.
func parseRetryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

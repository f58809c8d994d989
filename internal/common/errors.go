package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure at the proxy boundary.
type Kind int

const (
	// KindTransportOrParse covers network failures and undecodable payloads.
	KindTransportOrParse Kind = iota
	// KindConfigurationMissing means a server-held credential is absent.
	KindConfigurationMissing
	// KindUpstreamRateLimited means the provider answered 429.
	KindUpstreamRateLimited
	// KindUpstream means the provider answered with any other non-2xx status.
	KindUpstream
	// KindValidation means the provider payload was malformed or incomplete.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindConfigurationMissing:
		return "configuration_missing"
	case KindUpstreamRateLimited:
		return "upstream_rate_limited"
	case KindUpstream:
		return "upstream_error"
	case KindValidation:
		return "validation_error"
	default:
		return "transport_or_parse_error"
	}
}

// StatusCode maps a kind onto the HTTP status returned to the browser.
// A rate-limited upstream shares 503 with missing configuration.
func (k Kind) StatusCode() int {
	switch k {
	case KindConfigurationMissing, KindUpstreamRateLimited:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is the single error type handlers hand to the fiber error handler.
type Error struct {
	Kind Kind
	// Message is safe to show to the caller.
	Message string
	// Detail is raw diagnostic text; it is dropped in production mode.
	Detail string
	Err    error
}

// NewError builds an Error of the given kind.
func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithDetail attaches the underlying error text as detail.
func (e *Error) WithDetail() *Error {
	if e.Err != nil {
		e.Detail = e.Err.Error()
	}
	return e
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the wire status for this error.
func (e *Error) StatusCode() int {
	return e.Kind.StatusCode()
}

// KindOf reports the Kind of err, defaulting to KindTransportOrParse.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindTransportOrParse
}

var (
	// ErrMissingCredential is returned by provider clients before any outbound call.
	ErrMissingCredential = errors.New("credential not configured")
)

// UpstreamStatusError is returned by provider clients for non-2xx answers.
type UpstreamStatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Provider, e.StatusCode, http.StatusText(e.StatusCode))
}

// RateLimited reports whether the provider answered 429.
func (e *UpstreamStatusError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLookup  = errors.New("order number and email are required")
	ErrOrderNotFound  = errors.New("order not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotConfigured  = errors.New("commerce credentials are not configured")
	ErrMailerDisabled = errors.New("email transport is not configured")
)

// TransportError reports a network-level failure talking to the commerce API.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("commerce %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a non-2xx response from the commerce API.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("commerce %s: unexpected status %d", e.Op, e.StatusCode)
}

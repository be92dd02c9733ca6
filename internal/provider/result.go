// Package provider holds the contract shared by catalog adapters and the resolver.
package provider

import (
	"errors"
	"fmt"
)

// ErrTransport marks failures where no HTTP response was received at all
// (DNS, refused connection, TLS, cancelled request).
var ErrTransport = errors.New("catalog transport failure")

// ErrMalformedBody marks a successful response whose body is not a JSON object.
var ErrMalformedBody = errors.New("catalog returned a malformed body")

// StatusError is returned for non-2xx catalog responses other than 404.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog: unexpected status %d", e.StatusCode)
}

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport indicates the request never produced a response
	// (connection refused, DNS failure, timeout).
	ErrTransport = errors.New("server unreachable")

	// ErrParse indicates a response arrived but its body was not valid JSON.
	ErrParse = errors.New("invalid response body")
)

// wrapFault attaches the underlying cause to a fault sentinel so callers
// can still classify with errors.Is.
func wrapFault(sentinel, cause error) error {
	return fmt.Errorf("%w: %v", sentinel, cause)
}

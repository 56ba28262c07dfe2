package catalog

import (
	"errors"
	"fmt"
)

// Error kinds for the crawl. All are fatal to the current run; the CLI
// maps any of them to a non-zero exit.
var (
	// ErrNetwork covers unreachable hosts and non-2xx responses.
	ErrNetwork = errors.New("network error")
	// ErrParse covers response bodies that are not well-formed.
	ErrParse = errors.New("parse error")
)

// APIError is a non-success HTTP response from the catalog or GeoAPI.
// It unwraps to ErrNetwork so callers can match the kind.
type APIError struct {
	Operation string
	URL       string
	Status    int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d (%s)", e.Operation, e.Status, e.URL)
}

func (e *APIError) Unwrap() error { return ErrNetwork }

// HasStatus reports whether err is an APIError with the given HTTP status.
func HasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

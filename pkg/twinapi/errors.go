package twinapi

import (
	"fmt"

	"github.com/pkg/errors"
)

// APIError is a non-2xx response from the backend, carrying the status
// and the raw body text for the error banner.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() (msg string) {
	msg = fmt.Sprintf("backend rejected request with status %d: %s", e.StatusCode, e.Body)
	return msg
}

// IsNotFound reports whether err is a 404 from the backend. On list
// reads a 404 means "no items yet", not a failure.
func IsNotFound(err error) (notFound bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		notFound = apiErr.StatusCode == 404
		return notFound
	}
	notFound = false
	return notFound
}

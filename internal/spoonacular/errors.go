package spoonacular

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned without contacting the API when no key
// is configured.
var ErrMissingCredential = errors.New("API key is required")

// HTTPError is a non-2xx response from the API.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("API Error: %d", e.StatusCode)
}

// TransportError is a failure to reach the API or to decode its response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsQuotaExceeded reports whether err is the API's "daily points limit
// reached" response.
func IsQuotaExceeded(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == 402
}

// IsUnauthorized reports whether err means the key was rejected.
func IsUnauthorized(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == 401
}

package mais

import (
	"errors"
	"fmt"
)

// Common errors returned by the MaIS client.
var (
	// ErrMissingLookupKey indicates a single-record lookup was attempted
	// without a sunet id or an ORCID iD.
	ErrMissingLookupKey = errors.New("either a sunet id or an orcid id is required")

	// ErrNetworkError indicates a connection or timeout failure talking
	// to MaIS. This is the retryable failure class.
	ErrNetworkError = errors.New("network error communicating with MaIS")

	// ErrInvalidResponse indicates a response body that could not be
	// parsed as JSON.
	ErrInvalidResponse = errors.New("invalid response from MaIS")
)

// StatusError reports a non-2xx HTTP status from the MaIS API.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("MaIS API error (status %d)", e.StatusCode)
}

// PayloadError reports a 200 response whose body carries an error
// payload. Body is the raw response text, kept for operator diagnosis.
type PayloadError struct {
	Body string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("MaIS returned an error payload: %s", e.Body)
}

// IsStatus returns true if err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

package api

import "fmt"

// maxErrorBody bounds how much of a failed response body is kept.
const maxErrorBody = 2048

// Error is a non-2xx response from the backend, surfaced verbatim.
type Error struct {
	// Status is the HTTP status code.
	Status int
	// Method and Path identify the failed request.
	Method string
	Path   string
	// Body is the response body, truncated.
	Body string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// StatusCode returns the HTTP status code. The session layer uses it
// to tell a token rejection from a transport failure.
func (e *Error) StatusCode() int {
	return e.Status
}

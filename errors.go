package aerofs

import (
	"fmt"
	"io"
	"net/http"
)

// Error is a type that allows for error constants below.
type Error string

// Error returns a string representation of the error.
func (e Error) Error() string { return string(e) }

const (
	// ErrNotFound - the addressed resource does not exist on the server.
	ErrNotFound = Error("resource not found")

	// ErrPreconditionFailed - a conditional mutation was rejected because the
	// supplied ETag no longer matches the server's state. Re-fetch the
	// resource and retry with the fresh ETag.
	ErrPreconditionFailed = Error("precondition failed: etag does not match server state")
)

// cap on how much of an error response body is retained for inspection
const maxErrorBody = 1 << 16

// StatusError is returned for any response with a non-success HTTP status.
// It retains the status code, response headers, and (a bounded amount of)
// the response body for caller inspection.
//
// StatusError supports errors.Is against ErrNotFound and
// ErrPreconditionFailed so callers can branch on the well-known conditions
// without inspecting status codes.
type StatusError struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func newStatusError(resp *http.Response) *StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}
}

// Error returns a string representation of the error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("aerofs: server returned %s", e.Status)
}

// Is reports whether this error represents one of the package's sentinel
// error conditions.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrPreconditionFailed:
		return e.StatusCode == http.StatusPreconditionFailed
	}
	return false
}

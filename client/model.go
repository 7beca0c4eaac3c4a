package client

import (
	"errors"
	"fmt"
)

// maxErrBodySize caps the amount of response body read when
// building an error for an unexpected status code.
const maxErrBodySize = 4 << 10 // 4KB

const tracerName = "github.com/adamwoolhether/relocator/client"

var (
	// ErrUnexpectedStatusCode is the sentinel error wrapped by [UnexpectedStatusError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	// ErrNotAbsolute indicates the source URL carries no scheme.
	ErrNotAbsolute = errors.New("source url is not absolute")
)

// UnexpectedStatusError is returned when the source responds with a
// status code outside the 2xx range.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return e.Err
}

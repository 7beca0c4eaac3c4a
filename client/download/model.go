package download

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSource indicates the source URL could not be parsed.
	ErrMalformedSource = errors.New("malformed source")
	// ErrTransferFailure wraps any error raised while opening, copying or
	// closing the streams of a transfer.
	ErrTransferFailure = errors.New("transfer failure")
	// ErrCreateDestination indicates the destination file could not be
	// created or truncated. Nothing was written to it.
	ErrCreateDestination = errors.New("creating destination")
	// ErrTransferCancelled indicates the transfer was cancelled via context.
	ErrTransferCancelled = errors.New("transfer cancelled")
	// ErrTaskFailed rejects a Future whose task panicked.
	ErrTaskFailed = errors.New("async task failed")
)

// Error wraps a sentinel error with additional detail.
type Error struct {
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is the outcome of a single transfer. Err is nil if and only if
// the transfer succeeded; Written is zero whenever Err is set.
type Result struct {
	Written int64
	Err     error
}

// OK reports whether the transfer completed without error.
func (r Result) OK() bool {
	return r.Err == nil
}

package relocation

import "errors"

const tracerName = "github.com/adamwoolhether/relocator/relocation"

var (
	// ErrMoveFailure wraps every error returned by [Relocator.Relocate].
	ErrMoveFailure = errors.New("move failure")
	// ErrEmptyPath indicates the source or destination path is empty.
	ErrEmptyPath = errors.New("path must not be empty")
	// ErrNotRegularFile indicates the source is not a regular file.
	ErrNotRegularFile = errors.New("source is not a regular file")
)

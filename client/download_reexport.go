package client

import (
	"github.com/adamwoolhether/relocator/client/download"
)

// ————————————————————————————————————————————————————————————————————
// Type aliases – re-export user-facing types from [download].
// ————————————————————————————————————————————————————————————————————

type (
	// TransferError wraps a sentinel error with additional detail.
	TransferError = download.Error

	// TransferResult is the outcome of [Client.Transfer].
	TransferResult = download.Result
)

// ————————————————————————————————————————————————————————————————————
// Sentinel errors
// ————————————————————————————————————————————————————————————————————

var (
	// ErrMalformedSource indicates the source URL could not be parsed.
	ErrMalformedSource = download.ErrMalformedSource

	// ErrTransferFailure wraps any I/O failure of a transfer.
	ErrTransferFailure = download.ErrTransferFailure

	// ErrCreateDestination indicates the destination could not be created.
	ErrCreateDestination = download.ErrCreateDestination

	// ErrTransferCancelled indicates the transfer was cancelled via context.
	ErrTransferCancelled = download.ErrTransferCancelled

	// ErrTaskFailed indicates an async task panicked.
	ErrTaskFailed = download.ErrTaskFailed
)

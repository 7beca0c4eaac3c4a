package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// Handle creates fileName, truncating it if it already exists, and streams
// body into it. Both the file and any reader wrapping are released before
// Handle returns. Once the file is open, any error removes it. A failure to
// create it wraps [ErrCreateDestination] and leaves an existing file as is.
func Handle(ctx context.Context, body io.Reader, fileName string, logger *slog.Logger) (int64, error) {
	if fileName == "" {
		return 0, errors.New("fileName must not be empty")
	}

	body = &contextReader{ctx: ctx, r: body}

	file, err := os.Create(fileName)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCreateDestination, err)
	}

	var successful bool
	defer func() {
		if err := file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			logger.Error("defer closing file", "error", err)
		}
		if !successful {
			if err := os.Remove(file.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
				logger.Error("failed to remove partial file", "path", file.Name(), "error", err)
			}
		}
	}()

	n, err := io.Copy(file, body)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("%w: %w", ErrTransferCancelled, err)
		}

		return 0, fmt.Errorf("copying body: %w", err)
	}

	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("closing file: %w", err)
	}

	successful = true

	return n, nil
}

// Discard removes fileName if it names a regular file. It is used after a
// failed transfer so that stale content from an earlier write does not
// survive the failure.
func Discard(fileName string, logger *slog.Logger) {
	if fileName == "" {
		return
	}

	info, err := os.Lstat(fileName)
	if err != nil || !info.Mode().IsRegular() {
		return
	}

	if err := os.Remove(fileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error("failed to discard stale file", "path", fileName, "error", err)
	}
}

// contextReader is an io.Reader that stops reading once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}

	return cr.r.Read(p)
}

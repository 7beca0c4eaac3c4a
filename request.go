package relocator

import (
	"context"
	"errors"

	"github.com/adamwoolhether/relocator/client"
	"github.com/adamwoolhether/relocator/client/download"
	"github.com/adamwoolhether/relocator/relocation"
)

// DownloadRequest describes a single download: the file name to write,
// the source URL to read, and whether a later relocation of that file
// may replace an existing destination. It is immutable; use [Builder].
type DownloadRequest struct {
	fileName  string
	source    string
	overwrite bool
}

// FileName returns the destination file name, extension included.
func (r DownloadRequest) FileName() string { return r.fileName }

// Source returns the source URL.
func (r DownloadRequest) Source() string { return r.source }

// Overwrite reports whether [DownloadRequest.RelocateTo] replaces an
// existing destination. Writing the file itself always truncates.
func (r DownloadRequest) Overwrite() bool { return r.overwrite }

// DownloadSync writes the source into FileName and reports whether any
// bytes were written. The error is non-nil only for a malformed source.
func (r DownloadRequest) DownloadSync(ctx context.Context, c *client.Client) (bool, error) {
	n, err := c.WriteSync(ctx, r.fileName, r.source)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// DownloadAsync runs [DownloadRequest.DownloadSync] on a background goroutine.
func (r DownloadRequest) DownloadAsync(ctx context.Context, c *client.Client) *download.Future[bool] {
	return download.Go(func() (bool, error) {
		return r.DownloadSync(ctx, c)
	})
}

// RelocateTo moves the downloaded file to dst, replacing an existing file
// only when the request was built with ReplaceExisting(true).
func (r DownloadRequest) RelocateTo(ctx context.Context, rel *relocation.Relocator, dst string) bool {
	return rel.Move(ctx, r.fileName, dst, r.overwrite)
}

// Builder accumulates the settings of a [DownloadRequest].
type Builder struct {
	fileName  string
	source    string
	overwrite bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Name sets the file name the download is written to.
func (b *Builder) Name(fileName string) *Builder {
	b.fileName = fileName
	return b
}

// URL sets the source URL.
func (b *Builder) URL(source string) *Builder {
	b.source = source
	return b
}

// ReplaceExisting sets whether relocating the downloaded file may replace
// an existing destination. Defaults to false.
func (b *Builder) ReplaceExisting(overwrite bool) *Builder {
	b.overwrite = overwrite
	return b
}

type requiredFields struct {
	FileName string `json:"fileName" validate:"required"`
	Source   string `json:"sourceUrl" validate:"required"`
}

// Build returns the configured DownloadRequest. It fails with a
// [*BuildError] naming every required field that is unset.
func (b *Builder) Build() (DownloadRequest, error) {
	if err := check(requiredFields{FileName: b.fileName, Source: b.source}); err != nil {
		var fields FieldErrors
		if errors.As(err, &fields) {
			return DownloadRequest{}, &BuildError{Fields: fields}
		}
		return DownloadRequest{}, err
	}

	return DownloadRequest{
		fileName:  b.fileName,
		source:    b.source,
		overwrite: b.overwrite,
	}, nil
}

package relocation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Relocator moves files between paths.
type Relocator struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// New creates a Relocator. Without options it logs to [slog.Default] and
// records no spans.
func New(optFns ...Option) (*Relocator, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying relocator option: %w", err)
		}
	}

	r := &Relocator{
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer(tracerName),
	}

	if opts.logger != nil {
		r.logger = opts.logger
	}

	if opts.tracer != nil {
		r.tracer = opts.tracer
	}

	return r, nil
}

// Move relocates src to dst and reports whether it succeeded. The cause of
// a failure is logged and otherwise dropped; use [Relocator.Relocate] to
// keep it.
func (r *Relocator) Move(ctx context.Context, src, dst string, overwrite bool) bool {
	if err := r.Relocate(ctx, src, dst, overwrite); err != nil {
		r.logger.Error("move failed", "src", src, "dst", dst, "overwrite", overwrite, "error", err)
		return false
	}

	return true
}

// Relocate moves the regular file at src to dst. With overwrite an existing
// file at dst is replaced; without it the move fails with an error wrapping
// [fs.ErrExist] when dst exists. Every returned error wraps [ErrMoveFailure].
// ctx only carries the trace; the move itself cannot be cancelled.
func (r *Relocator) Relocate(ctx context.Context, src, dst string, overwrite bool) error {
	_, span := r.tracer.Start(ctx, "relocation.move", trace.WithAttributes(
		attribute.String("move.src", src),
		attribute.String("move.dst", dst),
		attribute.Bool("move.overwrite", overwrite),
	))
	defer span.End()

	if err := relocate(src, dst, overwrite); err != nil {
		err = fmt.Errorf("%w: %w", ErrMoveFailure, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	r.logger.Debug("file moved", "src", src, "dst", dst)

	return nil
}

// Move relocates src to dst using a Relocator with default settings.
func Move(ctx context.Context, src, dst string, overwrite bool) bool {
	r, err := New()
	if err != nil {
		return false
	}

	return r.Move(ctx, src, dst, overwrite)
}

func relocate(src, dst string, overwrite bool) error {
	if src == "" || dst == "" {
		return ErrEmptyPath
	}

	srcInfo, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, src)
	}

	// Moving a file onto itself is a no-op.
	if dstInfo, err := os.Lstat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return nil
	}

	if overwrite {
		return os.Rename(src, dst)
	}

	return renameNoReplace(src, dst)
}

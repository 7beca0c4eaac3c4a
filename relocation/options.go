package relocation

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for configuring a [Relocator] via [New].
type Option func(*options) error
type options struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// WithLogger injects a custom [slog.Logger] into the [Relocator].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithTracer records a span for every move using tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/relocator/client/download"
)

// Client wraps a std-lib *http.Client used to open source streams.
// Every transfer opens and closes its own connection.
type Client struct {
	c      *http.Client
	logger *slog.Logger
	tracer trace.Tracer
}

// Build creates a Client. Without options it uses a fresh [http.Client]
// whose transport understands http, https and file URLs.
func Build(optFns ...Option) (*Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	client := &Client{
		c:      &http.Client{},
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer(tracerName),
	}

	if opts.client != nil {
		cpy := *opts.client
		client.c = &cpy
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.tracer != nil {
		client.tracer = opts.tracer
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = defaultTransport()
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	client.c.Transport = transport

	return client, nil
}

// WriteSync downloads source into fileName and returns the number of bytes
// written. Any failure to open, copy or close the streams yields 0 and is
// logged. The only error returned wraps [download.ErrMalformedSource], for a
// source that cannot be parsed as a URL.
func (c *Client) WriteSync(ctx context.Context, fileName, source string) (int64, error) {
	res := c.Transfer(ctx, fileName, source)
	if errors.Is(res.Err, download.ErrMalformedSource) {
		return 0, res.Err
	}

	return res.Written, nil
}

// WriteAsync runs [Client.WriteSync] on a background goroutine. The Future
// resolves with the same byte count WriteSync would return, and is rejected
// only for a malformed source or if the task itself panics.
func (c *Client) WriteAsync(ctx context.Context, fileName, source string) *download.Future[int64] {
	return download.Go(func() (int64, error) {
		return c.WriteSync(ctx, fileName, source)
	})
}

// Transfer downloads source into fileName, keeping the cause of a failure.
// Result.Err wraps [download.ErrMalformedSource] or [download.ErrTransferFailure].
func (c *Client) Transfer(ctx context.Context, fileName, source string) download.Result {
	id := uuid.NewString()

	ctx, span := c.tracer.Start(ctx, "client.transfer", trace.WithAttributes(
		attribute.String("transfer.id", id),
		attribute.String("transfer.file", fileName),
		attribute.String("transfer.source", source),
	))
	defer span.End()

	n, err := c.transfer(ctx, fileName, source)
	if err != nil {
		if !errors.Is(err, download.ErrMalformedSource) {
			err = fmt.Errorf("%w: %w", download.ErrTransferFailure, err)
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("transfer failed", "id", id, "file", fileName, "source", source, "error", err)

		return download.Result{Err: err}
	}

	span.SetAttributes(attribute.Int64("transfer.bytes", n))
	c.logger.Debug("transfer complete", "id", id, "file", fileName, "bytes", n)

	return download.Result{Written: n}
}

func (c *Client) transfer(ctx context.Context, fileName, source string) (int64, error) {
	u, err := parseSource(source)
	if err != nil {
		return 0, &download.Error{Err: download.ErrMalformedSource, Detail: err.Error()}
	}

	n, err := c.stream(ctx, u, fileName)
	if err != nil {
		if !errors.Is(err, download.ErrCreateDestination) {
			download.Discard(fileName, c.logger)
		}
		return 0, err
	}

	return n, nil
}

// stream opens the source, then the destination, and copies between them.
// The response body is closed on every path.
func (c *Client) stream(ctx context.Context, u *url.URL, fileName string) (int64, error) {
	body, err := c.open(ctx, u)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	n, err := download.Handle(ctx, body, fileName, c.logger)
	if err != nil {
		return 0, fmt.Errorf("download: %w", err)
	}

	return n, nil
}

// open issues a GET for u and returns the response body when the status
// is 2xx. The caller must close the returned body.
func (c *Client) open(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: %q", ErrNotAbsolute, u.String())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exec http do: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer func() {
			if err := resp.Body.Close(); err != nil {
				c.logger.Error("failed to close response body", "error", err)
			}
		}()

		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		return nil, &UnexpectedStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
			Err:        ErrUnexpectedStatusCode,
		}
	}

	return resp.Body, nil
}

// parseSource parses source as a URI reference. On top of [url.Parse] it
// rejects characters that RFC 3986 does not allow anywhere in a URI, and a
// second fragment delimiter.
func parseSource(source string) (*url.URL, error) {
	for i := 0; i < len(source); i++ {
		if !uriChar(source[i]) {
			return nil, fmt.Errorf("illegal character %q at index %d", source[i], i)
		}
	}
	if strings.Count(source, "#") > 1 {
		return nil, fmt.Errorf("more than one fragment in %q", source)
	}

	return url.Parse(source)
}

func uriChar(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}

	return strings.IndexByte("-._~:/?#[]@!$&'()*+,;=%", b) >= 0
}

// defaultTransport clones [http.DefaultTransport] with keep-alives disabled
// and the file scheme registered.
func defaultTransport() http.RoundTripper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DisableKeepAlives = true
	t.RegisterProtocol("file", http.NewFileTransport(http.Dir("/")))

	return t
}

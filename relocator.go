// Package relocator downloads files from URLs and moves files between
// paths.
//
// A [DownloadRequest] is assembled with a [Builder] and executed with a
// [client.Client]; the resulting file can then be moved with a
// [relocation.Relocator]:
//
//	req, err := relocator.NewBuilder().
//		Name("plugin.jar").
//		URL("https://example.com/plugin.jar").
//		ReplaceExisting(true).
//		Build()
//
//	c, err := relocator.NewClient()
//	ok, err := req.DownloadSync(ctx, c)
//
//	r, err := relocator.NewRelocator()
//	moved := req.RelocateTo(ctx, r, "plugins/plugin.jar")
package relocator

import (
	"context"

	"github.com/adamwoolhether/relocator/client"
	"github.com/adamwoolhether/relocator/client/download"
	"github.com/adamwoolhether/relocator/relocation"
)

// NewClient instantiates a new *client.Client with the provided options.
func NewClient(opts ...client.Option) (*client.Client, error) {
	return client.Build(opts...)
}

// NewRelocator instantiates a new *relocation.Relocator with the provided options.
func NewRelocator(opts ...relocation.Option) (*relocation.Relocator, error) {
	return relocation.New(opts...)
}

// WriteSync downloads source into fileName with a default client.
// See [client.Client.WriteSync].
func WriteSync(ctx context.Context, fileName, source string) (int64, error) {
	c, err := client.Build()
	if err != nil {
		return 0, err
	}

	return c.WriteSync(ctx, fileName, source)
}

// WriteAsync runs [WriteSync] on a background goroutine.
func WriteAsync(ctx context.Context, fileName, source string) *download.Future[int64] {
	return download.Go(func() (int64, error) {
		return WriteSync(ctx, fileName, source)
	})
}

// Move relocates src to dst with a default relocator.
// See [relocation.Relocator.Move].
func Move(ctx context.Context, src, dst string, overwrite bool) bool {
	return relocation.Move(ctx, src, dst, overwrite)
}

// Package download streams a source body into a named local file and
// provides the one-shot [Future] used by the asynchronous transfer calls.
//
// # Single Transfer
//
// [Handle] creates (or truncates) the destination and copies the body
// into it, returning the number of bytes written:
//
//	n, err := download.Handle(ctx, resp.Body, "plugin.jar", logger)
//
// On failure the destination is removed so that no partial content is
// left behind.
//
// # Async Work
//
// [Go] runs a function on its own goroutine and returns a [Future]:
//
//	f := download.Go(func() (int64, error) { return work() })
//	// ... do other work ...
//	n, err := f.Wait()
//
// Most callers should use the higher-level
// [github.com/adamwoolhether/relocator/client] package, which invokes
// Handle and Go internally.
package download

// Package client downloads a URL into a named local file using a
// configurable [net/http] client.
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(30 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//	)
//
// # Writing Files
//
// [Client.WriteSync] streams the source into the destination file and
// returns the number of bytes written. Zero signals failure; only a
// source URL that cannot be parsed is reported as an error:
//
//	n, err := c.WriteSync(ctx, "plugin.jar", "https://example.com/plugin.jar")
//	if err != nil { ... } // malformed source
//	if n == 0 { ... }     // transfer failed
//
// [Client.Transfer] performs the same work but keeps the cause of a
// failure in the returned [download.Result].
//
// # Async Writes
//
// [Client.WriteAsync] runs WriteSync on a background goroutine:
//
//	f := c.WriteAsync(ctx, "plugin.jar", "https://example.com/plugin.jar")
//	// ... do other work ...
//	n, err := f.Wait()
//
// Supported schemes are http, https and file.
package client

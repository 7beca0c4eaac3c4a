// Package relocation moves a regular file from one path to another,
// optionally replacing an existing file at the destination.
//
// # Moving Files
//
// [Relocator.Move] reports success as a bool, matching the coarse
// contract most callers rely on:
//
//	r, err := relocation.New(relocation.WithLogger(logger))
//	ok := r.Move(ctx, "downloads/plugin.jar", "plugins/plugin.jar", true)
//
// [Relocator.Relocate] performs the same move and returns the cause of a
// failure instead.
//
// Without overwrite the move uses the platform's non-replacing rename, so
// an existing destination is never clobbered. Moves across filesystems
// fail; no copy fallback or cleanup is attempted.
package relocation

//go:build linux

package relocation

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// renameNoReplace renames src to dst, failing if dst exists. Filesystems
// without RENAME_NOREPLACE support fall back to link and unlink.
func renameNoReplace(src, dst string) error {
	err := unix.Renameat2(unix.AT_FDCWD, src, unix.AT_FDCWD, dst, unix.RENAME_NOREPLACE)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.ENOSYS), errors.Is(err, unix.EINVAL):
		return linkAndRemove(src, dst)
	}

	return &os.LinkError{Op: "rename", Old: src, New: dst, Err: err}
}

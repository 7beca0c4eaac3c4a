//go:build darwin

package relocation

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// renameNoReplace renames src to dst, failing if dst exists. Filesystems
// without RENAME_EXCL support fall back to link and unlink.
func renameNoReplace(src, dst string) error {
	err := unix.RenamexNp(src, dst, unix.RENAME_EXCL)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.ENOTSUP), errors.Is(err, unix.EINVAL):
		return linkAndRemove(src, dst)
	}

	return &os.LinkError{Op: "rename", Old: src, New: dst, Err: err}
}

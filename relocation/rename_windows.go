//go:build windows

package relocation

import (
	"os"

	"golang.org/x/sys/windows"
)

// renameNoReplace renames src to dst, failing if dst exists.
func renameNoReplace(src, dst string) error {
	from, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: err}
	}
	to, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: err}
	}

	// No MOVEFILE_REPLACE_EXISTING and no MOVEFILE_COPY_ALLOWED.
	if err := windows.MoveFileEx(from, to, 0); err != nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: err}
	}

	return nil
}

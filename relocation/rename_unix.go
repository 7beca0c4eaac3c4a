//go:build !windows

package relocation

import (
	"fmt"
	"os"
)

// linkAndRemove hard-links src at dst, which fails if dst exists, then
// unlinks src.
func linkAndRemove(src, dst string) error {
	if err := os.Link(src, dst); err != nil {
		return err
	}

	if err := os.Remove(src); err != nil {
		return fmt.Errorf("removing source after link: %w", err)
	}

	return nil
}

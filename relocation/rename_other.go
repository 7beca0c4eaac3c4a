//go:build !linux && !windows && !darwin

package relocation

// renameNoReplace renames src to dst, failing if dst exists.
func renameNoReplace(src, dst string) error {
	return linkAndRemove(src, dst)
}

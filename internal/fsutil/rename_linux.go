//go:build linux

package fsutil

import (
	"errors"

	"golang.org/x/sys/unix"
)

var errUnsupported = errors.New("renameat2 RENAME_NOREPLACE unsupported")

func renameNoReplace(from, to string) error {
	err := unix.Renameat2(unix.AT_FDCWD, from, unix.AT_FDCWD, to, unix.RENAME_NOREPLACE)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.ENOSYS), errors.Is(err, unix.EINVAL):
		// Old kernels and some filesystems (e.g. certain network mounts) reject the flag.
		return errUnsupported
	default:
		return err
	}
}

//go:build !linux

package fsutil

import "errors"

var errUnsupported = errors.New("atomic no-replace rename unsupported")

func renameNoReplace(_, _ string) error {
	return errUnsupported
}

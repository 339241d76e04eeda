package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// NoReplaceRenamer is implemented by filesystems that can rename without
// clobbering the target in a single step.
type NoReplaceRenamer interface {
	RenameNoReplace(from, to string) error
}

// OS is a billy.Filesystem rooted at a host directory. Paths passed to it
// are relative to that directory, with "/" naming the directory itself.
type OS struct {
	billy.Filesystem
	base string
}

// NewOS returns a filesystem rooted at base. base is not required to exist;
// operations on a missing base fail with fs.ErrNotExist.
func NewOS(base string) *OS {
	return &OS{Filesystem: osfs.New(base), base: base}
}

// Base returns the host directory the filesystem is rooted at.
func (o *OS) Base() string {
	return o.base
}

// hostPath maps a filesystem path to its location on the host.
func (o *OS) hostPath(name string) string {
	return filepath.Join(o.base, filepath.FromSlash(name))
}

// RenameNoReplace renames from to to, failing with an error that matches
// fs.ErrExist when to is already present. Where the kernel supports it the
// check and the rename are a single atomic operation.
func (o *OS) RenameNoReplace(from, to string) error {
	err := renameNoReplace(o.hostPath(from), o.hostPath(to))
	if errors.Is(err, errUnsupported) {
		return checkedRename(o.Filesystem, from, to)
	}
	if err != nil {
		return &os.LinkError{Op: "rename", Old: from, New: to, Err: err}
	}
	return nil
}

// Rename moves from to to without replacing an existing target. It uses the
// filesystem's own no-replace rename when available and otherwise checks
// the target with Lstat before renaming.
func Rename(fsys billy.Filesystem, from, to string) error {
	if nr, ok := fsys.(NoReplaceRenamer); ok {
		return nr.RenameNoReplace(from, to)
	}
	return checkedRename(fsys, from, to)
}

func checkedRename(fsys billy.Filesystem, from, to string) error {
	_, err := fsys.Lstat(to)
	if err == nil {
		return &os.LinkError{Op: "rename", Old: from, New: to, Err: fs.ErrExist}
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return fsys.Rename(from, to)
}

package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRename_MemFSRefusesExistingTarget(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("/d", 0o755))
	require.NoError(t, util.WriteFile(fsys, "/d/a", []byte("a"), 0o644))
	require.NoError(t, util.WriteFile(fsys, "/d/b", []byte("b"), 0o644))

	err := Rename(fsys, "/d/a", "/d/b")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrExist)

	_, err = fsys.Stat("/d/a")
	assert.NoError(t, err, "source must stay in place")
}

func TestRename_MemFSMovesFile(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("/d", 0o755))
	require.NoError(t, util.WriteFile(fsys, "/d/a", []byte("a"), 0o644))

	require.NoError(t, Rename(fsys, "/d/a", "/d/c"))

	_, err := fsys.Stat("/d/c")
	assert.NoError(t, err)
	_, err = fsys.Stat("/d/a")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOS_RenameNoReplace(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "a"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "b"), []byte("b"), 0o644))
	o := NewOS(base)
	assert.Equal(t, base, o.Base())

	err := Rename(o, "/a", "/b")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrExist)
	got, err := os.ReadFile(filepath.Join(base, "b"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))

	require.NoError(t, Rename(o, "/a", "/c"))
	assert.FileExists(t, filepath.Join(base, "c"))
	assert.NoFileExists(t, filepath.Join(base, "a"))
}

func TestOS_MissingBase(t *testing.T) {
	o := NewOS(filepath.Join(t.TempDir(), "missing"))

	_, err := o.Stat("/")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

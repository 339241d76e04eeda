package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/renumber/internal/fsutil"
)

var (
	// ErrRootNotFound is returned when the root does not exist. The error
	// also matches fs.ErrNotExist.
	ErrRootNotFound = errors.New("root directory not found")
	// ErrNotDirectory is returned when the root, or an entry directly under
	// it, is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrTargetExists is returned when a numbered name is already taken by
	// another entry. The error also matches fs.ErrExist.
	ErrTargetExists = errors.New("rename target already exists")
)

// Options tunes a Renamer. The zero value renames every entry.
type Options struct {
	// Exclude holds doublestar patterns matched against bare entry names.
	// Matching entries are left alone at both levels and take no number.
	Exclude []string

	// DisplayRoot, when set, is the host location of the filesystem root.
	// Paths in error messages and logs are shown under it.
	DisplayRoot string
}

// Rename records one applied rename. From and To are full filesystem paths.
type Rename struct {
	Category string
	Seq      int
	From     string
	To       string
}

// Result describes what a run did. It is meaningful even when RenameAll
// returns an error: Renames then lists the work done before the failure.
type Result struct {
	// Categories counts category directories processed to the end.
	Categories int
	// Files counts files numbered so far, including those of a category
	// that failed part-way and those already carrying their target name.
	Files   int
	Renames []Rename
}

// Renamer renumbers category directories on a billy.Filesystem.
type Renamer struct {
	fs          billy.Filesystem
	exclude     []string
	displayRoot string
	log         *slog.Logger
}

// New validates opts and returns a Renamer working on fsys.
// A nil logger discards all output.
func New(fsys billy.Filesystem, opts Options, log *slog.Logger) (*Renamer, error) {
	for _, p := range opts.Exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", p)
		}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Renamer{fs: fsys, exclude: slices.Clone(opts.Exclude), displayRoot: opts.DisplayRoot, log: log}, nil
}

// RenameAll renumbers every category directory directly under root.
// Entries are processed in name order with digit runs compared by value,
// so numbering is deterministic across filesystems and a tree that is
// already numbered maps onto itself.
func (r *Renamer) RenameAll(root string) (Result, error) {
	var res Result

	info, err := r.fs.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, fmt.Errorf("%w: %s: %w", ErrRootNotFound, r.display(root), err)
		}
		return res, fmt.Errorf("stat root %s: %w", r.display(root), err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("root %s: %w", r.display(root), ErrNotDirectory)
	}

	entries, err := r.readDir(root)
	if err != nil {
		return res, fmt.Errorf("list root %s: %w", r.display(root), err)
	}

	for _, e := range entries {
		if r.excluded(e.Name()) {
			r.log.Debug("skip excluded", "path", r.display(r.fs.Join(root, e.Name())))
			continue
		}
		dir := r.fs.Join(root, e.Name())
		isDir, err := r.isDir(dir, e)
		if err != nil {
			return res, fmt.Errorf("stat category %s: %w", r.display(dir), err)
		}
		if !isDir {
			return res, fmt.Errorf("list category %s: %w", r.display(dir), ErrNotDirectory)
		}

		n := len(res.Renames)
		files, err := r.renumber(dir, e.Name(), &res)
		res.Files += files
		if err != nil {
			return res, err
		}
		res.Categories++
		r.log.Info("category renumbered", "category", e.Name(), "files", files, "renamed", len(res.Renames)-n)
	}
	return res, nil
}

// renumber renames the files of one category and returns how many files
// it numbered, including those already carrying their target name.
func (r *Renamer) renumber(dir, category string, res *Result) (int, error) {
	entries, err := r.readDir(dir)
	if err != nil {
		return 0, fmt.Errorf("list category %s: %w", r.display(dir), err)
	}

	seq := 1
	for _, e := range entries {
		name := e.Name()
		if r.excluded(name) {
			r.log.Debug("skip excluded", "path", r.display(r.fs.Join(dir, name)))
			continue
		}
		from := r.fs.Join(dir, name)
		isDir, err := r.isDir(from, e)
		if err != nil {
			return seq - 1, fmt.Errorf("stat %s: %w", r.display(from), err)
		}
		if isDir {
			// Only two levels are walked.
			r.log.Debug("skip nested directory", "path", r.display(from))
			continue
		}

		target := TargetName(category, seq, Extension(name))
		if target != name {
			to := r.fs.Join(dir, target)
			if err := fsutil.Rename(r.fs, from, to); err != nil {
				if errors.Is(err, fs.ErrExist) {
					return seq - 1, fmt.Errorf("rename %s: %w: %s: %w", r.display(from), ErrTargetExists, r.display(to), err)
				}
				return seq - 1, fmt.Errorf("rename %s: %w", r.display(from), err)
			}
			res.Renames = append(res.Renames, Rename{Category: category, Seq: seq, From: from, To: to})
			r.log.Debug("renamed", "from", r.display(from), "to", r.display(to))
		}
		seq++
	}
	return seq - 1, nil
}

// readDir lists dir in compareNames order.
func (r *Renamer) readDir(dir string) ([]os.FileInfo, error) {
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(entries, func(a, b os.FileInfo) int {
		return compareNames(a.Name(), b.Name())
	})
	return entries, nil
}

// isDir reports whether the entry at path is a directory, following a
// symlink to see what it points at.
func (r *Renamer) isDir(path string, info os.FileInfo) (bool, error) {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir(), nil
	}
	target, err := r.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil // dangling link, treated as a file
		}
		return false, err
	}
	return target.IsDir(), nil
}

// display maps a filesystem path to the form shown to the operator.
func (r *Renamer) display(p string) string {
	if r.displayRoot == "" {
		return p
	}
	return filepath.Join(r.displayRoot, filepath.FromSlash(p))
}

func (r *Renamer) excluded(name string) bool {
	for _, p := range r.exclude {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

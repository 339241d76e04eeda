// Package fsutil builds the go-billy filesystems renumber operates on and
// provides a rename that refuses to replace an existing entry.
package fsutil

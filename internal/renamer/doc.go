// Package renamer renumbers the files of every category directory under a
// root. Each immediate subdirectory of the root is a category; the files
// directly inside it are renamed to <category>_<n><ext>, with n counting
// from 1 in name order and ext kept from the original name.
//
// A run stops at the first error. Renames already applied stay in place.
package renamer

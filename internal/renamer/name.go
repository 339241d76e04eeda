package renamer

import (
	"fmt"
	"strings"
)

// Extension returns the suffix of name starting at its last '.',
// or "" when name has no dot. "a.tar.gz" yields ".gz" and ".keep" yields ".keep".
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i:]
}

// TargetName builds the numbered name for the seq-th file of a category,
// e.g. TargetName("cats", 2, ".png") is "cats_2.png".
func TargetName(category string, seq int, ext string) string {
	return fmt.Sprintf("%s_%d%s", category, seq, ext)
}

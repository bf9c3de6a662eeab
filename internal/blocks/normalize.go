package blocks

import "strings"

// Normalize folds Windows line endings to a single \n. Lone \n and \r are
// left unchanged. Total over all strings.
func Normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

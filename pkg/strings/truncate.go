// Package strings holds small text helpers shared by the console previews
// and table output.
package strings

import (
	"strings"
)

// DefaultCommentMaxLen is the width comment columns are cut to in tables.
const DefaultCommentMaxLen = 60

// MinTruncateLen is the smallest maxLen Truncate accepts.
const MinTruncateLen = 4

// Truncate collapses all whitespace in s to single spaces and cuts the result
// to maxLen runes, ending in "..." when something was removed.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

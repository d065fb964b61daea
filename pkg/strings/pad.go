package strings

import "strings"

// PadRight appends spaces to s until it is width bytes long. Longer strings
// are returned unchanged.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Longest returns the byte length of the longest string in values.
func Longest(values ...string) int {
	longest := 0
	for _, v := range values {
		if len(v) > longest {
			longest = len(v)
		}
	}
	return longest
}

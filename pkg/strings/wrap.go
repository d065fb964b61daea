package strings

import "strings"

// maxWrapLines bounds WrapComment; text that needs more lines than this is
// considered unwrappable.
const maxWrapLines = 50

// WrapComment breaks text into lines of at most width characters, splitting
// on single spaces. Every word is followed by one space and continuation
// lines start with indent spaces. A line is closed once adding the next word
// would use up the remaining width.
//
// The second return value is false when the text cannot be wrapped, for
// example because a single word is wider than width. Callers then print the
// text unchanged.
func WrapComment(text string, width, indent int) (string, bool) {
	if width <= 0 {
		return text, false
	}

	words := strings.Split(text, " ")
	var b strings.Builder
	last, current := 0, 0
	for lines := 0; ; lines++ {
		if lines == maxWrapLines {
			return text, false
		}

		left := width
		for left > 0 {
			if current >= len(words) {
				current = len(words) + 1
				break
			}
			left -= len(words[current]) + 1
			current++
		}
		current--

		for _, word := range words[last:current] {
			b.WriteString(word)
			b.WriteByte(' ')
		}
		if len(words)-current <= 0 {
			return b.String(), true
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", indent))
		last = current
	}
}

package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world this is a long string", 15, "hello world ..."},
		{"newlines collapsed", "Radius of\ncircle", 20, "Radius of circle"},
		{"unicode truncation safe", "ÅÅÅÅÅÅÅÅ", 6, "ÅÅÅ..."},
		{"small max clamped", "abcdefgh", 1, "a..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc   ", PadRight("abc", 6))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, 7, Longest("a", "abcdefg", "abc"))
	assert.Equal(t, 0, Longest())
}

func TestWrapComment(t *testing.T) {
	t.Run("fits on one line", func(t *testing.T) {
		out, ok := WrapComment(" // short comment", 40, 4)
		assert.True(t, ok)
		assert.Equal(t, " // short comment ", out)
	})

	t.Run("breaks into indented lines", func(t *testing.T) {
		out, ok := WrapComment(" // one two three four", 12, 2)
		assert.True(t, ok)
		assert.Equal(t, " // one \n  two three \n  four ", out)
	})

	t.Run("word wider than line gives up", func(t *testing.T) {
		out, ok := WrapComment(" // supercalifragilistic", 5, 2)
		assert.False(t, ok)
		assert.Equal(t, " // supercalifragilistic", out)
	})

	t.Run("no room gives up", func(t *testing.T) {
		_, ok := WrapComment(" // a", 0, 2)
		assert.False(t, ok)
	})
}

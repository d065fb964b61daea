package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	e := New()

	tests := []struct {
		name     string
		text     string
		vars     map[string]any
		expected string
	}{
		{"plain", "name: {{ name }}", map[string]any{"name": "ess"}, "name: ess"},
		{"dot and no spaces", "{{.a}}-{{ .a }}-{{a}}", map[string]any{"a": "x"}, "x-x-x"},
		{"int", "n: {{ n }}", map[string]any{"n": 3}, "n: 3"},
		{"float", "l: {{ l }}", map[string]any{"l": 1.5}, "l: 1.5"},
		{"small float", "l: {{ l }}", map[string]any{"l": 1e-7}, "l: 1e-07"},
		{"bool", "{{ b }}", map[string]any{"b": true}, "true"},
		{"untouched", "no placeholders {{ }}", nil, "no placeholders {{ }}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := e.Render(tt.text, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRender_Missing(t *testing.T) {
	_, err := New().Render("{{ z }} {{ a }} {{ z }}", map[string]any{})
	require.Error(t, err)
	assert.Equal(t, "missing template variables: a, z", err.Error())
}

func TestVariablesAndValidate(t *testing.T) {
	e := New()
	text := "{{ b }} {{ .a }} {{b}}"

	assert.Equal(t, []string{"a", "b"}, e.Variables(text))
	assert.NoError(t, e.ValidateContext(text, map[string]any{"a": 1, "b": 2}))
	assert.EqualError(t, e.ValidateContext(text, map[string]any{"a": 1}), "missing template variables: b")
}

func TestUnused(t *testing.T) {
	e := New()
	text := "{{ a }} {{ .b }}"

	assert.Equal(t, []string{"typo", "z"}, e.Unused(text, map[string]any{"a": 1, "z": 2, "b": 3, "typo": 4}))
	assert.Empty(t, e.Unused(text, map[string]any{"a": 1}))
	assert.Empty(t, e.Unused(text, nil))
}

func TestMergeContexts(t *testing.T) {
	merged := MergeContexts(map[string]any{"a": 1, "b": 2}, nil, map[string]any{"b": 3})
	assert.Equal(t, map[string]any{"a": 1, "b": 3}, merged)
}

func TestParseAssignments(t *testing.T) {
	vars, err := ParseAssignments([]string{"a=1", "path=/x=y", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "1", "path": "/x=y", "empty": ""}, vars)

	_, err = ParseAssignments([]string{"novalue"})
	assert.Error(t, err)
	_, err = ParseAssignments([]string{"=1"})
	assert.Error(t, err)
}

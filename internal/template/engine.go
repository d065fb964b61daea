package template

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Engine substitutes {{ name }} placeholders in definition files.
type Engine struct {
	// Pattern to match template variables like {{ variableName }}
	templatePattern *regexp.Regexp
}

// New creates a new template engine
func New() *Engine {
	return &Engine{
		templatePattern: regexp.MustCompile(`\{\{\s*\.?([a-zA-Z_][a-zA-Z0-9_]*)\s*\}\}`),
	}
}

// Render replaces every placeholder in text with its value from vars. All
// missing variables are reported together.
func (e *Engine) Render(text string, vars map[string]any) (string, error) {
	if err := e.ValidateContext(text, vars); err != nil {
		return "", err
	}

	return e.templatePattern.ReplaceAllStringFunc(text, func(placeholder string) string {
		name := e.templatePattern.FindStringSubmatch(placeholder)[1]
		return formatValue(vars[name])
	}), nil
}

// Variables returns the names used in text, sorted.
func (e *Engine) Variables(text string) []string {
	found := make(map[string]bool)
	for _, match := range e.templatePattern.FindAllStringSubmatch(text, -1) {
		found[match[1]] = true
	}
	return sortedKeys(found)
}

// ValidateContext ensures all required variables are present in vars
func (e *Engine) ValidateContext(text string, vars map[string]any) error {
	var missing []string
	for _, name := range e.Variables(text) {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing template variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Unused returns the names in vars that text never refers to, sorted.
func (e *Engine) Unused(text string, vars map[string]any) []string {
	used := make(map[string]bool)
	for _, name := range e.Variables(text) {
		used[name] = true
	}
	unused := make(map[string]bool)
	for name := range vars {
		if !used[name] {
			unused[name] = true
		}
	}
	return sortedKeys(unused)
}

func formatValue(v any) string {
	switch r := v.(type) {
	case string:
		return r
	case int:
		return strconv.Itoa(r)
	case int64:
		return strconv.FormatInt(r, 10)
	case float64:
		return strconv.FormatFloat(r, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(r)
	default:
		return fmt.Sprintf("%v", r)
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

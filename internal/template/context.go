package template

import (
	"fmt"
	"strings"
)

// MergeContexts merges multiple contexts into a single context
// Later contexts override values from earlier contexts
func MergeContexts(contexts ...map[string]any) map[string]any {
	result := make(map[string]any)

	for _, ctx := range contexts {
		for key, value := range ctx {
			result[key] = value
		}
	}

	return result
}

// ParseAssignments turns name=value pairs, as given to --var, into a
// context. Values stay strings.
func ParseAssignments(pairs []string) (map[string]any, error) {
	result := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected name=value", pair)
		}
		result[name] = value
	}
	return result, nil
}

package definition

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"
)

func useNumber(d *json.Decoder) *json.Decoder {
	d.UseNumber()
	return d
}

// ParseYAML decodes a YAML or JSON definition. Unknown keys are an error.
func ParseYAML(content []byte) (*Definition, error) {
	var def Definition
	if err := yaml.UnmarshalStrict(content, &def, useNumber); err != nil {
		return nil, fmt.Errorf("decoding definition: %w", err)
	}
	if err := def.normalize(); err != nil {
		return nil, err
	}
	return &def, nil
}

// parseYAMLVars decodes a variable file holding a flat mapping.
func parseYAMLVars(content []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw, useNumber); err != nil {
		return nil, fmt.Errorf("decoding variables: %w", err)
	}
	vars, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	if vars == nil {
		return map[string]any{}, nil
	}
	return vars.(map[string]any), nil
}

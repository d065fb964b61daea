package definition

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mcscript/internal/template"
	"mcscript/pkg/logging"
)

const subsystem = "Definition"

// Format is the syntax of a definition or variable file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("unsupported definition file %s, expected .yaml, .yml, .json or .hcl", path)
	}
}

// Parse substitutes vars into content and decodes it. Variables the file
// never refers to are logged.
func Parse(content []byte, format Format, filename string, vars map[string]any) (*Definition, error) {
	engine := template.New()
	rendered, err := engine.Render(string(content), vars)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if unused := engine.Unused(string(content), vars); len(unused) > 0 {
		logging.Warn(subsystem, "%s does not use the variables %s", filename, strings.Join(unused, ", "))
	}

	var def *Definition
	switch format {
	case FormatHCL:
		def, err = ParseHCL([]byte(rendered), filename)
	case FormatYAML, FormatJSON:
		def, err = ParseYAML([]byte(rendered))
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		return nil, fmt.Errorf("%s: definition has no name", filename)
	}
	return def, nil
}

// Load reads the definition at path.
func Load(path string, vars map[string]any) (*Definition, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition: %w", err)
	}

	def, err := Parse(content, format, path, vars)
	if err != nil {
		return nil, err
	}
	logging.Debug(subsystem, "Loaded %s from %s with %d components", def.Name, path, len(def.Components))
	return def, nil
}

// LoadVars reads the variable files (YAML, JSON or HCL) in order and merges the
// assignments on top, assignments winning.
func LoadVars(varFiles []string, assignments []string) (map[string]any, error) {
	contexts := make([]map[string]any, 0, len(varFiles)+1)
	for _, path := range varFiles {
		format, err := FormatOf(path)
		if err != nil {
			return nil, err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading variable file: %w", err)
		}

		var vars map[string]any
		if format == FormatHCL {
			vars, err = parseHCLVars(content, path)
		} else {
			vars, err = parseYAMLVars(content)
		}
		if err != nil {
			return nil, err
		}
		contexts = append(contexts, vars)
	}

	cli, err := template.ParseAssignments(assignments)
	if err != nil {
		return nil, err
	}
	contexts = append(contexts, cli)
	return template.MergeContexts(contexts...), nil
}

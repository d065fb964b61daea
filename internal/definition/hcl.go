package definition

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

type hclFile struct {
	Name       string         `hcl:"name"`
	Author     string         `hcl:"author,optional"`
	Origin     string         `hcl:"origin,optional"`
	Parameters []hclParameter `hcl:"parameter,block"`
	Declares   []hclDeclare   `hcl:"declare,block"`
	Initialize string         `hcl:"initialize,optional"`
	Trace      string         `hcl:"trace,optional"`
	Finally    string         `hcl:"finally,optional"`
	Components []hclComponent `hcl:"component,block"`
}

type hclParameter struct {
	Name    string     `hcl:"name,label"`
	Type    string     `hcl:"type,optional"`
	Value   *cty.Value `hcl:"value,optional"`
	Comment string     `hcl:"comment,optional"`
}

type hclDeclare struct {
	Name    string     `hcl:"name,label"`
	Type    string     `hcl:"type"`
	Value   *cty.Value `hcl:"value,optional"`
	Array   int        `hcl:"array,optional"`
	Comment string     `hcl:"comment,optional"`
}

type hclComponent struct {
	Name            string     `hcl:"name,label"`
	Type            string     `hcl:"type"`
	Before          string     `hcl:"before,optional"`
	After           string     `hcl:"after,optional"`
	At              *cty.Value `hcl:"at,optional"`
	AtRelative      string     `hcl:"at_relative,optional"`
	Rotated         *cty.Value `hcl:"rotated,optional"`
	RotatedRelative string     `hcl:"rotated_relative,optional"`
	Relative        string     `hcl:"relative,optional"`
	Parameters      *cty.Value `hcl:"parameters,optional"`
	When            string     `hcl:"when,optional"`
	Extend          string     `hcl:"extend,optional"`
	Group           string     `hcl:"group,optional"`
	Jump            string     `hcl:"jump,optional"`
	Split           int        `hcl:"split,optional"`
	Comment         string     `hcl:"comment,optional"`
	CCodeBefore     string     `hcl:"c_code_before,optional"`
	CCodeAfter      string     `hcl:"c_code_after,optional"`
}

// ParseHCL decodes an HCL definition. filename is used in diagnostics.
func ParseHCL(content []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", filename, diags.Error())
	}
	return raw.definition()
}

func (f *hclFile) definition() (*Definition, error) {
	def := &Definition{
		Name:       f.Name,
		Author:     f.Author,
		Origin:     f.Origin,
		Initialize: f.Initialize,
		Trace:      f.Trace,
		Finally:    f.Finally,
	}

	for _, p := range f.Parameters {
		value, err := optionalValue(p.Value)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		def.Parameters = append(def.Parameters, Parameter{Name: p.Name, Type: p.Type, Value: value, Comment: p.Comment})
	}

	for _, d := range f.Declares {
		value, err := optionalValue(d.Value)
		if err != nil {
			return nil, fmt.Errorf("declare %s: %w", d.Name, err)
		}
		def.Declares = append(def.Declares, Declare{Name: d.Name, Type: d.Type, Value: value, Array: d.Array, Comment: d.Comment})
	}

	for _, c := range f.Components {
		comp := Component{
			Name:            c.Name,
			Type:            c.Type,
			Before:          c.Before,
			After:           c.After,
			AtRelative:      c.AtRelative,
			RotatedRelative: c.RotatedRelative,
			Relative:        c.Relative,
			When:            c.When,
			Extend:          c.Extend,
			Group:           c.Group,
			Jump:            c.Jump,
			Split:           c.Split,
			Comment:         c.Comment,
			CCodeBefore:     c.CCodeBefore,
			CCodeAfter:      c.CCodeAfter,
		}

		var err error
		if comp.At, err = optionalList(c.At); err != nil {
			return nil, fmt.Errorf("component %s at: %w", c.Name, err)
		}
		if comp.Rotated, err = optionalList(c.Rotated); err != nil {
			return nil, fmt.Errorf("component %s rotated: %w", c.Name, err)
		}
		params, err := optionalValue(c.Parameters)
		if err != nil {
			return nil, fmt.Errorf("component %s parameters: %w", c.Name, err)
		}
		if params != nil {
			m, ok := params.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("component %s parameters must be an object", c.Name)
			}
			comp.Parameters = m
		}
		def.Components = append(def.Components, comp)
	}
	return def, nil
}

func optionalValue(v *cty.Value) (any, error) {
	if v == nil {
		return nil, nil
	}
	return fromCty(*v)
}

func optionalList(v *cty.Value) ([]any, error) {
	value, err := optionalValue(v)
	if err != nil || value == nil {
		return nil, err
	}
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list")
	}
	return list, nil
}

// parseHCLVars reads a variable file of top level attributes.
func parseHCLVars(content []byte, filename string) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read variables from %s: %s", filename, diags.Error())
	}

	vars := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		value, diags := attr.Expr.Value(&hcl.EvalContext{})
		if diags.HasErrors() {
			return nil, fmt.Errorf("variable %s in %s: %s", name, filename, diags.Error())
		}
		converted, err := fromCty(value)
		if err != nil {
			return nil, fmt.Errorf("variable %s in %s: %w", name, filename, err)
		}
		vars[name] = converted
	}
	return vars, nil
}

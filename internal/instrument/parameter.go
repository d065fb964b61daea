package instrument

import (
	"fmt"
	"io"
	"strings"
)

// Parameter is an input parameter of the instrument, given on the mcrun
// command line.
type Parameter struct {
	// Type is the C type (double, int, string). Empty leaves it to McStas.
	Type    string
	Name    string
	Value   any // default, nil for none
	Comment string
}

// ParameterOption configures a Parameter.
type ParameterOption func(*Parameter)

// ParameterValue sets the default value.
func ParameterValue(v any) ParameterOption {
	return func(p *Parameter) {
		p.Value = v
	}
}

// ParameterComment sets the comment written after the declaration.
func ParameterComment(c string) ParameterOption {
	return func(p *Parameter) {
		p.Comment = c
	}
}

// NewParameter validates the name and builds a Parameter.
func NewParameter(typ, name string, opts ...ParameterOption) (*Parameter, error) {
	if !IsLegalIdentifier(name) {
		return nil, nameError(ErrIllegalName, fmt.Sprintf(
			"The given parameter name: %q is not a legal c variable name, and cannot be used in McStas.", name))
	}
	p := &Parameter{Type: typ, Name: name}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// write emits the declaration followed by stop, the comment and a newline.
func (p *Parameter) write(w io.Writer, stop string) error {
	var b strings.Builder
	if p.Type != "" {
		b.WriteString(p.Type)
		b.WriteString(" ")
	}
	b.WriteString(p.Name)
	if p.Value != nil {
		b.WriteString(" = ")
		switch {
		case isInteger(p.Value):
			b.WriteString(formatD(p.Value))
		case isFloat(p.Value):
			b.WriteString(formatG(p.Value))
		default:
			b.WriteString(FormatValue(p.Value))
		}
	}
	b.WriteString(stop)
	if p.Comment != "" {
		b.WriteString("// ")
		b.WriteString(p.Comment)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// DeclareVariable is a C variable in the DECLARE section.
type DeclareVariable struct {
	Type string
	// Name may carry leading pointer stars or an address-of sign.
	Name string
	// Value is the initial value: a number, a C expression string or, for
	// arrays, a list of numbers. nil leaves the variable uninitialised.
	Value any
	// Array is the array length, 0 for scalars.
	Array   int
	Comment string
}

// DeclareOption configures a DeclareVariable.
type DeclareOption func(*DeclareVariable)

// DeclareValue sets the initial value.
func DeclareValue(v any) DeclareOption {
	return func(d *DeclareVariable) {
		d.Value = v
	}
}

// DeclareArray makes the variable an array of length n.
func DeclareArray(n int) DeclareOption {
	return func(d *DeclareVariable) {
		d.Array = n
	}
}

// DeclareComment sets the comment written after the declaration.
func DeclareComment(c string) DeclareOption {
	return func(d *DeclareVariable) {
		d.Comment = c
	}
}

// NewDeclareVariable validates the name and builds a DeclareVariable.
func NewDeclareVariable(typ, name string, opts ...DeclareOption) (*DeclareVariable, error) {
	if !IsLegalIdentifier(declaredName(name)) {
		return nil, nameError(ErrIllegalName, fmt.Sprintf(
			"The given parameter name: %q is not a legal c variable name, and cannot be used in McStas.", name))
	}
	d := &DeclareVariable{Type: typ, Name: name}
	for _, opt := range opts {
		opt(d)
	}
	if d.Array < 0 {
		return nil, &InputError{Message: fmt.Sprintf("array length of %s must not be negative, got %d", name, d.Array)}
	}
	if list, ok := listValues(d.Value); ok && len(list) == 0 {
		return nil, &InputError{Message: fmt.Sprintf("initial value list of %s is empty", name)}
	}
	return d, nil
}

// BaseName returns the variable name without pointer or address markers.
func (d *DeclareVariable) BaseName() string {
	return declaredName(d.Name)
}

func (d *DeclareVariable) comment() string {
	if d.Comment == "" {
		return ""
	}
	return " // " + d.Comment
}

// line returns the declaration without a trailing newline.
func (d *DeclareVariable) line() string {
	switch {
	case d.Value == nil && d.Array == 0:
		return fmt.Sprintf("%s %s;%s", d.Type, d.Name, d.comment())
	case d.Array == 0:
		value := formatG(d.Value)
		if d.Type == "int" {
			value = formatD(d.Value)
		}
		return fmt.Sprintf("%s %s = %s;%s", d.Type, d.Name, value, d.comment())
	case d.Value == nil:
		return fmt.Sprintf("%s %s[%d];%s", d.Type, d.Name, d.Array, d.comment())
	}

	values, isList := listValues(d.Value)
	if !isList {
		return fmt.Sprintf("%s %s[%d] = %s;%s", d.Type, d.Name, d.Array, FormatValue(d.Value), d.comment())
	}
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = formatG(v)
	}
	return fmt.Sprintf("%s %s[%d] = {%s};%s", d.Type, d.Name, d.Array, strings.Join(formatted, ","), d.comment())
}

func listValues(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []float64:
		out := make([]any, len(x))
		for i, f := range x {
			out[i] = f
		}
		return out, true
	case []int:
		out := make([]any, len(x))
		for i, n := range x {
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}

package instrument

import (
	"fmt"
	"sort"

	"mcscript/internal/componentreader"
)

// Component is one instance of a component type placed in an instrument.
type Component struct {
	name string
	info *componentreader.Info

	at               Vector
	atRelative       Reference
	rotated          Vector
	rotatedRelative  Reference
	rotatedSpecified bool

	when        string
	extend      string
	group       string
	jump        string
	split       int
	comment     string
	cCodeBefore string
	cCodeAfter  string

	values map[string]any
}

// ComponentOption configures a Component when it is created.
type ComponentOption func(*Component) error

// At sets the position.
func At(v Vector) ComponentOption {
	return func(c *Component) error {
		c.at = v
		return nil
	}
}

// AtRelative sets the component the position is relative to.
func AtRelative(ref string) ComponentOption {
	return func(c *Component) error {
		c.atRelative = RelativeTo(ref)
		return nil
	}
}

// Rotated sets the rotation.
func Rotated(v Vector) ComponentOption {
	return func(c *Component) error {
		c.rotated = v
		c.rotatedSpecified = true
		return nil
	}
}

// RotatedRelative sets the component the rotation is relative to.
func RotatedRelative(ref string) ComponentOption {
	return func(c *Component) error {
		c.rotatedRelative = RelativeTo(ref)
		c.rotatedSpecified = true
		return nil
	}
}

// Relative makes both position and rotation relative to ref.
func Relative(ref string) ComponentOption {
	return func(c *Component) error {
		c.atRelative = RelativeTo(ref)
		c.rotatedRelative = RelativeTo(ref)
		c.rotatedSpecified = true
		return nil
	}
}

// When sets the C condition deciding whether the component is active.
func When(expr string) ComponentOption {
	return func(c *Component) error {
		c.when = expr
		return nil
	}
}

// Extend sets the initial EXTEND code.
func Extend(code string) ComponentOption {
	return func(c *Component) error {
		c.extend = code + "\n"
		return nil
	}
}

// Group puts the component in a GROUP.
func Group(name string) ComponentOption {
	return func(c *Component) error {
		c.group = name
		return nil
	}
}

// Jump sets everything following the JUMP keyword.
func Jump(s string) ComponentOption {
	return func(c *Component) error {
		c.jump = s
		return nil
	}
}

// Split sets the SPLIT count.
func Split(n int) ComponentOption {
	return func(c *Component) error {
		c.split = n
		return nil
	}
}

// Comment sets the comment written above the component.
func Comment(s string) ComponentOption {
	return func(c *Component) error {
		c.comment = s
		return nil
	}
}

// CCodeBefore sets C code written before the component.
func CCodeBefore(code string) ComponentOption {
	return func(c *Component) error {
		c.cCodeBefore = code
		return nil
	}
}

// CCodeAfter sets C code written after the component.
func CCodeAfter(code string) ComponentOption {
	return func(c *Component) error {
		c.cCodeAfter = code
		return nil
	}
}

// Parameters assigns parameter values.
func Parameters(values map[string]any) ComponentOption {
	return func(c *Component) error {
		return c.SetParameters(values)
	}
}

// NewComponent creates an instance of the component type described by info,
// placed at the origin with absolute references.
func NewComponent(name string, info *componentreader.Info, opts ...ComponentOption) (*Component, error) {
	if !IsLegalIdentifier(name) {
		return nil, nameError(ErrIllegalName, fmt.Sprintf(
			"The given component name: %q is not a legal c variable name, and cannot be used in McStas.", name))
	}
	if info == nil {
		return nil, &InputError{Message: fmt.Sprintf("component %s has no type information", name)}
	}

	c := &Component{
		name:    name,
		info:    info,
		at:      Origin,
		rotated: Origin,
		values:  make(map[string]any),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Component) Name() string { return c.name }

// Type returns the component type, e.g. Arm or Guide_gravity.
func (c *Component) Type() string { return c.info.Name }

func (c *Component) Category() string { return c.info.Category }

// ParameterNames returns the parameters of the type in definition order.
func (c *Component) ParameterNames() []string {
	return append([]string(nil), c.info.ParameterNames...)
}

// ParameterDefault returns the default of name; nil means required.
func (c *Component) ParameterDefault(name string) any {
	return c.info.ParameterDefaults[name]
}

// ParameterUnit returns the documented unit of name.
func (c *Component) ParameterUnit(name string) (string, bool) {
	u, ok := c.info.ParameterUnits[name]
	return u, ok
}

// ParameterComment returns the documented comment of name.
func (c *Component) ParameterComment(name string) string {
	return c.info.ParameterComments[name]
}

// Parameter returns the value assigned to name.
func (c *Component) Parameter(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// SetParameter assigns a value; nil clears it again.
func (c *Component) SetParameter(name string, value any) error {
	if !c.info.HasParameter(name) {
		return c.unknownParameter(name)
	}
	if value == nil {
		delete(c.values, name)
		return nil
	}
	c.values[name] = value
	return nil
}

// SetParameters assigns several values. Nothing is assigned when one of the
// names is unknown.
func (c *Component) SetParameters(values map[string]any) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !c.info.HasParameter(name) {
			return c.unknownParameter(name)
		}
	}
	for _, name := range names {
		if err := c.SetParameter(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Component) unknownParameter(name string) error {
	return nameError(ErrNotFound, fmt.Sprintf(
		"No parameter called %s in component named %s of component type %s.", name, c.name, c.Type()))
}

// MissingRequired lists required parameters that have no value yet.
func (c *Component) MissingRequired() []string {
	var missing []string
	for _, name := range c.info.ParameterNames {
		if _, set := c.values[name]; !set && c.info.Required(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// At returns the position and its reference.
func (c *Component) At() (Vector, Reference) {
	return c.at, c.atRelative
}

// SetAt sets the position. A non-empty relative replaces the reference;
// "ABSOLUTE" resets it.
func (c *Component) SetAt(v Vector, relative string) {
	c.at = v
	if relative != "" {
		c.atRelative = RelativeTo(relative)
	}
}

// Rotated returns the rotation and its reference.
func (c *Component) Rotated() (Vector, Reference) {
	return c.rotated, c.rotatedRelative
}

// RotatedSpecified reports whether a ROTATED clause is written.
func (c *Component) RotatedSpecified() bool {
	return c.rotatedSpecified
}

// SetRotated sets the rotation. relative behaves as in SetAt.
func (c *Component) SetRotated(v Vector, relative string) {
	c.rotated = v
	c.rotatedSpecified = true
	if relative != "" {
		c.rotatedRelative = RelativeTo(relative)
	}
}

// SetRelative sets the reference of both position and rotation.
func (c *Component) SetRelative(relative string) {
	c.atRelative = RelativeTo(relative)
	c.rotatedRelative = RelativeTo(relative)
}

// RotationReference is the frame the rotation is expressed in: the
// rotation reference when a rotation was given, the position reference
// otherwise.
func (c *Component) RotationReference() Reference {
	if c.rotatedSpecified {
		return c.rotatedRelative
	}
	return c.atRelative
}

func (c *Component) When() string { return c.when }

func (c *Component) SetWhen(expr string) { c.when = expr }

// Extend returns the EXTEND code, one line per appended string.
func (c *Component) Extend() string { return c.extend }

// AppendExtend adds a line of C code to the EXTEND block.
func (c *Component) AppendExtend(line string) { c.extend += line + "\n" }

func (c *Component) Group() string { return c.group }

func (c *Component) SetGroup(name string) { c.group = name }

func (c *Component) Jump() string { return c.jump }

func (c *Component) SetJump(s string) { c.jump = s }

func (c *Component) Split() int { return c.split }

func (c *Component) SetSplit(n int) { c.split = n }

func (c *Component) Comment() string { return c.comment }

func (c *Component) SetComment(s string) { c.comment = s }

func (c *Component) CCodeBefore() string { return c.cCodeBefore }

func (c *Component) SetCCodeBefore(code string) { c.cCodeBefore = code }

func (c *Component) CCodeAfter() string { return c.cCodeAfter }

func (c *Component) SetCCodeAfter(code string) { c.cCodeAfter = code }

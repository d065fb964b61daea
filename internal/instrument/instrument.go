package instrument

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"mcscript/internal/componentreader"
	"mcscript/pkg/logging"
)

const (
	// DefaultAuthor is written to the header when no author is given.
	DefaultAuthor = "Go McStas Instrument Generator"
	// DefaultOrigin is written to the header when no origin is given.
	DefaultOrigin = "ESS DMSC"
	// DefaultLineLength is the preview width used without configuration.
	DefaultLineLength = 93
)

// Catalog provides component type information.
type Catalog interface {
	ReadName(name string) (*componentreader.Info, error)
	ShowCategories(w io.Writer)
	ShowComponentsInCategory(w io.Writer, category string, lineLength int)
}

// Instrument is a McStas instrument under construction.
type Instrument struct {
	name       string
	author     string
	origin     string
	mcrunPath  string
	mcstasPath string
	lineLength int

	catalog Catalog
	now     func() time.Time

	parameters []*Parameter
	declares   []*DeclareVariable
	components []*Component
	types      map[string]*componentreader.Info

	initializeSection string
	traceSection      string
	finallySection    string
}

// Option configures an Instrument.
type Option func(*Instrument)

func WithAuthor(author string) Option {
	return func(in *Instrument) { in.author = author }
}

func WithOrigin(origin string) Option {
	return func(in *Instrument) { in.origin = origin }
}

// WithMcRunPath sets the directory holding the mcrun executable.
func WithMcRunPath(path string) Option {
	return func(in *Instrument) { in.mcrunPath = path }
}

// WithMcStasPath sets the McStas installation scanned for components when
// no catalog is given.
func WithMcStasPath(path string) Option {
	return func(in *Instrument) { in.mcstasPath = path }
}

// WithLineLength sets the width of the previews.
func WithLineLength(n int) Option {
	return func(in *Instrument) { in.lineLength = n }
}

// WithCatalog sets where component types are looked up.
func WithCatalog(c Catalog) Option {
	return func(in *Instrument) { in.catalog = c }
}

// WithClock replaces time.Now for the header date.
func WithClock(now func() time.Time) Option {
	return func(in *Instrument) { in.now = now }
}

// New creates an empty instrument.
func New(name string, opts ...Option) (*Instrument, error) {
	if !IsLegalIdentifier(name) {
		return nil, nameError(ErrIllegalName, fmt.Sprintf(
			"The given instrument name: %q is not a legal c variable name, and cannot be used in McStas.", name))
	}

	in := &Instrument{
		name:       name,
		author:     DefaultAuthor,
		origin:     DefaultOrigin,
		lineLength: DefaultLineLength,
		now:        time.Now,
		types:      make(map[string]*componentreader.Info),

		initializeSection: "// Start of initialize for generated " + name + "\n",
		traceSection:      "// Start of trace section for generated " + name + "\n",
		finallySection:    "// Start of finally for generated " + name + "\n",
	}
	for _, opt := range opts {
		opt(in)
	}
	return in, nil
}

func (in *Instrument) Name() string       { return in.name }
func (in *Instrument) Author() string     { return in.author }
func (in *Instrument) Origin() string     { return in.origin }
func (in *Instrument) McRunPath() string  { return in.mcrunPath }
func (in *Instrument) McStasPath() string { return in.mcstasPath }
func (in *Instrument) LineLength() int    { return in.lineLength }

// AddParameter adds an instrument input parameter. typ may be empty.
func (in *Instrument) AddParameter(typ, name string, opts ...ParameterOption) (*Parameter, error) {
	if in.variableInUse(name) {
		return nil, nameError(ErrDuplicate, fmt.Sprintf("A parameter or declared variable named %s already exists.", name))
	}
	p, err := NewParameter(typ, name, opts...)
	if err != nil {
		return nil, err
	}
	in.parameters = append(in.parameters, p)
	return p, nil
}

// AddParameterNamed adds an untyped input parameter, leaving the type to
// McStas.
func (in *Instrument) AddParameterNamed(name string, opts ...ParameterOption) (*Parameter, error) {
	return in.AddParameter("", name, opts...)
}

// Parameters returns the input parameters in declaration order.
func (in *Instrument) Parameters() []*Parameter {
	return slices.Clone(in.parameters)
}

// AddDeclareVar adds a variable to the DECLARE section.
func (in *Instrument) AddDeclareVar(typ, name string, opts ...DeclareOption) (*DeclareVariable, error) {
	if in.variableInUse(declaredName(name)) {
		return nil, nameError(ErrDuplicate, fmt.Sprintf("A parameter or declared variable named %s already exists.", declaredName(name)))
	}
	d, err := NewDeclareVariable(typ, name, opts...)
	if err != nil {
		return nil, err
	}
	in.declares = append(in.declares, d)
	return d, nil
}

// DeclareVariables returns the declared variables in declaration order.
func (in *Instrument) DeclareVariables() []*DeclareVariable {
	return slices.Clone(in.declares)
}

func (in *Instrument) variableInUse(name string) bool {
	for _, p := range in.parameters {
		if p.Name == name {
			return true
		}
	}
	for _, d := range in.declares {
		if d.BaseName() == name {
			return true
		}
	}
	return false
}

func (in *Instrument) AppendInitialize(line string)          { in.initializeSection += line + "\n" }
func (in *Instrument) AppendInitializeNoNewLine(text string) { in.initializeSection += text }
func (in *Instrument) AppendTrace(line string)               { in.traceSection += line + "\n" }
func (in *Instrument) AppendTraceNoNewLine(text string)      { in.traceSection += text }
func (in *Instrument) AppendFinally(line string)             { in.finallySection += line + "\n" }
func (in *Instrument) AppendFinallyNoNewLine(text string)    { in.finallySection += text }

func (in *Instrument) InitializeSection() string { return in.initializeSection }
func (in *Instrument) TraceSection() string      { return in.traceSection }
func (in *Instrument) FinallySection() string    { return in.finallySection }

func (in *Instrument) componentCatalog() (Catalog, error) {
	if in.catalog != nil {
		return in.catalog, nil
	}
	reader, err := componentreader.New(in.mcstasPath)
	if err != nil {
		return nil, err
	}
	in.catalog = reader
	return reader, nil
}

func (in *Instrument) componentType(typ string) (*componentreader.Info, error) {
	if info, ok := in.types[typ]; ok {
		return info, nil
	}

	catalog, err := in.componentCatalog()
	if err != nil {
		return nil, err
	}
	info, err := catalog.ReadName(typ)
	if err != nil {
		if errors.Is(err, componentreader.ErrUnknownComponent) {
			return nil, nameError(ErrNotFound, fmt.Sprintf(
				"No component named %s in McStas installation or current work directory.", typ))
		}
		return nil, err
	}
	logging.Debug("Instrument", "Loaded component type %s from category %s", typ, info.Category)
	in.types[typ] = info
	return info, nil
}

func (in *Instrument) newComponent(name, typ string, opts []ComponentOption) (*Component, error) {
	if in.index(name) >= 0 {
		return nil, nameError(ErrDuplicate, fmt.Sprintf(
			"Component name %q used twice, McStas does not allow this. Rename or remove one instance of this name.", name))
	}
	info, err := in.componentType(typ)
	if err != nil {
		return nil, err
	}
	return NewComponent(name, info, opts...)
}

// AddComponent appends a component of type typ.
func (in *Instrument) AddComponent(name, typ string, opts ...ComponentOption) (*Component, error) {
	c, err := in.newComponent(name, typ, opts)
	if err != nil {
		return nil, err
	}
	in.components = append(in.components, c)
	return c, nil
}

// AddComponentBefore inserts a component in front of the component named
// before.
func (in *Instrument) AddComponentBefore(before, name, typ string, opts ...ComponentOption) (*Component, error) {
	at := in.index(before)
	if at < 0 {
		return nil, in.notFound(before)
	}
	c, err := in.newComponent(name, typ, opts)
	if err != nil {
		return nil, err
	}
	in.components = slices.Insert(in.components, at, c)
	return c, nil
}

// AddComponentAfter inserts a component behind the component named after.
func (in *Instrument) AddComponentAfter(after, name, typ string, opts ...ComponentOption) (*Component, error) {
	at := in.index(after)
	if at < 0 {
		return nil, in.notFound(after)
	}
	c, err := in.newComponent(name, typ, opts)
	if err != nil {
		return nil, err
	}
	in.components = slices.Insert(in.components, at+1, c)
	return c, nil
}

// RemoveComponent deletes the component named name.
func (in *Instrument) RemoveComponent(name string) error {
	at := in.index(name)
	if at < 0 {
		return in.notFound(name)
	}
	in.components = slices.Delete(in.components, at, at+1)
	return nil
}

func (in *Instrument) index(name string) int {
	return slices.IndexFunc(in.components, func(c *Component) bool {
		return c.name == name
	})
}

func (in *Instrument) notFound(name string) error {
	return nameError(ErrNotFound, fmt.Sprintf("No component was found with name %s", name))
}

// Components returns the components in trace order.
func (in *Instrument) Components() []*Component {
	return slices.Clone(in.components)
}

// Component returns the component named name.
func (in *Instrument) Component(name string) (*Component, error) {
	at := in.index(name)
	if at < 0 {
		return nil, in.notFound(name)
	}
	return in.components[at], nil
}

// LastComponent returns the component added last in trace order.
func (in *Instrument) LastComponent() (*Component, error) {
	if len(in.components) == 0 {
		return nil, nameError(ErrNotFound, "The instrument does not contain any components.")
	}
	return in.components[len(in.components)-1], nil
}

func (in *Instrument) withComponent(name string, fn func(*Component) error) error {
	c, err := in.Component(name)
	if err != nil {
		return err
	}
	return fn(c)
}

// SetComponentParameter assigns parameter values of the named component.
func (in *Instrument) SetComponentParameter(name string, values map[string]any) error {
	return in.withComponent(name, func(c *Component) error {
		return c.SetParameters(values)
	})
}

// SetComponentAt sets position and, when relative is not empty, its
// reference.
func (in *Instrument) SetComponentAt(name string, v Vector, relative string) error {
	return in.withComponent(name, func(c *Component) error {
		c.SetAt(v, relative)
		return nil
	})
}

// SetComponentRotated sets rotation and, when relative is not empty, its
// reference.
func (in *Instrument) SetComponentRotated(name string, v Vector, relative string) error {
	return in.withComponent(name, func(c *Component) error {
		c.SetRotated(v, relative)
		return nil
	})
}

func (in *Instrument) SetComponentRelative(name, relative string) error {
	return in.withComponent(name, func(c *Component) error {
		c.SetRelative(relative)
		return nil
	})
}

func (in *Instrument) SetComponentWhen(name, expr string) error {
	return in.withComponent(name, func(c *Component) error {
		c.SetWhen(expr)
		return nil
	})
}

func (in *Instrument) AppendComponentExtend(name, line string) error {
	return in.withComponent(name, func(c *Component) error {
		c.AppendExtend(line)
		return nil
	})
}

func (in *Instrument) SetComponentGroup(name, group string) error {
	return in.withComponent(name, func(c *Component) error {
		c.SetGroup(group)
		return nil
	})
}

func (in *Instrument) SetComponentJump(name, jump string) error {
	return in.withComponent(name, func(c *Component) error {
		c.SetJump(jump)
		return nil
	})
}

func (in *Instrument) SetComponentSplit(name string, n int) error {
	return in.withComponent(name, func(c *Component) error {
		c.SetSplit(n)
		return nil
	})
}

func (in *Instrument) SetComponentComment(name, comment string) error {
	return in.withComponent(name, func(c *Component) error {
		c.SetComment(comment)
		return nil
	})
}

func (in *Instrument) SetComponentCCodeBefore(name, code string) error {
	return in.withComponent(name, func(c *Component) error {
		c.SetCCodeBefore(code)
		return nil
	})
}

func (in *Instrument) SetComponentCCodeAfter(name, code string) error {
	return in.withComponent(name, func(c *Component) error {
		c.SetCCodeAfter(code)
		return nil
	})
}

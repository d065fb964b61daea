package componentreader

// Info describes the parameters a component type accepts.
type Info struct {
	Name     string
	Category string
	Path     string

	// ParameterNames keeps definition order.
	ParameterNames []string
	// ParameterDefaults holds the parsed default of every parameter. A nil
	// value marks a required parameter.
	ParameterDefaults map[string]any
	// ParameterTypes is one of double, int, string or vector.
	ParameterTypes    map[string]string
	ParameterComments map[string]string
	ParameterUnits    map[string]string
}

func newInfo() *Info {
	return &Info{
		ParameterDefaults: make(map[string]any),
		ParameterTypes:    make(map[string]string),
		ParameterComments: make(map[string]string),
		ParameterUnits:    make(map[string]string),
	}
}

// HasParameter reports whether the component accepts a parameter called name.
func (i *Info) HasParameter(name string) bool {
	_, ok := i.ParameterTypes[name]
	return ok
}

// Required reports whether name has no default value.
func (i *Info) Required(name string) bool {
	v, ok := i.ParameterDefaults[name]
	return ok && v == nil
}

// Clone returns a deep copy so callers can adjust category or defaults
// without touching cached entries.
func (i *Info) Clone() *Info {
	c := newInfo()
	c.Name = i.Name
	c.Category = i.Category
	c.Path = i.Path
	c.ParameterNames = append([]string(nil), i.ParameterNames...)
	for k, v := range i.ParameterDefaults {
		c.ParameterDefaults[k] = v
	}
	for k, v := range i.ParameterTypes {
		c.ParameterTypes[k] = v
	}
	for k, v := range i.ParameterComments {
		c.ParameterComments[k] = v
	}
	for k, v := range i.ParameterUnits {
		c.ParameterUnits[k] = v
	}
	return c
}

func (i *Info) addParameter(name, typ string, def any) {
	if _, dup := i.ParameterTypes[name]; !dup {
		i.ParameterNames = append(i.ParameterNames, name)
	}
	i.ParameterTypes[name] = typ
	i.ParameterDefaults[name] = def
}

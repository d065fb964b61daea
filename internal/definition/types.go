package definition

// Definition is the format independent content of an instrument file.
type Definition struct {
	Name   string `json:"name"`
	Author string `json:"author,omitempty"`
	Origin string `json:"origin,omitempty"`

	Parameters []Parameter `json:"parameters,omitempty"`
	Declares   []Declare   `json:"declare,omitempty"`

	Initialize string `json:"initialize,omitempty"`
	Trace      string `json:"trace,omitempty"`
	Finally    string `json:"finally,omitempty"`

	Components []Component `json:"components,omitempty"`
}

// Parameter is an instrument input parameter.
type Parameter struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Value   any    `json:"value,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// Declare is a variable of the DECLARE section.
type Declare struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Value   any    `json:"value,omitempty"`
	Array   int    `json:"array,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// Component places one component in the trace.
type Component struct {
	Name string `json:"name"`
	Type string `json:"type"`

	// Before and After insert the component next to an existing one
	// instead of appending it.
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`

	At              []any  `json:"at,omitempty"`
	AtRelative      string `json:"at_relative,omitempty"`
	Rotated         []any  `json:"rotated,omitempty"`
	RotatedRelative string `json:"rotated_relative,omitempty"`
	// Relative sets both references.
	Relative string `json:"relative,omitempty"`

	Parameters map[string]any `json:"parameters,omitempty"`

	When        string `json:"when,omitempty"`
	Extend      string `json:"extend,omitempty"`
	Group       string `json:"group,omitempty"`
	Jump        string `json:"jump,omitempty"`
	Split       int    `json:"split,omitempty"`
	Comment     string `json:"comment,omitempty"`
	CCodeBefore string `json:"c_code_before,omitempty"`
	CCodeAfter  string `json:"c_code_after,omitempty"`
}

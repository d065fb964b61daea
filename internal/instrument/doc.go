// Package instrument holds the in-memory model of a McStas instrument and
// renders it to the McStas instrument file grammar.
//
// An Instrument keeps its input parameters, declared variables, the ordered
// list of component instances and the free text of the initialize, trace and
// finally sections. Component types are looked up in a Catalog (normally a
// componentreader.Reader) so that parameter names, defaults, units and
// comments are known when values are assigned.
//
// Rendering is byte exact: the output of Render is what mcrun compiles. The
// Print* and Show* methods produce aligned, optionally coloured previews for
// terminals.
//
//	instr, err := instrument.New("powder", instrument.WithCatalog(reader))
//	...
//	instr.AddParameter("double", "theta", instrument.ParameterValue(25.0))
//	src, err := instr.AddComponent("source", "Source_simple",
//		instrument.At(instrument.Vec(0, 0, 0), ""))
//	src.SetParameters(map[string]any{"radius": 0.02, "dist": 10})
//	err = instr.Render(os.Stdout)
package instrument

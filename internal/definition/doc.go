// Package definition reads declarative instrument files and builds
// instruments from them.
//
// Definitions are written in YAML, JSON or HCL. Before parsing, {{ name }}
// placeholders are substituted from variable files and command line
// assignments, so one definition can describe a family of instruments.
//
// A YAML definition looks like
//
//	name: demo
//	parameters:
//	  - name: wavelength
//	    type: double
//	    value: 3
//	components:
//	  - name: origin
//	    type: Progress_bar
//	  - name: source
//	    type: Source_simple
//	    at: [0, 0, 0]
//	    relative: origin
//	    parameters:
//	      radius: 0.1
//
// The HCL form uses parameter, declare and component blocks labelled with
// the name.
package definition

// Package componentreader discovers McStas component definitions and parses
// the parameter information out of their .comp files.
//
// A Reader scans a fixed set of category folders inside a McStas
// installation (sources, optics, samples, monitors, misc, contrib, obsolete
// and union), recursively, and then the .comp files of a work directory.
// Work directory components shadow installation components of the same name
// the same way mcrun resolves them.
//
// Parsing is lazy: ReadName reads one file when an instrument asks for a
// component type, and LoadAll parses everything concurrently.
package componentreader

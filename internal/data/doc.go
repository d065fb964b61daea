// Package data loads the output folder written by mcrun.
//
// A McStas data folder holds a mccode.sim file describing every monitor
// together with one data file per monitor. Load reads both and returns one
// McStasData per monitor in the order mccode.sim lists them.
//
// One dimensional monitors are stored as columns (x, I, I_err, N); two
// dimensional monitors as three blocks of rows headed by "# Data",
// "# Errors" and "# Events". Both end up in Array values with a shape.
//
// NameSearch and NamePlotOptions find datasets by component name, falling
// back to the data file name.
package data

// Package config manages the mcscript configuration file.
//
// The file is a small YAML document holding the location of the McStas
// installation, the directory containing the mcrun executable and the line
// width used by the console previews:
//
//	paths:
//	  mcrun_path: /usr/bin/
//	  mcstas_path: /usr/share/mcstas/2.5/
//	other:
//	  characters_per_line: 93
//
// A Configurator owns one such file. It writes defaults on first use and
// every setter rewrites the whole document.
package config

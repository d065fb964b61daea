// Package cli holds the pieces shared by mcscript commands.
//
// CommandFlags carries the persistent flags of the root command and turns
// them into Settings: the loaded configuration with command line overrides
// applied, ready to build instruments and component catalogs.
//
// Long running work such as an mcrun simulation is wrapped in RunWithSpinner,
// which shows a briandowns/spinner progress indicator unless quiet mode is
// enabled. Status lines are coloured with go-pretty's text package, and
// PlainTableWriter prints kubectl-style tables for listings that are meant
// to be piped into other tools.
package cli

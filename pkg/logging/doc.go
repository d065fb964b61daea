// Package logging provides subsystem-tagged structured logging for mcscript.
//
// It is a thin layer over log/slog. Every entry carries a "subsystem"
// attribute naming the part of the program that produced it
// (ComponentReader, Instrument, Mcrun, DataLoader, Config, Definition,
// Watch, CLI), and error entries carry an "error" attribute.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Debug("ComponentReader", "found %d components", n)
//	logging.Warn("Config", "configuration file %s missing, writing defaults", path)
//	logging.Error("Mcrun", err, "mcrun exited with code %d", code)
//
// Until InitForCLI is called nothing is written, so the library packages
// can log freely when embedded in other programs.
package logging

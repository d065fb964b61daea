package config

import "strings"

// Validate checks that the configuration can drive the tool.
func (c Config) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.Paths.McStasPath) == "" {
		errs.Add("paths.mcstas_path", "must not be empty")
	}
	if strings.TrimSpace(c.Paths.McRunPath) == "" {
		errs.Add("paths.mcrun_path", "must not be empty")
	}
	if c.Other.CharactersPerLine <= 0 {
		errs.Add("other.characters_per_line", "must be a positive number", c.Other.CharactersPerLine)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

package cli

import (
	"mcscript/internal/componentreader"
	"mcscript/internal/config"
	"mcscript/internal/instrument"
)

// Settings is the configuration in effect for one command.
type Settings struct {
	Config       config.Config
	Configurator *config.Configurator
	WorkDir      string
}

// Configurator opens the configuration file selected by --config-path,
// creating it with defaults when missing.
func (f *CommandFlags) Configurator() (*config.Configurator, error) {
	dir := f.ConfigPath
	if dir == "" {
		var err error
		dir, err = config.GetDefaultConfigDir()
		if err != nil {
			return nil, err
		}
	}
	return config.NewConfigurator(dir)
}

// Settings loads the configuration and applies the path overrides.
func (f *CommandFlags) Settings() (*Settings, error) {
	c, err := f.Configurator()
	if err != nil {
		return nil, err
	}
	cfg, err := c.Load()
	if err != nil {
		return nil, err
	}

	if f.McStasPath != "" {
		cfg.Paths.McStasPath = f.McStasPath
	}
	if f.McRunPath != "" {
		cfg.Paths.McRunPath = f.McRunPath
	}
	return &Settings{Config: cfg, Configurator: c, WorkDir: f.WorkDir}, nil
}

// Catalog scans the McStas installation and the work directory.
func (s *Settings) Catalog() (*componentreader.Reader, error) {
	var opts []componentreader.Option
	if s.WorkDir != "" {
		opts = append(opts, componentreader.WithWorkDir(s.WorkDir))
	}
	return componentreader.New(s.Config.Paths.McStasPath, opts...)
}

// InstrumentOptions configures new instruments from the settings, sharing
// catalog between them.
func (s *Settings) InstrumentOptions(catalog instrument.Catalog) []instrument.Option {
	return []instrument.Option{
		instrument.WithMcStasPath(s.Config.Paths.McStasPath),
		instrument.WithMcRunPath(s.Config.Paths.McRunPath),
		instrument.WithLineLength(s.Config.Other.CharactersPerLine),
		instrument.WithCatalog(catalog),
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mcscript/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/mcscript"
	configFileName = "configuration.yaml"
)

// GetDefaultConfigDir returns ~/.config/mcscript.
func GetDefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// Configurator reads and updates one configuration file.
type Configurator struct {
	path string
}

// NewConfigurator returns a Configurator for configuration.yaml inside dir,
// writing the default configuration when the file does not exist yet.
func NewConfigurator(dir string) (*Configurator, error) {
	return NewConfiguratorWithName(dir, configFileName)
}

// NewConfiguratorWithName is NewConfigurator with a custom file name.
func NewConfiguratorWithName(dir, fileName string) (*Configurator, error) {
	c := &Configurator{path: filepath.Join(dir, fileName)}

	_, err := os.Stat(c.path)
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, os.ErrNotExist):
		logging.Info("Config", "No configuration found at %s, writing defaults", c.path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, c.ioError(err)
		}
		if err := c.write(GetDefaultConfig()); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, c.ioError(err)
	}
}

// Path returns the location of the configuration file.
func (c *Configurator) Path() string {
	return c.path
}

// Load reads and validates the configuration file.
func (c *Configurator) Load() (Config, error) {
	cfg, err := c.read()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, ConfigurationError{
			FilePath:  c.path,
			ErrorType: "validation",
			Message:   err.Error(),
			Suggestions: []string{
				"run 'mcscript config show' to inspect the current values",
				"use the 'mcscript config set-*' commands to correct them",
			},
		}
	}
	logging.Debug("Config", "Loaded configuration from %s", c.path)
	return cfg, nil
}

// SetMcStasPath stores the McStas installation directory.
func (c *Configurator) SetMcStasPath(path string) error {
	return c.update(func(cfg *Config) error {
		if path == "" {
			return errors.New("mcstas path must not be empty")
		}
		cfg.Paths.McStasPath = path
		return nil
	})
}

// SetMcRunPath stores the directory containing mcrun.
func (c *Configurator) SetMcRunPath(path string) error {
	return c.update(func(cfg *Config) error {
		if path == "" {
			return errors.New("mcrun path must not be empty")
		}
		cfg.Paths.McRunPath = path
		return nil
	})
}

// SetLineLength stores the preview line width.
func (c *Configurator) SetLineLength(length int) error {
	return c.update(func(cfg *Config) error {
		if length <= 0 {
			return fmt.Errorf("line length must be positive, got %d", length)
		}
		cfg.Other.CharactersPerLine = length
		return nil
	})
}

func (c *Configurator) update(mutate func(*Config) error) error {
	cfg, err := c.read()
	if err != nil {
		return err
	}
	if err := mutate(&cfg); err != nil {
		return ConfigurationError{FilePath: c.path, ErrorType: "validation", Message: err.Error()}
	}
	return c.write(cfg)
}

func (c *Configurator) read() (Config, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return Config{}, c.ioError(err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, ConfigurationError{
			FilePath:    c.path,
			ErrorType:   "parse",
			Message:     "invalid YAML",
			Details:     err.Error(),
			Suggestions: []string{"delete the file to have the defaults written again"},
		}
	}
	return cfg, nil
}

func (c *Configurator) write(cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return c.ioError(err)
	}
	return nil
}

func (c *Configurator) ioError(err error) error {
	return ConfigurationError{FilePath: c.path, ErrorType: "io", Message: err.Error()}
}

// Package formatting renders dataset summaries and configuration for the
// command line in console, JSON, YAML or table form.
package formatting

import (
	"fmt"
	"io"
	"os"

	"mcscript/internal/config"
	"mcscript/internal/data"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatConsole, FormatJSON, FormatYAML, FormatTable:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unknown output format %q (use table, console, json or yaml)", s)
}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool // Suppress decorative elements
	// Output receives the formatted text, os.Stdout when nil.
	Output io.Writer
}

func (o Options) writer() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}

// Formatter renders the results of mcscript commands.
type Formatter interface {
	// FormatDatasets prints one summary per monitor.
	FormatDatasets(datasets []*data.McStasData) error
	// FormatConfig prints the configuration file contents.
	FormatConfig(cfg config.Config) error
	// FormatData prints any other value.
	FormatData(v interface{}) error

	SetOptions(options Options)
	GetOptions() Options
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

type factory struct{}

// CreateFormatter creates the appropriate formatter based on options
func (f *factory) CreateFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatConsole:
		fallthrough
	default:
		return NewConsoleFormatter(options)
	}
}

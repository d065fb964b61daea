package formatting

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"mcscript/internal/config"
	"mcscript/internal/data"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

func (f *YAMLFormatter) FormatDatasets(datasets []*data.McStasData) error {
	return f.FormatData(Summarize(datasets))
}

// FormatConfig writes the configuration in the layout of the file itself.
func (f *YAMLFormatter) FormatConfig(cfg config.Config) error {
	return f.FormatData(cfg)
}

// FormatData formats generic data as YAML
func (f *YAMLFormatter) FormatData(v interface{}) error {
	_, err := fmt.Fprint(f.options.writer(), f.marshal(v))
	return err
}

func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}

// marshal converts data to YAML string
func (f *YAMLFormatter) marshal(v interface{}) string {
	yamlBytes, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: \"Failed to format YAML: %v\"\n", err)
	}
	return string(yamlBytes)
}

package formatting

import (
	"encoding/json"
	"fmt"

	"mcscript/internal/config"
	"mcscript/internal/data"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

func (f *JSONFormatter) FormatDatasets(datasets []*data.McStasData) error {
	return f.FormatData(Summarize(datasets))
}

func (f *JSONFormatter) FormatConfig(cfg config.Config) error {
	return f.FormatData(cfg)
}

// FormatData formats generic data as JSON
func (f *JSONFormatter) FormatData(v interface{}) error {
	_, err := fmt.Fprintln(f.options.writer(), f.marshal(v))
	return err
}

func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

func (f *JSONFormatter) GetOptions() Options {
	return f.options
}

// marshal converts data to JSON string with appropriate formatting
func (f *JSONFormatter) marshal(v interface{}) string {
	if !f.options.Quiet {
		return PrettyJSON(v)
	}

	// Compact JSON for quiet mode
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "Failed to format JSON: %v"}`, err)
	}
	return string(jsonBytes)
}

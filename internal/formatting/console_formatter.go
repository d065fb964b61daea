package formatting

import (
	"fmt"

	"mcscript/internal/config"
	"mcscript/internal/data"
)

// ConsoleFormatter provides simple console output formatting
type ConsoleFormatter struct {
	options Options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options) Formatter {
	return &ConsoleFormatter{
		options: options,
	}
}

func (f *ConsoleFormatter) FormatDatasets(datasets []*data.McStasData) error {
	w := f.options.writer()
	summaries := Summarize(datasets)
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No datasets found.")
		return err
	}

	if !f.options.Quiet {
		fmt.Fprintf(w, "Datasets (%d):\n", len(summaries))
	}
	for i, s := range summaries {
		fmt.Fprintf(w, "  %d. %-25s %-20s [%s] I=%s E=%s N=%s\n",
			i+1, s.Name, s.File, s.dimension(),
			formatNumber(s.Intensity), formatNumber(s.Error), formatNumber(s.Events))
	}
	return nil
}

func (f *ConsoleFormatter) FormatConfig(cfg config.Config) error {
	w := f.options.writer()
	for _, e := range configEntries(cfg) {
		fmt.Fprintf(w, "%s: %s\n", e.Key, e.Value)
	}
	return nil
}

// FormatData formats generic data (fallback to simple text representation)
func (f *ConsoleFormatter) FormatData(v interface{}) error {
	w := f.options.writer()
	switch d := v.(type) {
	case map[string]interface{}, []interface{}:
		fmt.Fprintln(w, PrettyJSON(d))
	case string:
		fmt.Fprintln(w, d)
	default:
		fmt.Fprintf(w, "%v\n", d)
	}
	return nil
}

func (f *ConsoleFormatter) SetOptions(options Options) {
	f.options = options
}

func (f *ConsoleFormatter) GetOptions() Options {
	return f.options
}

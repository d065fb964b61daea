package formatting

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"mcscript/internal/config"
	"mcscript/internal/data"
	pkgstrings "mcscript/pkg/strings"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

func (f *TableFormatter) FormatDatasets(datasets []*data.McStasData) error {
	summaries := Summarize(datasets)
	if len(summaries) == 0 {
		f.printEmptyMessage("No datasets found")
		return nil
	}

	t := f.createTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("COMPONENT"),
		text.FgHiCyan.Sprint("FILE"),
		text.FgHiCyan.Sprint("BINS"),
		text.FgHiCyan.Sprint("INTENSITY"),
		text.FgHiCyan.Sprint("ERROR"),
		text.FgHiCyan.Sprint("EVENTS"),
		text.FgHiCyan.Sprint("TITLE"),
	})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			text.FgHiCyan.Sprint(s.Name),
			s.File,
			s.dimension(),
			formatNumber(s.Intensity),
			formatNumber(s.Error),
			formatNumber(s.Events),
			pkgstrings.Truncate(s.Title, pkgstrings.DefaultCommentMaxLen),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()

	if !f.options.Quiet {
		fmt.Fprintf(f.options.writer(), "\n%s %s %s\n",
			text.FgHiBlue.Sprint("Total:"),
			text.FgHiWhite.Sprint(len(summaries)),
			text.FgHiBlue.Sprint("datasets"))
	}
	return nil
}

func (f *TableFormatter) FormatConfig(cfg config.Config) error {
	t := f.createTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("KEY"),
		text.FgHiCyan.Sprint("VALUE"),
	})
	for _, e := range configEntries(cfg) {
		t.AppendRow(table.Row{text.FgHiCyan.Sprint(e.Key), e.Value})
	}
	t.Render()
	return nil
}

// FormatData formats generic data using table logic
func (f *TableFormatter) FormatData(v interface{}) error {
	switch d := v.(type) {
	case map[string]interface{}:
		return f.formatObjectData(d)
	case []interface{}:
		return f.formatArrayData(d)
	case string:
		fmt.Fprintln(f.options.writer(), d)
	default:
		fmt.Fprintf(f.options.writer(), "%v\n", d)
	}
	return nil
}

func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.options.writer())
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) printEmptyMessage(message string) {
	fmt.Fprintf(f.options.writer(), "%s\n", text.FgYellow.Sprint(message))
}

// formatObjectData formats object data as key-value pairs
func (f *TableFormatter) formatObjectData(d map[string]interface{}) error {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := f.createTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("KEY"),
		text.FgHiCyan.Sprint("VALUE"),
	})
	for _, key := range keys {
		valueStr := pkgstrings.Truncate(fmt.Sprintf("%v", d[key]), 100)
		t.AppendRow(table.Row{text.FgHiCyan.Sprint(key), valueStr})
	}
	t.Render()
	return nil
}

// formatArrayData formats array data as a numbered list
func (f *TableFormatter) formatArrayData(d []interface{}) error {
	w := f.options.writer()
	if len(d) == 0 {
		f.printEmptyMessage("No items found")
		return nil
	}

	for i, item := range d {
		fmt.Fprintf(w, "  %d. %v\n", i+1, item)
	}

	fmt.Fprintf(w, "\n%s %s %s\n",
		text.FgHiBlue.Sprint("Total:"),
		text.FgHiWhite.Sprint(len(d)),
		text.FgHiBlue.Sprint("items"))
	return nil
}

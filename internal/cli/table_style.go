package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// PlainTableWriter prints whitespace aligned columns without box drawing,
// so listings can be piped into grep, awk or cut.
type PlainTableWriter struct {
	headers      []string
	rows         [][]string
	columnWidths []int
	// minPadding is the minimum space between columns
	minPadding  int
	showHeaders bool
	output      io.Writer
}

// NewPlainTableWriter creates a table writer that shows headers.
func NewPlainTableWriter(output io.Writer) *PlainTableWriter {
	return &PlainTableWriter{
		minPadding:  3,
		showHeaders: true,
		output:      output,
	}
}

// SetHeaders sets the column headers, upper-casing them.
func (w *PlainTableWriter) SetHeaders(headers ...string) {
	w.headers = make([]string, len(headers))
	w.columnWidths = make([]int, len(headers))
	for i, h := range headers {
		w.headers[i] = strings.ToUpper(h)
		w.columnWidths[i] = utf8.RuneCountInString(w.headers[i])
	}
}

// SetNoHeaders controls whether to suppress the header row.
func (w *PlainTableWriter) SetNoHeaders(noHeaders bool) {
	w.showHeaders = !noHeaders
}

// AppendRow adds a row, padding or truncating it to the header count.
func (w *PlainTableWriter) AppendRow(cells ...string) {
	row := make([]string, len(w.headers))
	copy(row, cells)
	for i, cell := range row {
		w.columnWidths[i] = max(w.columnWidths[i], utf8.RuneCountInString(cell))
	}
	w.rows = append(w.rows, row)
}

// Render writes the table. Nothing is written for a table without headers,
// or without rows when headers are suppressed.
func (w *PlainTableWriter) Render() {
	if len(w.headers) == 0 || (len(w.rows) == 0 && !w.showHeaders) {
		return
	}
	if w.showHeaders {
		w.printRow(w.headers)
	}
	for _, row := range w.rows {
		w.printRow(row)
	}
}

func (w *PlainTableWriter) printRow(row []string) {
	var sb strings.Builder
	last := len(row) - 1
	for i, cell := range row {
		sb.WriteString(cell)
		if i < last {
			pad := w.columnWidths[i] + w.minPadding - utf8.RuneCountInString(cell)
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	fmt.Fprintln(w.output, strings.TrimRight(sb.String(), " "))
}

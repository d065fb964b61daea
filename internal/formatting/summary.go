package formatting

import (
	"fmt"
	"strconv"
	"strings"

	"mcscript/internal/config"
	"mcscript/internal/data"
)

// DatasetSummary is the printable digest of one monitor.
type DatasetSummary struct {
	Name      string  `json:"name" yaml:"name"`
	File      string  `json:"file" yaml:"file"`
	Dimension []int   `json:"dimension" yaml:"dimension,flow"`
	Intensity float64 `json:"intensity" yaml:"intensity"`
	Error     float64 `json:"error" yaml:"error"`
	Events    float64 `json:"events" yaml:"events"`
	Title     string  `json:"title,omitempty" yaml:"title,omitempty"`
	XLabel    string  `json:"xlabel,omitempty" yaml:"xlabel,omitempty"`
	YLabel    string  `json:"ylabel,omitempty" yaml:"ylabel,omitempty"`
}

// Summarize digests datasets, keeping their order.
func Summarize(datasets []*data.McStasData) []DatasetSummary {
	out := make([]DatasetSummary, 0, len(datasets))
	for _, d := range datasets {
		if d == nil {
			continue
		}
		intensity, err, events := d.Totals()
		s := DatasetSummary{
			Name:      d.Name,
			Intensity: intensity,
			Error:     err,
			Events:    events,
		}
		if m := d.Metadata; m != nil {
			s.File = m.Filename
			s.Dimension = m.Dimension
			s.Title = m.Title
			s.XLabel = m.XLabel
			s.YLabel = m.YLabel
		}
		out = append(out, s)
	}
	return out
}

func (s DatasetSummary) dimension() string {
	parts := make([]string, len(s.Dimension))
	for i, d := range s.Dimension {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

// configEntry is one line of configuration output, in file order.
type configEntry struct {
	Key   string
	Value string
}

func configEntries(cfg config.Config) []configEntry {
	return []configEntry{
		{"paths.mcrun_path", cfg.Paths.McRunPath},
		{"paths.mcstas_path", cfg.Paths.McStasPath},
		{"other.characters_per_line", strconv.Itoa(cfg.Other.CharactersPerLine)},
	}
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

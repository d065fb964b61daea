package formatting

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"mcscript/internal/config"
	"mcscript/internal/data"
)

func init() {
	text.DisableColors()
}

func testDatasets(t *testing.T) []*data.McStasData {
	t.Helper()

	wave, err := data.NewMcStasData(
		&data.Metadata{
			Info:          map[string]string{"values": "10 1 500"},
			Dimension:     []int{3},
			ComponentName: "wave_monitor",
			Filename:      "wave.dat",
			Title:         "Wavelength monitor",
		},
		data.Array{Shape: []int{3}, Values: []float64{1, 2, 3}},
		data.Array{Shape: []int{3}, Values: []float64{0.1, 0.2, 0.3}},
		data.Array{Shape: []int{3}, Values: []float64{10, 20, 30}},
		[]float64{1, 2, 3},
	)
	require.NoError(t, err)

	psd, err := data.NewMcStasData(
		&data.Metadata{
			Dimension:     []int{2, 2},
			ComponentName: "psd_monitor",
			Filename:      "psd.dat",
		},
		data.Array{Shape: []int{2, 2}, Values: []float64{1, 1, 1, 1}},
		data.Array{Shape: []int{2, 2}, Values: []float64{0, 0, 0, 0}},
		data.Array{Shape: []int{2, 2}, Values: []float64{5, 5, 5, 5}},
		nil,
	)
	require.NoError(t, err)

	return []*data.McStasData{wave, psd}
}

func testConfig() config.Config {
	return config.Config{
		Paths: config.PathsConfig{McRunPath: "/usr/bin/", McStasPath: "/usr/share/mcstas/2.5/"},
		Other: config.OtherConfig{CharactersPerLine: 93},
	}
}

func format(t *testing.T, f OutputFormat, quiet bool, fn func(Formatter) error) string {
	t.Helper()
	var buf bytes.Buffer
	formatter := NewFactory().CreateFormatter(Options{Format: f, Quiet: quiet, Output: &buf})
	require.NoError(t, fn(formatter))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "console", "json", "yaml"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(s), f)
	}

	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	_, err = ParseFormat("xml")
	assert.ErrorContains(t, err, "xml")
}

func TestFactory(t *testing.T) {
	factory := NewFactory()
	assert.IsType(t, &JSONFormatter{}, factory.CreateFormatter(Options{Format: FormatJSON}))
	assert.IsType(t, &YAMLFormatter{}, factory.CreateFormatter(Options{Format: FormatYAML}))
	assert.IsType(t, &TableFormatter{}, factory.CreateFormatter(Options{Format: FormatTable}))
	assert.IsType(t, &ConsoleFormatter{}, factory.CreateFormatter(Options{Format: "other"}))

	f := factory.CreateFormatter(Options{Format: FormatJSON})
	f.SetOptions(Options{Format: FormatJSON, Quiet: true})
	assert.True(t, f.GetOptions().Quiet)
}

func TestSummarize(t *testing.T) {
	datasets := append(testDatasets(t), nil)
	summaries := Summarize(datasets)
	require.Len(t, summaries, 2)

	// the values line wins over summing the arrays
	assert.Equal(t, DatasetSummary{
		Name:      "wave_monitor",
		File:      "wave.dat",
		Dimension: []int{3},
		Intensity: 10,
		Error:     1,
		Events:    500,
		Title:     "Wavelength monitor",
	}, summaries[0])

	assert.Equal(t, 4.0, summaries[1].Intensity)
	assert.Equal(t, 0.0, summaries[1].Error)
	assert.Equal(t, 20.0, summaries[1].Events)
	assert.Equal(t, "2x2", summaries[1].dimension())
}

func TestJSONFormatter_Datasets(t *testing.T) {
	out := format(t, FormatJSON, false, func(f Formatter) error {
		return f.FormatDatasets(testDatasets(t))
	})

	var decoded []DatasetSummary
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "psd_monitor", decoded[1].Name)
	assert.Contains(t, out, "\n  {")

	quiet := format(t, FormatJSON, true, func(f Formatter) error {
		return f.FormatDatasets(testDatasets(t))
	})
	assert.NotContains(t, quiet, "\n  ")
}

func TestYAMLFormatter_Config(t *testing.T) {
	out := format(t, FormatYAML, false, func(f Formatter) error {
		return f.FormatConfig(testConfig())
	})
	assert.Equal(t, "paths:\n    mcrun_path: /usr/bin/\n    mcstas_path: /usr/share/mcstas/2.5/\nother:\n    characters_per_line: 93\n", out)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, testConfig(), cfg)
}

func TestYAMLFormatter_Datasets(t *testing.T) {
	out := format(t, FormatYAML, false, func(f Formatter) error {
		return f.FormatDatasets(testDatasets(t))
	})
	assert.Contains(t, out, "- name: wave_monitor\n")
	assert.Contains(t, out, "dimension: [2, 2]")
}

func TestTableFormatter(t *testing.T) {
	out := format(t, FormatTable, false, func(f Formatter) error {
		return f.FormatDatasets(testDatasets(t))
	})
	assert.Contains(t, out, "COMPONENT")
	assert.Contains(t, out, "wave_monitor")
	assert.Contains(t, out, "2x2")
	assert.Contains(t, out, "Total: 2 datasets")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Wavelength monitor")

	empty := format(t, FormatTable, false, func(f Formatter) error {
		return f.FormatDatasets(nil)
	})
	assert.Equal(t, "No datasets found\n", empty)

	cfg := format(t, FormatTable, false, func(f Formatter) error {
		return f.FormatConfig(testConfig())
	})
	assert.Contains(t, cfg, "paths.mcstas_path")
	assert.Contains(t, cfg, "/usr/share/mcstas/2.5/")
}

func TestTableFormatter_LongTitle(t *testing.T) {
	datasets := testDatasets(t)
	datasets[1].Metadata.Title = "Position sensitive detector\nbehind the sample " + strings.Repeat("x", 80)

	out := format(t, FormatTable, false, func(f Formatter) error {
		return f.FormatDatasets(datasets)
	})
	assert.Contains(t, out, "Position sensitive detector behind the sample xxx")
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, strings.Repeat("x", 80))
}

func TestConsoleFormatter(t *testing.T) {
	out := format(t, FormatConsole, false, func(f Formatter) error {
		return f.FormatConfig(testConfig())
	})
	assert.Equal(t, "paths.mcrun_path: /usr/bin/\npaths.mcstas_path: /usr/share/mcstas/2.5/\nother.characters_per_line: 93\n", out)

	out = format(t, FormatConsole, true, func(f Formatter) error {
		return f.FormatDatasets(testDatasets(t))
	})
	assert.NotContains(t, out, "Datasets (")
	assert.Contains(t, out, "  1. wave_monitor")
	assert.Contains(t, out, "I=10 E=1 N=500")

	out = format(t, FormatConsole, false, func(f Formatter) error {
		return f.FormatData("plain")
	})
	assert.Equal(t, "plain\n", out)
}

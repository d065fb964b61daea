package data

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFolder = "testdata/test_data_set"

func TestParseSim(t *testing.T) {
	f, err := os.Open(filepath.Join(testFolder, SimFile))
	require.NoError(t, err)
	defer f.Close()

	blocks, err := ParseSim(f)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	wave := blocks[0]
	assert.Equal(t, "wave_monitor", wave.ComponentName)
	assert.Equal(t, "wave.dat", wave.Filename)
	assert.Equal(t, []int{5}, wave.Dimension)
	assert.Equal(t, []float64{1, 6}, wave.Limits)
	assert.Equal(t, "Wavelength [AA]", wave.XLabel)
	assert.Equal(t, "Intensity", wave.YLabel)
	assert.Equal(t, "Wavelength monitor", wave.Title)
	assert.Equal(t, "Fri May 03 14:07:10 2019 (1556885230)", wave.Info["Date"])
	assert.False(t, wave.Is2D())

	psd := blocks[1]
	assert.True(t, psd.Is2D())
	assert.Equal(t, []int{3, 2}, psd.Dimension)
	assert.Equal(t, 6, psd.Bins())
	assert.Equal(t, []float64{-5, 5, -2.5, 2.5}, psd.Limits)
}

func TestParseSim_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"unclosed", "begin data\n type: array_1d(2)\n", "data block is not closed"},
		{"stray end", "end data\n", "end data without begin data"},
		{"nested", "begin data\nbegin data\n", "data block opened twice"},
		{"no type", "begin data\n component: a\nend data\n", "has no type"},
		{"bad type", "begin data\n type: array_0d(1)\nend data\n", "unsupported data type"},
		{"bad limits", "begin data\n type: array_1d(2)\n xlimits: 0 x\nend data\n", "bad limits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSim(strings.NewReader(tt.input))
			require.Error(t, err)
			var formatErr *FormatError
			assert.True(t, errors.As(err, &formatErr))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	datasets, err := Load(context.Background(), testFolder)
	require.NoError(t, err)
	require.Len(t, datasets, 2)

	wave := datasets[0]
	assert.Equal(t, "wave_monitor", wave.Name)
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 4.5, 5.5}, wave.XAxis)
	assert.Equal(t, []float64{0, 1, 4, 3, 2}, wave.Intensity.Values)
	assert.Equal(t, []float64{0, 0.5, 0.8, 0.6, 0.5}, wave.Error.Values)
	assert.Equal(t, []float64{0, 50, 200, 150, 100}, wave.Ncount.Values)
	assert.Equal(t, []int{5}, wave.Intensity.Shape)
	assert.Equal(t, DefaultPlotOptions(), wave.PlotOptions)

	psd := datasets[1]
	assert.Equal(t, "psd_monitor", psd.Name)
	assert.Nil(t, psd.XAxis)
	assert.Equal(t, []int{2, 3}, psd.Intensity.Shape)
	assert.Equal(t, []float64{4, 5, 6}, psd.Intensity.Row(1))
	assert.Equal(t, 0.2, psd.Error.At(0, 1))
	assert.Equal(t, 60.0, psd.Ncount.At(1, 2))
}

func TestLoad_MissingFolder(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nothing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MissingDataFile(t *testing.T) {
	dir := t.TempDir()
	sim := "begin data\n type: array_1d(2)\n component: m\n filename: m.dat\nend data\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SimFile), []byte(sim), 0o644))

	_, err := Load(context.Background(), dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_2DWithoutHeaders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.dat")
	content := "# type: array_2d(2, 1)\n1 2\n0.1 0.2\n5 6\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m := &Metadata{ComponentName: "plain", Filename: "plain.dat", Dimension: []int{2, 1}}
	d, err := LoadFile(path, m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, d.Intensity.Values)
	assert.Equal(t, []float64{0.1, 0.2}, d.Error.Values)
	assert.Equal(t, []float64{5, 6}, d.Ncount.Values)
}

func TestLoadFile_WrongSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.dat")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3 4\n"), 0o644))

	m := &Metadata{ComponentName: "short", Filename: "short.dat", Dimension: []int{3}}
	_, err := LoadFile(path, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intensity of short has 1 values, expected 3")

	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n"), 0o644))
	_, err = LoadFile(path, m)
	assert.Contains(t, err.Error(), "expected 4 columns, got 3")
}

func TestTotals(t *testing.T) {
	datasets, err := Load(context.Background(), testFolder)
	require.NoError(t, err)

	i, e, n := datasets[0].Totals()
	assert.Equal(t, 10.0, i)
	assert.Equal(t, 1.0, e)
	assert.Equal(t, 500.0, n)

	delete(datasets[1].Metadata.Info, "values")
	i, e, n = datasets[1].Totals()
	assert.Equal(t, 21.0, i)
	assert.InDelta(t, 0.9539392, e, 1e-6)
	assert.Equal(t, 210.0, n)
}

func TestArrayRowOn1D(t *testing.T) {
	a := Array{Shape: []int{3}, Values: []float64{1, 2, 3}}
	assert.Equal(t, []float64{1, 2, 3}, a.Row(0))
	assert.Nil(t, a.Row(1))
	assert.Equal(t, 6.0, a.Sum())
}

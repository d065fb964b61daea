package data

import (
	"fmt"
	"math"
)

// Array is a dense row-major array of monitor values.
type Array struct {
	// Shape is [n] for 1D data and [rows, columns] for 2D data, rows
	// running over y bins.
	Shape  []int
	Values []float64
}

// Len returns the number of values.
func (a Array) Len() int {
	return len(a.Values)
}

// Row returns row i of a 2D array. For 1D arrays row 0 is the whole array.
func (a Array) Row(i int) []float64 {
	if len(a.Shape) < 2 {
		if i != 0 {
			return nil
		}
		return a.Values
	}
	cols := a.Shape[1]
	return a.Values[i*cols : (i+1)*cols]
}

// At returns the value at row i, column j.
func (a Array) At(i, j int) float64 {
	return a.Row(i)[j]
}

// Sum adds all values.
func (a Array) Sum() float64 {
	var s float64
	for _, v := range a.Values {
		s += v
	}
	return s
}

// McStasData is the data recorded by one monitor.
type McStasData struct {
	// Name is the component name of the monitor.
	Name     string
	Metadata *Metadata

	Intensity Array
	Error     Array
	Ncount    Array
	// XAxis holds the bin centres of 1D monitors.
	XAxis []float64

	PlotOptions PlotOptions
}

// NewMcStasData builds a dataset and checks that all arrays match the
// dimension in metadata.
func NewMcStasData(m *Metadata, intensity, errs, ncount Array, xaxis []float64) (*McStasData, error) {
	want := m.Bins()
	for _, a := range []struct {
		name string
		arr  Array
	}{{"intensity", intensity}, {"error", errs}, {"ncount", ncount}} {
		if a.arr.Len() != want {
			return nil, fmt.Errorf("%s of %s has %d values, expected %d", a.name, m.ComponentName, a.arr.Len(), want)
		}
	}
	if !m.Is2D() && len(xaxis) != want {
		return nil, fmt.Errorf("x axis of %s has %d values, expected %d", m.ComponentName, len(xaxis), want)
	}

	return &McStasData{
		Name:        m.ComponentName,
		Metadata:    m,
		Intensity:   intensity,
		Error:       errs,
		Ncount:      ncount,
		XAxis:       xaxis,
		PlotOptions: DefaultPlotOptions(),
	}, nil
}

// Totals returns the summed intensity, error and event count. The values
// line of the metadata is used when present, since the error does not add
// linearly.
func (d *McStasData) Totals() (intensity, err, events float64) {
	if values, perr := parseFloats(d.Metadata.Info["values"]); perr == nil && len(values) == 3 {
		return values[0], values[1], values[2]
	}
	var sq float64
	for _, e := range d.Error.Values {
		sq += e * e
	}
	return d.Intensity.Sum(), math.Sqrt(sq), d.Ncount.Sum()
}

// SetPlotOptions applies opts to the plot options of the dataset.
func (d *McStasData) SetPlotOptions(opts ...PlotOption) {
	for _, opt := range opts {
		opt(&d.PlotOptions)
	}
}

func (d *McStasData) String() string {
	return fmt.Sprintf("McStasData %s (%s, %v)", d.Name, d.Metadata.Filename, d.Metadata.Dimension)
}

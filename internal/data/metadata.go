package data

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var dimensionPattern = regexp.MustCompile(`^array_([12])d\(([^)]*)\)`)

// Metadata describes one monitor as listed in mccode.sim.
type Metadata struct {
	// Info holds every key of the data block verbatim.
	Info map[string]string
	// Dimension is the bin count: one entry for 1D, x and y bins for 2D.
	Dimension     []int
	ComponentName string
	Filename      string
	// Limits is xmin xmax for 1D and xmin xmax ymin ymax for 2D.
	Limits []float64
	XLabel string
	YLabel string
	Title  string
}

// Is2D reports whether the monitor stores a two dimensional histogram.
func (m *Metadata) Is2D() bool {
	return len(m.Dimension) == 2
}

// Bins returns the total number of bins.
func (m *Metadata) Bins() int {
	n := 1
	for _, d := range m.Dimension {
		n *= d
	}
	return n
}

func newMetadata(info map[string]string) (*Metadata, error) {
	m := &Metadata{
		Info:          info,
		ComponentName: info["component"],
		Filename:      info["filename"],
		XLabel:        info["xlabel"],
		YLabel:        info["ylabel"],
		Title:         info["title"],
	}

	typ, ok := info["type"]
	if !ok {
		return nil, fmt.Errorf("data block for %s has no type", m.ComponentName)
	}
	match := dimensionPattern.FindStringSubmatch(typ)
	if match == nil {
		return nil, fmt.Errorf("unsupported data type %q for %s", typ, m.ComponentName)
	}
	for _, field := range strings.Split(match[2], ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("bad dimension in %q: %w", typ, err)
		}
		m.Dimension = append(m.Dimension, n)
	}
	if want, _ := strconv.Atoi(match[1]); want != len(m.Dimension) {
		return nil, fmt.Errorf("type %q lists %d dimensions", typ, len(m.Dimension))
	}

	limits := info["xlimits"]
	if m.Is2D() {
		limits = info["xylimits"]
	}
	if limits != "" {
		values, err := parseFloats(limits)
		if err != nil {
			return nil, fmt.Errorf("bad limits for %s: %w", m.ComponentName, err)
		}
		m.Limits = values
	}
	return m, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

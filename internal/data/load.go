package data

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"mcscript/pkg/logging"
)

// Load reads mccode.sim in folder and every data file it lists. Datasets
// are returned in mccode.sim order.
func Load(ctx context.Context, folder string) ([]*McStasData, error) {
	f, err := os.Open(filepath.Join(folder, SimFile))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", SimFile, err)
	}
	defer f.Close()

	blocks, err := ParseSim(f)
	if err != nil {
		return nil, err
	}

	datasets := make([]*McStasData, len(blocks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range blocks {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := LoadFile(filepath.Join(folder, m.Filename), m)
			if err != nil {
				return err
			}
			datasets[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.Debug("DataLoader", "Loaded %d datasets from %s", len(datasets), folder)
	return datasets, nil
}

// LoadFile reads one monitor data file described by m.
func LoadFile(path string, m *Metadata) (*McStasData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	if m.Is2D() {
		return read2D(f, path, m)
	}
	return read1D(f, path, m)
}

func read1D(r io.Reader, path string, m *Metadata) (*McStasData, error) {
	var x, intensity, errs, ncount []float64

	s := newScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row, err := parseFloats(text)
		if err != nil {
			return nil, &FormatError{File: path, Line: line, Err: err}
		}
		if len(row) < 4 {
			return nil, &FormatError{File: path, Line: line, Err: fmt.Errorf("expected 4 columns, got %d", len(row))}
		}
		x = append(x, row[0])
		intensity = append(intensity, row[1])
		errs = append(errs, row[2])
		ncount = append(ncount, row[3])
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	shape := []int{len(x)}
	d, err := NewMcStasData(m,
		Array{Shape: shape, Values: intensity},
		Array{Shape: shape, Values: errs},
		Array{Shape: shape, Values: ncount},
		x)
	if err != nil {
		return nil, &FormatError{File: path, Err: err}
	}
	return d, nil
}

var blockHeaders = []string{"# Data", "# Errors", "# Events"}

func read2D(r io.Reader, path string, m *Metadata) (*McStasData, error) {
	var (
		blocks  [3][]float64
		current = -1
		headers bool
		rows    [][]float64
	)

	s := newScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			for i, h := range blockHeaders {
				if strings.HasPrefix(text, h) {
					current = i
					headers = true
				}
			}
			continue
		}

		row, err := parseFloats(text)
		if err != nil {
			return nil, &FormatError{File: path, Line: line, Err: err}
		}
		if len(row) != m.Dimension[0] {
			return nil, &FormatError{File: path, Line: line, Err: fmt.Errorf("expected %d columns, got %d", m.Dimension[0], len(row))}
		}
		if headers {
			if current < 0 {
				return nil, &FormatError{File: path, Line: line, Err: errors.New("values before first block header")}
			}
			blocks[current] = append(blocks[current], row...)
		} else {
			rows = append(rows, row)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	ybins := m.Dimension[1]
	if !headers {
		if len(rows) != 3*ybins {
			return nil, &FormatError{File: path, Err: fmt.Errorf("expected %d rows, got %d", 3*ybins, len(rows))}
		}
		for i, row := range rows {
			blocks[i/ybins] = append(blocks[i/ybins], row...)
		}
	}

	shape := []int{ybins, m.Dimension[0]}
	d, err := NewMcStasData(m,
		Array{Shape: shape, Values: blocks[0]},
		Array{Shape: shape, Values: blocks[1]},
		Array{Shape: shape, Values: blocks[2]},
		nil)
	if err != nil {
		return nil, &FormatError{File: path, Err: err}
	}
	return d, nil
}

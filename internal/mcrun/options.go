package mcrun

import (
	"fmt"
	"io"
	"math"
)

const (
	// DefaultNCount is the number of rays traced when none is given.
	DefaultNCount = 1e6
	// DefaultMPI is the number of MPI processes when none is given.
	DefaultMPI = 1
)

// Options configures a simulation run.
type Options struct {
	// McRunPath is the directory of the mcrun executable. Empty relies on
	// PATH.
	McRunPath string
	// Folder receives the simulation output. Required.
	Folder string
	// NCount is the number of rays, truncated to an integer. 0 means
	// DefaultNCount.
	NCount float64
	// MPI is the number of processes. 0 means DefaultMPI.
	MPI int
	// CustomFlags is inserted verbatim before the instrument file.
	CustomFlags string
	// Parameters are the instrument parameter values.
	Parameters map[string]any
	// IncrementFolderName picks Folder_0, Folder_1, ... when Folder
	// exists instead of letting mcrun fail.
	IncrementFolderName bool

	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) normalize() error {
	if o.Folder == "" {
		return &InputError{Message: "mcrun needs a folder name for the simulation output"}
	}

	switch {
	case o.NCount == 0:
		o.NCount = DefaultNCount
	case o.NCount < 1 || math.IsNaN(o.NCount) || math.IsInf(o.NCount, 0):
		return &InputError{Message: fmt.Sprintf("ncount should be a positive integer, was %v", o.NCount)}
	}

	switch {
	case o.MPI == 0:
		o.MPI = DefaultMPI
	case o.MPI < 0:
		return &InputError{Message: fmt.Sprintf("mpi should be a positive integer, was %d", o.MPI)}
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mcscript/internal/cli"
	"mcscript/internal/definition"
	"mcscript/internal/instrument"
)

// definitionFlags selects template variables for definition files.
type definitionFlags struct {
	varFiles []string
	vars     []string
}

func (d *definitionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&d.varFiles, "var-file", nil, "Variable file (YAML, JSON or HCL), may be repeated")
	cmd.Flags().StringArrayVar(&d.vars, "var", nil, "Template variable as name=value, may be repeated")
}

// loadInstrument builds the instrument described by the definition at path
// using the configuration in effect.
func loadInstrument(path string, d *definitionFlags) (*instrument.Instrument, *cli.Settings, error) {
	settings, err := flags.Settings()
	if err != nil {
		return nil, nil, err
	}

	vars, err := definition.LoadVars(d.varFiles, d.vars)
	if err != nil {
		return nil, nil, err
	}
	def, err := definition.Load(path, vars)
	if err != nil {
		return nil, nil, err
	}

	catalog, err := settings.Catalog()
	if err != nil {
		return nil, nil, err
	}
	in, err := definition.Build(def, settings.InstrumentOptions(catalog)...)
	if err != nil {
		return nil, nil, err
	}
	return in, settings, nil
}

// reportProblems writes a warning for every problem Validate finds.
func reportProblems(w io.Writer, in *instrument.Instrument) {
	err := in.Validate()
	if err == nil || flags.Quiet {
		return
	}
	problems := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		problems = joined.Unwrap()
	}
	for _, p := range problems {
		fmt.Fprintln(w, cli.FormatWarning(p.Error()))
	}
}

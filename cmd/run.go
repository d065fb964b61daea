package cmd

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mcscript/internal/cli"
	"mcscript/internal/mcrun"
	"mcscript/internal/template"
)

func newRunCmd() *cobra.Command {
	var (
		defFlags   definitionFlags
		opts       mcrun.Options
		params     []string
		instrDir   string
		showOutput bool
	)

	cmd := &cobra.Command{
		Use:   "run <definition|file.instr>",
		Short: "Run an instrument with mcrun and summarise the results",
		Long: `Runs an instrument with mcrun. A definition file is rendered to
<instr-dir>/<name>.instr first; an existing .instr file is run as is.
The data written by mcrun is loaded and summarised once the run finishes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := flags.Formatter(cmd)
			if err != nil {
				return err
			}
			opts.Parameters, err = template.ParseAssignments(params)
			if err != nil {
				return &mcrun.InputError{Message: err.Error()}
			}

			// mcrun output stays off stdout unless --show-output is set.
			var output bytes.Buffer
			if showOutput {
				opts.Stdout, opts.Stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
			} else {
				opts.Stdout, opts.Stderr = &output, &output
			}

			var result *mcrun.Result
			run := func() error {
				var err error
				result, err = runTarget(cmd, args[0], &defFlags, instrDir, opts)
				return err
			}
			if showOutput {
				err = run()
			} else {
				err = cli.RunWithSpinner(cmd.ErrOrStderr(), flags.Quiet, "Running mcrun...", run)
			}
			if err != nil {
				if output.Len() > 0 {
					io.Copy(cmd.ErrOrStderr(), &output)
				}
				return err
			}

			if !flags.Quiet {
				w := cmd.ErrOrStderr()
				fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Run %s finished in %s", result.RunID, result.Duration.Round(time.Millisecond))))
				fmt.Fprintln(w, cli.FormatInfo("Folder:", result.Folder))
			}
			return formatter.FormatDatasets(result.Datasets)
		},
	}

	defFlags.register(cmd)
	cli.RegisterOutputFlags(cmd, &flags)
	cmd.Flags().StringVarP(&opts.Folder, "folder", "d", "", "Folder for the mcrun output (required)")
	cmd.Flags().Float64VarP(&opts.NCount, "ncount", "n", mcrun.DefaultNCount, "Number of rays to trace")
	cmd.Flags().IntVar(&opts.MPI, "mpi", mcrun.DefaultMPI, "Number of MPI processes")
	cmd.Flags().StringVar(&opts.CustomFlags, "custom-flags", "", "Extra flags passed to mcrun verbatim")
	cmd.Flags().BoolVar(&opts.IncrementFolderName, "increment-folder-name", false, "Use <folder>_0, <folder>_1, ... when the folder exists")
	cmd.Flags().StringArrayVarP(&params, "param", "P", nil, "Instrument parameter as name=value, may be repeated")
	cmd.Flags().StringVar(&instrDir, "instr-dir", ".", "Directory the rendered instrument file is written to")
	cmd.Flags().BoolVar(&showOutput, "show-output", false, "Stream mcrun output instead of showing a spinner")
	_ = cmd.MarkFlagRequired("folder")
	return cmd
}

// runTarget runs an .instr file directly, or builds and runs a definition.
func runTarget(cmd *cobra.Command, target string, defFlags *definitionFlags, instrDir string, opts mcrun.Options) (*mcrun.Result, error) {
	if strings.EqualFold(filepath.Ext(target), ".instr") {
		settings, err := flags.Settings()
		if err != nil {
			return nil, err
		}
		if opts.McRunPath == "" {
			opts.McRunPath = settings.Config.Paths.McRunPath
		}
		m, err := mcrun.New(target, opts)
		if err != nil {
			return nil, err
		}
		return m.Run(cmd.Context())
	}

	in, _, err := loadInstrument(target, defFlags)
	if err != nil {
		return nil, err
	}
	return mcrun.RunInstrument(cmd.Context(), in, instrDir, opts)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcscript/internal/cli"
)

func newRenderCmd() *cobra.Command {
	var (
		defFlags definitionFlags
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "render <definition>",
		Short: "Render an instrument definition as a McStas instrument file",
		Long: `Builds the instrument described by a YAML, JSON or HCL definition and
prints the resulting instrument file. With --out the file is written to
<out>/<name>.instr instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := loadInstrument(args[0], &defFlags)
			if err != nil {
				return err
			}
			reportProblems(cmd.ErrOrStderr(), in)

			if outDir == "" {
				return in.Render(cmd.OutOrStdout())
			}
			path, err := in.WriteFullInstrument(outDir)
			if err != nil {
				return err
			}
			if !flags.Quiet {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Wrote "+path))
			}
			return nil
		},
	}

	defFlags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "d", "", "Directory to write <name>.instr into")
	return cmd
}

func newWriteCCmd() *cobra.Command {
	var (
		defFlags definitionFlags
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "write-c <definition>",
		Short: "Write the instrument sections as C include files",
		Long: `Writes the declare, initialize and trace sections and the component
blocks of an instrument to separate files, for inclusion in a hand written
instrument file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := loadInstrument(args[0], &defFlags)
			if err != nil {
				return err
			}
			if err := in.WriteCFiles(outDir); err != nil {
				return err
			}
			if !flags.Quiet {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Wrote C files for "+in.Name()))
			}
			return nil
		},
	}

	defFlags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "d", "", "Directory for the C files (default generated_includes)")
	return cmd
}

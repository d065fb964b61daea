package cmd

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var (
		defFlags   definitionFlags
		component  string
		short      bool
		parameters bool
	)

	cmd := &cobra.Command{
		Use:   "show <definition>",
		Short: "Preview the components and parameters of an instrument",
		Long: `Prints an aligned overview of the components of an instrument. Use
--component to print one component in full, and --parameters to list the
instrument parameters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := loadInstrument(args[0], &defFlags)
			if err != nil {
				return err
			}
			reportProblems(cmd.ErrOrStderr(), in)
			w := cmd.OutOrStdout()

			switch {
			case parameters:
				in.ShowParameters(w)
				return nil
			case component != "" && short:
				return in.PrintComponentShort(w, component)
			case component != "":
				return in.PrintComponent(w, component)
			default:
				in.PrintComponents(w)
				return nil
			}
		},
	}

	defFlags.register(cmd)
	cmd.Flags().StringVarP(&component, "component", "c", "", "Print a single component")
	cmd.Flags().BoolVar(&short, "short", false, "Print --component on one line")
	cmd.Flags().BoolVarP(&parameters, "parameters", "p", false, "List the instrument parameters")
	return cmd
}

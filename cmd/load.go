package cmd

import (
	"github.com/spf13/cobra"

	"mcscript/internal/cli"
	"mcscript/internal/data"
	"mcscript/internal/mcrun"
)

func newLoadCmd() *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "load <folder>",
		Short: "Summarise the data of a finished mcrun simulation",
		Long: `Reads mccode.sim and the monitor files of an mcrun output folder and
prints one summary per monitor. --name restricts the output to monitors
with the given component name or file name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := flags.Formatter(cmd)
			if err != nil {
				return err
			}

			datasets, err := mcrun.LoadResults(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(names) > 0 {
				var selected []*data.McStasData
				for _, name := range names {
					found, err := data.NameSearch(name, datasets)
					if err != nil {
						return err
					}
					selected = append(selected, found...)
				}
				datasets = selected
			}
			return formatter.FormatDatasets(datasets)
		},
	}

	cmd.Flags().StringArrayVar(&names, "name", nil, "Component or file name of a monitor, may be repeated")
	cli.RegisterOutputFlags(cmd, &flags)
	return cmd
}

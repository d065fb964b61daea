package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"mcscript/internal/cli"
	"mcscript/internal/instrument"
)

// scratchInstrument is an empty instrument giving access to the component
// catalog of the current settings. Shadowed components are reported on w.
func scratchInstrument(w io.Writer) (*instrument.Instrument, error) {
	settings, err := flags.Settings()
	if err != nil {
		return nil, err
	}
	catalog, err := settings.Catalog()
	if err != nil {
		return nil, err
	}
	if !flags.Quiet {
		for _, name := range catalog.Overridden() {
			fmt.Fprintln(w, cli.FormatWarning("Work directory component "+name+" overrides the installation"))
		}
	}
	return instrument.New("mcscript", settings.InstrumentOptions(catalog)...)
}

func newComponentsCmd() *cobra.Command {
	var (
		plain     bool
		noHeaders bool
	)

	cmd := &cobra.Command{
		Use:   "components [category]",
		Short: "List the available component categories or components",
		Long: `Without arguments the component categories of the McStas installation
and the work directory are listed. With a category the components in it
are listed. --plain parses every component file and prints a table of
all components, suitable for piping into other tools.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				return listAllComponents(cmd, noHeaders)
			}

			in, err := scratchInstrument(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			return in.ShowComponents(cmd.OutOrStdout(), category)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print a table of all components")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Suppress header row of --plain")
	return cmd
}

func listAllComponents(cmd *cobra.Command, noHeaders bool) error {
	settings, err := flags.Settings()
	if err != nil {
		return err
	}
	catalog, err := settings.Catalog()
	if err != nil {
		return err
	}

	infos, err := catalog.LoadAll(cmd.Context())
	if err != nil {
		return err
	}

	tw := cli.NewPlainTableWriter(cmd.OutOrStdout())
	tw.SetHeaders("name", "category", "parameters", "file")
	tw.SetNoHeaders(noHeaders)
	for _, name := range catalog.Names() {
		info := infos[name]
		category, _ := catalog.Category(name)
		tw.AppendRow(name, category, strconv.Itoa(len(info.ParameterNames)), info.Path)
	}
	tw.Render()
	return nil
}

func newDescribeCmd() *cobra.Command {
	var lineLength int

	cmd := &cobra.Command{
		Use:   "describe <component>",
		Short: "Show the parameters of a component type",
		Long: `Prints every parameter of a component type with its type, default
value, unit and comment. Required parameters are highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := scratchInstrument(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return in.ComponentHelp(cmd.OutOrStdout(), args[0], lineLength)
		},
	}

	cmd.Flags().IntVar(&lineLength, "line-length", 0, "Wrap comments at this width (default from configuration)")
	return cmd
}

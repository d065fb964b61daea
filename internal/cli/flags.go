package cli

import (
	"github.com/spf13/cobra"

	"mcscript/internal/formatting"
)

// CommandFlags holds the flag values shared by mcscript commands.
type CommandFlags struct {
	// OutputFormat specifies the desired output format (table, console, json, yaml)
	OutputFormat string
	// NoHeaders suppresses the header row in plain table output
	NoHeaders bool
	// Quiet suppresses progress indicators and non-essential output
	Quiet bool
	// Debug enables verbose logging
	Debug bool
	// ConfigPath specifies a custom configuration directory path
	ConfigPath string
	// McStasPath overrides paths.mcstas_path from the configuration file
	McStasPath string
	// McRunPath overrides paths.mcrun_path from the configuration file
	McRunPath string
	// WorkDir is searched for component files that shadow the installation
	WorkDir string
}

// RegisterCommonFlags registers the persistent flags of the root command.
//
// The registered flags are:
//   - --quiet/-q: Suppress non-essential output
//   - --debug: Enable debug logging
//   - --config-path: Configuration directory (default ~/.config/mcscript)
//   - --mcstas-path: McStas installation directory
//   - --mcrun-path: Directory containing mcrun
//   - --work-dir: Directory with local component files
func RegisterCommonFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config-path", "", "Configuration directory (default ~/.config/mcscript)")
	cmd.PersistentFlags().StringVar(&flags.McStasPath, "mcstas-path", "", "McStas installation directory, overrides the configuration")
	cmd.PersistentFlags().StringVar(&flags.McRunPath, "mcrun-path", "", "Directory containing mcrun, overrides the configuration")
	cmd.PersistentFlags().StringVar(&flags.WorkDir, "work-dir", "", "Directory with local component files (default current directory)")
}

// RegisterOutputFlags registers the formatting flags on commands that print
// structured results.
func RegisterOutputFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", string(formatting.FormatTable), "Output format (table, console, json, yaml)")
	cmd.Flags().BoolVar(&flags.NoHeaders, "no-headers", false, "Suppress header row in plain table output")
}

// Formatter creates the formatter selected by --output.
func (f *CommandFlags) Formatter(cmd *cobra.Command) (formatting.Formatter, error) {
	format, err := formatting.ParseFormat(f.OutputFormat)
	if err != nil {
		return nil, err
	}
	return formatting.NewFactory().CreateFormatter(formatting.Options{
		Format: format,
		Quiet:  f.Quiet,
		Output: cmd.OutOrStdout(),
	}), nil
}

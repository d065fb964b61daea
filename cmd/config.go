package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mcscript/internal/cli"
	"mcscript/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change the mcscript configuration",
		Long: `The configuration file holds the location of the McStas installation,
the directory of mcrun and the line width used by previews. It is created
with defaults in the configuration directory on first use.`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := flags.Formatter(cmd)
			if err != nil {
				return err
			}
			c, err := flags.Configurator()
			if err != nil {
				return err
			}
			cfg, err := c.Load()
			if err != nil {
				return err
			}
			if !flags.Quiet {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatInfo("File:", c.Path()))
			}
			return formatter.FormatConfig(cfg)
		},
	}
	cli.RegisterOutputFlags(show, &flags)

	cmd.AddCommand(show)
	cmd.AddCommand(newConfigSetCmd("set-mcstas-path <path>", "Set the McStas installation directory",
		func(c *config.Configurator, value string) error { return c.SetMcStasPath(value) }))
	cmd.AddCommand(newConfigSetCmd("set-mcrun-path <path>", "Set the directory containing mcrun",
		func(c *config.Configurator, value string) error { return c.SetMcRunPath(value) }))
	cmd.AddCommand(newConfigSetCmd("set-line-length <characters>", "Set the preview line width",
		func(c *config.Configurator, value string) error {
			n, err := strconv.Atoi(value)
			if err != nil {
				return config.ConfigurationError{
					FilePath:  c.Path(),
					ErrorType: "validation",
					Message:   fmt.Sprintf("line length must be an integer, got %q", value),
				}
			}
			return c.SetLineLength(n)
		}))
	return cmd
}

func newConfigSetCmd(use, short string, set func(*config.Configurator, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.Configurator()
			if err != nil {
				return err
			}
			if err := set(c, args[0]); err != nil {
				return err
			}
			if !flags.Quiet {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Updated "+c.Path()))
			}
			return nil
		},
	}
}

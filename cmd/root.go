package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"mcscript/internal/cli"
	"mcscript/internal/componentreader"
	"mcscript/internal/config"
	"mcscript/internal/data"
	"mcscript/internal/instrument"
	"mcscript/internal/mcrun"
	"mcscript/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfig indicates an unreadable or invalid configuration file.
	ExitCodeConfig = 2
	// ExitCodeInput indicates an unknown or illegal name, or unusable input.
	ExitCodeInput = 3
	// ExitCodeRunFailed indicates that mcrun could not be started or failed.
	ExitCodeRunFailed = 4
)

// flags holds the persistent flags shared by every command.
var flags cli.CommandFlags

// rootCmd is the command tree executed by Execute.
var rootCmd *cobra.Command

// newRootCmd builds the command tree. Registering the flags resets the
// shared flag values to their defaults.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcscript",
		Short: "Build McStas instruments and run them with mcrun",
		Long: `mcscript assembles McStas instrument files from declarative
definitions (YAML, JSON or HCL), checks them against the component
files of the local McStas installation, and runs them with mcrun.
Results written by mcrun can be loaded and summarised afterwards.`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logging.LevelWarn
			if flags.Debug {
				level = logging.LevelDebug
			}
			logging.InitForCLI(level, cmd.ErrOrStderr())
		},
	}

	cmd.SetVersionTemplate(`{{printf "mcscript version %s\n" .Version}}`)
	cli.RegisterCommonFlags(cmd, &flags)

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newWriteCCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newLoadCmd())
	cmd.AddCommand(newComponentsCmd())
	cmd.AddCommand(newDescribeCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSelfUpdateCmd())
	return cmd
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute runs the root command and exits with a code derived from the
// error, if any.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var cfgErr config.ConfigurationError
		if errors.As(err, &cfgErr) && flags.Debug {
			fmt.Fprintln(os.Stderr, cfgErr.DetailedError())
		}
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var cfgErr config.ConfigurationError
	var validationErrs config.ValidationErrors
	if errors.As(err, &cfgErr) || errors.As(err, &validationErrs) {
		return ExitCodeConfig
	}

	var runErr *mcrun.RunError
	if errors.As(err, &runErr) {
		return ExitCodeRunFailed
	}

	var nameErr *instrument.NameError
	var instrumentInput *instrument.InputError
	var runInput *mcrun.InputError
	var dataInput *data.InputError
	if errors.As(err, &nameErr) || errors.As(err, &instrumentInput) ||
		errors.As(err, &runInput) || errors.As(err, &dataInput) ||
		errors.Is(err, data.ErrNoDataset) || errors.Is(err, componentreader.ErrUnknownComponent) {
		return ExitCodeInput
	}

	// Default to general error
	return ExitCodeError
}

func init() {
	rootCmd = newRootCmd()
}

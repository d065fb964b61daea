package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mcscript/internal/cli"
	"mcscript/internal/watch"
	"mcscript/pkg/logging"
)

func newWatchCmd() *cobra.Command {
	var (
		defFlags definitionFlags
		outDir   string
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <definition>",
		Short: "Re-render an instrument whenever its definition changes",
		Long: `Renders the instrument once, then watches the definition and its
variable files and writes <out>/<name>.instr again after every change.
Errors are reported and watching continues. Stop with Ctrl+C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			render := func(_ context.Context, changed string) {
				if changed != "" {
					logging.Info("Watch", "%s changed", changed)
				}
				in, _, err := loadInstrument(args[0], &defFlags)
				if err == nil {
					var path string
					path, err = in.WriteFullInstrument(outDir)
					if err == nil {
						fmt.Fprintln(w, cli.FormatSuccess(time.Now().Format("15:04:05")+" wrote "+path))
						return
					}
				}
				fmt.Fprintln(w, cli.FormatError(err))
			}

			files := append([]string{args[0]}, defFlags.varFiles...)
			watcher, err := watch.New(files, debounce, render)
			if err != nil {
				return err
			}

			render(cmd.Context(), "")
			if !flags.Quiet {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatInfo("Watching", args[0]))
			}
			return watcher.Run(cmd.Context())
		},
	}

	defFlags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "d", ".", "Directory to write <name>.instr into")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Wait this long for further changes before rendering")
	return cmd
}

package cmd

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"github.com/thecodeteam/goodbye"

	"github.com/elseano/spinner/pkg/spinner"
	"github.com/elseano/spinner/pkg/util"
)

var rootCmd = NewRootCmd()

func RootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the CLI and maps failures onto the exit errors main switches on.
func Execute(version string, gitCommit string) error {
	ctx := context.Background()
	defer goodbye.Exit(ctx, -1)
	goodbye.Notify(ctx)

	rootCmd.Version = version + " (" + gitCommit + ")"

	return handleError(rootCmd.ErrOrStderr(), rootCmd.Execute())
}

func NewRootCmd() *cobra.Command {
	var debugLog io.Closer

	rootCmd := &cobra.Command{
		Use:           "spinner",
		Short:         "Console spinner and typed menu demos",
		Long:          `Demonstrates an asynchronous progress spinner and a type checked input menu`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if debugLog, err = util.SetDebugLog(flagDebug); err != nil {
				return err
			}

			if flagNoColor {
				color.NoColor = true
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if debugLog != nil {
				debugLog.Close()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debugging info to debug.log")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().DurationVar(&flagStep, "step", spinner.DefaultInterval, "Time between spinner frames")
	rootCmd.PersistentFlags().DurationVar(&flagPause, "pause", defaultPause, "Simulated work between spinner updates")

	rootCmd.AddCommand(newSimpleCmd(), newKirbyCmd(), newComplexCmd(), newMenuCmd(), newTipCmd())

	return rootCmd
}

// colors returns nil to let each package detect terminal support itself.
func colors() aurora.Aurora {
	if flagNoColor {
		return aurora.NewAurora(false)
	}
	return nil
}

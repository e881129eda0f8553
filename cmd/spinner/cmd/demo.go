package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kyokomi/emoji"
	"github.com/spf13/cobra"
	"github.com/thecodeteam/goodbye"

	"github.com/elseano/spinner/pkg/spinner"
	"github.com/elseano/spinner/pkg/util"
)

const defaultPause = 2 * time.Second

func newSimpleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simple",
		Short: "Default spinner with a status update and messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, ok := spinner.FrameSets[flagFrames]
			if !ok {
				return fmt.Errorf("unknown frame set %q: %w", flagFrames, spinner.ErrNoFrames)
			}

			return runDemo(cmd.OutOrStdout(), spinner.WithFrames(frames...), spinner.WithInterval(flagStep))
		},
	}

	cmd.Flags().StringVar(&flagFrames, "frames", "blocks", "Frame set to use (blocks, kirby, braille)")

	return cmd
}

func newKirbyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kirby",
		Short: "Dancing kirby at half a second per frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			step := 500 * time.Millisecond
			if cmd.Flags().Changed("step") {
				step = flagStep
			}

			return runDemo(cmd.OutOrStdout(), spinner.WithFrames(spinner.DancingKirby...), spinner.WithInterval(step))
		},
	}
}

func newComplexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complex",
		Short: "Spinner with a custom line format",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(),
				spinner.WithInterval(flagStep),
				spinner.WithFormatter(func(frame, status string) string {
					return fmt.Sprintf("%s -- Currently working on: '%s' -- %s", frame, status, frame)
				}),
			)
		},
	}
}

// runDemo plays the scripted sequence shared by the spinner demos.
func runDemo(out io.Writer, opts ...spinner.Option) error {
	opts = append([]spinner.Option{spinner.WithWriter(out), spinner.WithColors(colors())}, opts...)

	h, err := spinner.Start("Long Running op!", opts...)
	if err != nil {
		return err
	}

	// Release the spinner line if we're interrupted mid-demo.
	goodbye.Register(func(ctx context.Context, sig os.Signal) {
		h.Close()
	})

	send := func(err error) {
		if err != nil {
			util.Logger.Debug().Err(err).Msg("Spinner update dropped")
		}
	}

	time.Sleep(flagPause)
	send(h.Message(emoji.Sprint(":arrows_counterclockwise: Updating...")))
	send(h.Update("Fixing things..."))
	time.Sleep(flagPause)
	send(h.Message(emoji.Sprint(":white_check_mark: Done!")))

	return h.Close()
}

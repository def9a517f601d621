package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/timeouts"
)

func newToolTipCmd() *cobra.Command {
	tip := &cobra.Command{
		Use:   "tooltip <text>",
		Short: "Show a tooltip for a while",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := pointFlags(cmd.Flags(), "x", "y")
			if err != nil {
				return err
			}

			duration, _ := cmd.Flags().GetDuration("duration")

			return runWithSession(cmd, func(a *app) error {
				t, err := a.session.ToolTip(args[0], autoit.ToolTipOptions{At: at})
				if err != nil {
					return err
				}

				a.onInterrupt(func() { _ = t.Destroy() })
				a.log.Debug("Tooltip shown", slog.Duration("duration", duration))

				select {
				case <-time.After(duration):
				case <-cmd.Context().Done():
				}

				return t.Destroy()
			})
		},
	}

	tip.Flags().Int("x", 0, "screen x position (default: at the cursor)")
	tip.Flags().Int("y", 0, "screen y position (default: at the cursor)")
	tip.Flags().DurationP("duration", "d", timeouts.ToolTipDisplayDuration, "how long to show the tooltip")

	return tip
}

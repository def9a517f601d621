package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClipCmd() *cobra.Command {
	clip := &cobra.Command{
		Use:   "clip",
		Short: "Read or replace clipboard text",
	}

	clip.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the clipboard text",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runWithSession(cmd, func(a *app) error {
					text, err := a.session.Clipboard().Get()
					if err != nil {
						return err
					}

					fmt.Fprintln(a.out, text)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "put <text>...",
			Short: "Replace the clipboard with the arguments joined together",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runWithSession(cmd, func(a *app) error {
					parts := make([]any, len(args))
					for i, arg := range args {
						parts[i] = arg
					}

					return a.session.Clipboard().Put(parts...)
				})
			},
		},
	)

	return clip
}

package cmd

import (
	"github.com/spf13/cobra"
)

func newSendCmd() *cobra.Command {
	send := &cobra.Command{
		Use:   "send <keys>...",
		Short: "Send key sequences to the active window",
		Long: `Send each argument as an AutoIt key sequence, in order.
Special keys use AutoIt syntax, e.g. {ENTER}, ^c or !{F4}. Use --raw to type text literally.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")

			return runWithSession(cmd, func(a *app) error {
				keys := make([]any, len(args))
				for i, arg := range args {
					keys[i] = arg
				}

				kb := a.session.Keyboard()
				if raw {
					return kb.SendRaw(keys...)
				}

				return kb.Send(keys...)
			})
		},
	}

	send.Flags().BoolP("raw", "r", false, "type the keys literally")
	return send
}

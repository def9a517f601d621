package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newSysCmd() *cobra.Command {
	sys := &cobra.Command{
		Use:   "sys",
		Short: "Engine options, privileges and input blocking",
	}

	admin := &cobra.Command{
		Use:   "admin",
		Short: "Report whether the current user is an administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithSession(cmd, func(a *app) error {
				ok, err := a.session.System().IsAdmin()
				if err != nil {
					return err
				}

				printBool(a.out, ok)
				return nil
			})
		},
	}

	option := &cobra.Command{
		Use:   "option <name> <value>",
		Short: "Set an AutoItSetOption value for this run and print the previous one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("value must be an integer, got %q", args[1])
			}

			return runWithSession(cmd, func(a *app) error {
				prev, err := a.session.System().SetOption(args[0], value)
				if err != nil {
					return err
				}

				printField(a.out, "previous", prev)
				return nil
			})
		},
	}

	block := &cobra.Command{
		Use:   "block",
		Short: "Block user input for a while (requires administrator rights)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			duration, _ := cmd.Flags().GetDuration("duration")

			return runWithSession(cmd, func(a *app) error {
				s := a.session.System()
				if err := s.BlockInput(true); err != nil {
					return err
				}

				a.onInterrupt(func() { _ = s.BlockInput(false) })

				select {
				case <-time.After(duration):
				case <-cmd.Context().Done():
				}

				return s.BlockInput(false)
			})
		},
	}
	block.Flags().DurationP("duration", "d", 5*time.Second, "how long to block input")

	sys.AddCommand(admin, option, block)
	return sys
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/autoitx/internal/autoit"
)

func newDriveCmd() *cobra.Command {
	drive := &cobra.Command{
		Use:   "drive",
		Short: "Map and unmap network drives",
	}

	add := &cobra.Command{
		Use:   "add <device|*> <share>",
		Short: "Map a share and print the device it was given",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts autoit.DriveMapOptions
			opts.User, _ = cmd.Flags().GetString("user")
			opts.Password, _ = cmd.Flags().GetString("password")

			if persistent, _ := cmd.Flags().GetBool("persistent"); persistent {
				opts.Flags |= autoit.DriveMapPersistent
			}

			if prompt, _ := cmd.Flags().GetBool("prompt"); prompt {
				opts.Flags |= autoit.DriveMapShowAuthDialog
			}

			return runWithSession(cmd, func(a *app) error {
				device, err := a.session.DriveMap().Add(args[0], args[1], opts)
				if err != nil {
					return err
				}

				fmt.Fprintln(a.out, device)
				return nil
			})
		},
	}
	add.Flags().Bool("persistent", false, "restore the mapping at next logon")
	add.Flags().Bool("prompt", false, "show a credentials dialog when needed")
	add.Flags().StringP("user", "u", "", `user to connect as, e.g. DOMAIN\user`)
	add.Flags().String("password", "", "password of --user")

	get := &cobra.Command{
		Use:   "get <device>",
		Short: "Print the share mapped to a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, func(a *app) error {
				share, err := a.session.DriveMap().Get(args[0])
				if err != nil {
					return err
				}

				fmt.Fprintln(a.out, share)
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "del <device>",
		Short: "Remove a mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, func(a *app) error {
				return a.session.DriveMap().Delete(args[0])
			})
		},
	}

	drive.AddCommand(add, get, del)
	return drive
}

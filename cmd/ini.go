package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIniCmd() *cobra.Command {
	ini := &cobra.Command{
		Use:   "ini",
		Short: "Read, write and delete ini file entries",
	}

	read := &cobra.Command{
		Use:   "read <file> <section> <key>",
		Short: "Print the value of a key",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, func(a *app) error {
				f, err := a.session.Ini(args[0])
				if err != nil {
					return err
				}

				if cmd.Flags().Changed("default") {
					def, _ := cmd.Flags().GetString("default")
					fmt.Fprintln(a.out, f.ReadDefault(args[1], args[2], def))
					return nil
				}

				value, err := f.Read(args[1], args[2])
				if err != nil {
					return err
				}

				fmt.Fprintln(a.out, value)
				return nil
			})
		},
	}
	read.Flags().StringP("default", "d", "", "value to print when the key is missing")

	write := &cobra.Command{
		Use:   "write <file> <section> <key> <value>",
		Short: "Set the value of a key",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, func(a *app) error {
				f, err := a.session.Ini(args[0])
				if err != nil {
					return err
				}

				return f.Write(args[1], args[2], args[3])
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <file> <section> [key]",
		Short: "Delete a key, or the whole section when no key is given",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, func(a *app) error {
				f, err := a.session.Ini(args[0])
				if err != nil {
					return err
				}

				return f.Delete(args[1], args[2:]...)
			})
		},
	}

	ini.AddCommand(read, write, del)
	return ini
}

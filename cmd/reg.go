package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/autoitx/internal/autoit"
)

// defaultEnumCount is how many entries reg keys and reg values ask for
const defaultEnumCount = 16

var regTypes = []autoit.RegType{
	autoit.RegString,
	autoit.RegExpandString,
	autoit.RegMultiString,
	autoit.RegDWord,
	autoit.RegQWord,
	autoit.RegBinary,
}

func parseRegType(s string) (autoit.RegType, error) {
	for _, t := range regTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}

	return "", fmt.Errorf("unknown registry type %q", s)
}

func newRegCmd() *cobra.Command {
	reg := &cobra.Command{
		Use:   "reg",
		Short: "Read and change the registry",
		Long:  `Keys use AutoIt root names, e.g. HKEY_CURRENT_USER\Software\Vendor or HKLM64\SOFTWARE\Vendor.`,
	}

	read := &cobra.Command{
		Use:   "read <key> [value]",
		Short: "Print a value (the default value when none is named)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, func(a *app) error {
				data, err := a.session.Registry().Read(args[0], optionalArg(args, 1))
				if err != nil {
					return err
				}

				fmt.Fprintln(a.out, data)
				return nil
			})
		},
	}

	write := &cobra.Command{
		Use:   "write <key> <value> <data>",
		Short: "Create or replace a value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, _ := cmd.Flags().GetString("type")
			typ, err := parseRegType(typeName)
			if err != nil {
				return err
			}

			return runWithSession(cmd, func(a *app) error {
				return a.session.Registry().Write(args[0], args[1], typ, args[2])
			})
		},
	}
	write.Flags().StringP("type", "t", string(autoit.RegString), "REG_SZ, REG_EXPAND_SZ, REG_MULTI_SZ, REG_DWORD, REG_QWORD or REG_BINARY")

	del := &cobra.Command{
		Use:   "delete <key> [value]",
		Short: "Delete a value, or the whole key when no value is named",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, func(a *app) error {
				return a.session.Registry().Delete(args[0], optionalArg(args, 1))
			})
		},
	}

	reg.AddCommand(read, write, del,
		newRegEnumCmd("keys", "List subkeys of a key", (*autoit.Registry).Keys),
		newRegEnumCmd("values", "List value names of a key", (*autoit.Registry).Values),
	)

	return reg
}

func newRegEnumCmd(use, short string, enum func(*autoit.Registry, string, int) ([]autoit.EnumEntry, error)) *cobra.Command {
	c := &cobra.Command{
		Use:   use + " <key>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")

			return runWithSession(cmd, func(a *app) error {
				entries, err := enum(a.session.Registry(), args[0], count)
				if err != nil {
					return err
				}

				for _, name := range autoit.Names(entries) {
					fmt.Fprintln(a.out, name)
				}

				return nil
			})
		},
	}

	c.Flags().IntP("count", "n", defaultEnumCount, "number of indices to read")
	return c
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/timeouts"
)

// windowCmd builds a subcommand taking <title> plus a shared --text flag
func windowCmd(use, short string, nargs int, run func(a *app, w *autoit.Window, args []string) error) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := cmd.Flags().GetString("text")

			return runWithSession(cmd, func(a *app) error {
				return run(a, a.session.Window(args[0], text), args[1:])
			})
		},
	}

	c.Flags().String("text", "", "text the window must contain")
	return c
}

func newWinCmd() *cobra.Command {
	win := &cobra.Command{
		Use:   "win",
		Short: "Work with windows and their controls",
		Long:  `Windows are matched by title using the win_title_match_mode option, or AutoIt's [CLASS:...] syntax.`,
	}

	exists := windowCmd("exists <title>", "Report whether a window exists", 1,
		func(a *app, w *autoit.Window, _ []string) error {
			ok, err := w.Exists()
			if err != nil {
				return err
			}

			printBool(a.out, ok)
			return nil
		})

	activate := windowCmd("activate <title>", "Give a window focus", 1,
		func(_ *app, w *autoit.Window, _ []string) error {
			return w.Activate()
		})

	closeCmd := windowCmd("close <title>", "Close a window", 1,
		func(_ *app, w *autoit.Window, _ []string) error {
			return w.Close()
		})

	var waitTimeout = timeouts.WindowWaitTimeout
	wait := windowCmd("wait <title>", "Wait for a window to exist", 1,
		func(_ *app, w *autoit.Window, _ []string) error {
			return w.Wait(waitTimeout)
		})
	wait.Flags().DurationVarP(&waitTimeout, "timeout", "t", timeouts.WindowWaitTimeout, "how long to wait")

	title := windowCmd("title <title>", "Print the full title and handle of a window", 1,
		func(a *app, w *autoit.Window, _ []string) error {
			t, err := w.Title()
			if err != nil {
				return err
			}

			hwnd, err := w.Handle()
			if err != nil {
				return err
			}

			printField(a.out, "title", t)
			printField(a.out, "handle", hwnd)
			return nil
		})

	getText := windowCmd("gettext <title> <control>", "Print the text of a control", 2,
		func(a *app, w *autoit.Window, args []string) error {
			text, err := w.Control(args[0]).Text()
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, text)
			return nil
		})

	setText := windowCmd("settext <title> <control> <value>", "Replace the text of a control", 3,
		func(_ *app, w *autoit.Window, args []string) error {
			return w.Control(args[0]).SetText(args[1])
		})

	win.AddCommand(exists, activate, closeCmd, wait, title, getText, setText)
	return win
}

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/timeouts"
)

func newProcessCmd() *cobra.Command {
	process := &cobra.Command{
		Use:   "process",
		Short: "Find, launch and close processes",
	}

	exists := &cobra.Command{
		Use:   "exists <name|pid>",
		Short: "Report whether a process is running and print its PID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, func(a *app) error {
				p, err := a.session.FindProcess(args[0])
				if errors.Is(err, autoit.ErrNotFound) {
					printBool(a.out, false)
					return nil
				}

				if err != nil {
					return err
				}

				printBool(a.out, true)
				printField(a.out, "pid", p.PID)
				return nil
			})
		},
	}

	run := &cobra.Command{
		Use:   "run <name>",
		Short: "Launch a program unless a process with that name is already running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showName, _ := cmd.Flags().GetString("show")
			show, err := autoit.ParseShowFlag(showName)
			if err != nil {
				return err
			}

			opts := autoit.ProcessOptions{Show: show}
			opts.Program, _ = cmd.Flags().GetString("program")
			opts.Dir, _ = cmd.Flags().GetString("dir")
			opts.Wait, _ = cmd.Flags().GetBool("wait")

			if user, _ := cmd.Flags().GetString("user"); user != "" {
				creds := &autoit.Credentials{User: user}
				creds.Domain, _ = cmd.Flags().GetString("domain")
				creds.Password, _ = cmd.Flags().GetString("password")
				if profile, _ := cmd.Flags().GetBool("profile"); profile {
					creds.LogonFlag = autoit.LogonWithProfile
				}

				opts.RunAs = creds
			}

			return runWithSession(cmd, func(a *app) error {
				p, err := a.session.Process(args[0], opts)
				if err != nil {
					return err
				}

				switch {
				case p.Existing:
					printField(a.out, "existing", p.PID)
				case opts.Wait:
					printField(a.out, "exit code", p.ExitCode)
				default:
					printField(a.out, "pid", p.PID)
				}

				return nil
			})
		},
	}
	run.Flags().StringP("program", "p", "", "command line to run (default: the name)")
	run.Flags().StringP("dir", "d", "", "working directory")
	run.Flags().String("show", "normal", "window state: normal, hide, minimize or maximize")
	run.Flags().BoolP("wait", "w", false, "wait for the program to exit and print its exit code")
	run.Flags().StringP("user", "u", "", "run as this user")
	run.Flags().String("domain", "", "domain of --user")
	run.Flags().String("password", "", "password of --user")
	run.Flags().Bool("profile", false, "load the user's profile")

	closeCmd := &cobra.Command{
		Use:   "close <name|pid>",
		Short: "Terminate a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, func(a *app) error {
				p, err := a.session.FindProcess(args[0])
				if err != nil {
					return err
				}

				return p.Close()
			})
		},
	}

	wait := &cobra.Command{
		Use:   "wait <name>",
		Short: "Wait for a process to start and print its PID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")

			return runWithSession(cmd, func(a *app) error {
				p, err := a.session.WaitForProcess(args[0], timeout)
				if err != nil {
					return err
				}

				printField(a.out, "pid", p.PID)
				return nil
			})
		},
	}
	wait.Flags().DurationP("timeout", "t", timeouts.ProcessWaitTimeout, "how long to wait")

	process.AddCommand(exists, run, closeCmd, wait)
	return process
}

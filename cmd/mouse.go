package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/autoitx/internal/autoit"
)

func newMouseCmd() *cobra.Command {
	mouse := &cobra.Command{
		Use:   "mouse",
		Short: "Move, click and query the mouse",
	}

	pos := &cobra.Command{
		Use:   "pos",
		Short: "Print the pointer position and cursor shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithSession(cmd, func(a *app) error {
				m := a.session.Mouse()

				p, err := m.Position()
				if err != nil {
					return err
				}

				cursor, err := m.Cursor()
				if err != nil {
					return err
				}

				printField(a.out, "position", p)
				printField(a.out, "cursor", cursor)
				return nil
			})
		},
	}

	click := &cobra.Command{
		Use:   "click",
		Short: "Click a mouse button",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, err := pointFlags(cmd.Flags(), "x", "y")
			if err != nil {
				return err
			}

			button, _ := cmd.Flags().GetString("button")
			clicks, _ := cmd.Flags().GetInt("clicks")
			speed, _ := cmd.Flags().GetInt("speed")
			instant, _ := cmd.Flags().GetBool("instant")

			return runWithSession(cmd, func(a *app) error {
				return a.session.Mouse().Click(autoit.ClickOptions{
					Button:  autoit.MouseButton(button),
					At:      at,
					Clicks:  clicks,
					Speed:   speed,
					Instant: instant,
				})
			})
		},
	}
	click.Flags().StringP("button", "b", string(autoit.ButtonLeft), "left, right, middle, primary or secondary")
	click.Flags().Int("x", 0, "screen x position (default: current position)")
	click.Flags().Int("y", 0, "screen y position (default: current position)")
	click.Flags().IntP("clicks", "n", 1, "number of clicks")
	click.Flags().IntP("speed", "s", autoit.DefaultMouseSpeed, "movement speed, 1 (fast) to 100 (slow)")
	click.Flags().Bool("instant", false, "move the pointer instantly")

	move := &cobra.Command{
		Use:   "move <x> <y>",
		Short: "Move the pointer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseInts([]string{"x", "y"}, args)
			if err != nil {
				return err
			}

			speed, _ := cmd.Flags().GetInt("speed")

			return runWithSession(cmd, func(a *app) error {
				return a.session.Mouse().Move(autoit.Point{X: xy[0], Y: xy[1]}, speed)
			})
		},
	}
	move.Flags().IntP("speed", "s", autoit.DefaultMouseSpeed, "movement speed, 0 (instant) to 100 (slow)")

	drag := &cobra.Command{
		Use:   "drag <x> <y>",
		Short: "Drag from the current position (or --from-x/--from-y) to x,y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseInts([]string{"x", "y"}, args)
			if err != nil {
				return err
			}

			start, err := pointFlags(cmd.Flags(), "from-x", "from-y")
			if err != nil {
				return err
			}

			button, _ := cmd.Flags().GetString("button")
			speed, _ := cmd.Flags().GetInt("speed")

			return runWithSession(cmd, func(a *app) error {
				return a.session.Mouse().ClickDrag(autoit.DragOptions{
					Button: autoit.MouseButton(button),
					Start:  start,
					End:    autoit.Point{X: xy[0], Y: xy[1]},
					Speed:  speed,
				})
			})
		},
	}
	drag.Flags().StringP("button", "b", string(autoit.ButtonLeft), "button to hold while dragging")
	drag.Flags().Int("from-x", 0, "start x position (default: current position)")
	drag.Flags().Int("from-y", 0, "start y position (default: current position)")
	drag.Flags().IntP("speed", "s", autoit.DefaultMouseSpeed, "movement speed")

	wheel := &cobra.Command{
		Use:       "wheel <up|down>",
		Short:     "Scroll the mouse wheel",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(autoit.WheelUp), string(autoit.WheelDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			clicks, _ := cmd.Flags().GetInt("clicks")

			return runWithSession(cmd, func(a *app) error {
				return a.session.Mouse().Wheel(autoit.WheelDirection(args[0]), clicks)
			})
		},
	}
	wheel.Flags().IntP("clicks", "n", 1, "notches to scroll")

	press := &cobra.Command{
		Use:   "press <down|up>",
		Short: "Press or release the primary (or --secondary) button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secondary, _ := cmd.Flags().GetBool("secondary")
			state := autoit.ButtonState(args[0])

			if state != autoit.StateDown && state != autoit.StateUp {
				return fmt.Errorf("state must be down or up, got %q", args[0])
			}

			return runWithSession(cmd, func(a *app) error {
				m := a.session.Mouse()
				if secondary {
					return m.SetSecondaryState(state)
				}

				return m.SetPrimaryState(state)
			})
		},
	}
	press.Flags().Bool("secondary", false, "use the secondary button")

	mouse.AddCommand(pos, click, move, drag, wheel, press)
	return mouse
}

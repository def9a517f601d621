package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/autoitx/internal/autoit"
)

var rectArgNames = []string{"left", "top", "right", "bottom"}

func newPixelCmd() *cobra.Command {
	pixel := &cobra.Command{
		Use:   "pixel",
		Short: "Inspect screen pixels",
	}

	colour := &cobra.Command{
		Use:     "color <x> <y>",
		Aliases: []string{"colour"},
		Short:   "Print the colour of a pixel as 0xRRGGBB",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseInts([]string{"x", "y"}, args)
			if err != nil {
				return err
			}

			return runWithSession(cmd, func(a *app) error {
				p, err := a.session.Pixel(xy[0], xy[1])
				if err != nil {
					return err
				}

				fmt.Fprintln(a.out, p.Colour().Hex())
				return nil
			})
		},
	}

	checksum := &cobra.Command{
		Use:   "checksum <left> <top> <right> <bottom>",
		Short: "Print the checksum of a screen region",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseInts(rectArgNames, args)
			if err != nil {
				return err
			}

			step, _ := cmd.Flags().GetInt("step")

			return runWithSession(cmd, func(a *app) error {
				area, err := a.session.PixelArea(autoit.Rect{Left: r[0], Top: r[1], Right: r[2], Bottom: r[3]}, step)
				if err != nil {
					return err
				}

				fmt.Fprintln(a.out, area.Checksum())
				return nil
			})
		},
	}
	checksum.Flags().Int("step", 1, "check every nth pixel")

	search := &cobra.Command{
		Use:   "search <left> <top> <right> <bottom> <colour>",
		Short: "Print the first point in a region matching a colour",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseInts(rectArgNames, args[:4])
			if err != nil {
				return err
			}

			c, err := parseColour(args[4])
			if err != nil {
				return err
			}

			shade, _ := cmd.Flags().GetInt("shade")
			step, _ := cmd.Flags().GetInt("step")

			return runWithSession(cmd, func(a *app) error {
				area, err := a.session.PixelArea(autoit.Rect{Left: r[0], Top: r[1], Right: r[2], Bottom: r[3]}, step)
				if err != nil {
					return err
				}

				p, err := area.Search(c, autoit.SearchOptions{ShadeVariation: shade, Step: step})
				if err != nil {
					return err
				}

				fmt.Fprintln(a.out, p)
				return nil
			})
		},
	}
	search.Flags().Int("shade", 0, "allowed variation per colour channel, 0-255")
	search.Flags().Int("step", 1, "check every nth pixel")

	pixel.AddCommand(colour, checksum, search)
	return pixel
}

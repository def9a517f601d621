package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/Norgate-AV/autoitx/internal/autoit"
)

var (
	keyColour  = color.New(color.FgCyan)
	trueColour = color.New(color.FgGreen)
	falseColor = color.New(color.FgRed)
)

// printField writes "key: value" with the key highlighted
func printField(w io.Writer, key string, value any) {
	_, _ = keyColour.Fprintf(w, "%s:", key)
	_, _ = fmt.Fprintf(w, " %v\n", value)
}

// printBool writes true or false in green or red
func printBool(w io.Writer, v bool) {
	if v {
		_, _ = trueColour.Fprintln(w, "true")
		return
	}

	_, _ = falseColor.Fprintln(w, "false")
}

// parseInts converts positional arguments to ints, naming the bad one on error
func parseInts(names []string, args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer, got %q", names[i], arg)
		}

		values[i] = v
	}

	return values, nil
}

// parseColour accepts 0xRRGGBB, #RRGGBB or a decimal value
func parseColour(s string) (autoit.Colour, error) {
	if len(s) > 1 && s[0] == '#' {
		s = "0x" + s[1:]
	}

	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil || v < 0 || v > 0xFFFFFF {
		return 0, fmt.Errorf("invalid colour %q, expected 0xRRGGBB", s)
	}

	return autoit.Colour(v), nil
}

// flagReader is the part of *pflag.FlagSet pointFlags needs
type flagReader interface {
	Changed(name string) bool
	GetInt(name string) (int, error)
}

// pointFlags returns the point given by the x and y flags, or nil when neither was set
func pointFlags(cmdFlags flagReader, xName, yName string) (*autoit.Point, error) {
	if !cmdFlags.Changed(xName) && !cmdFlags.Changed(yName) {
		return nil, nil
	}

	if !cmdFlags.Changed(xName) || !cmdFlags.Changed(yName) {
		return nil, fmt.Errorf("--%s and --%s must be given together", xName, yName)
	}

	x, _ := cmdFlags.GetInt(xName)
	y, _ := cmdFlags.GetInt(yName)

	return &autoit.Point{X: x, Y: y}, nil
}

// Package timeouts defines timeout and delay constants for AutoItX3 operations.
package timeouts

import "time"

const (
	// Process Timeouts

	// ProcessWaitTimeout is the default time to wait for a process to appear
	// or to close when the caller does not supply one.
	ProcessWaitTimeout = 10 * time.Second

	// Window Timeouts

	// WindowWaitTimeout is the default time to wait for a window to exist.
	WindowWaitTimeout = 5 * time.Second

	// ToolTip Display

	// ToolTipDisplayDuration is how long the CLI keeps a tooltip on screen
	// before clearing it.
	ToolTipDisplayDuration = 3 * time.Second

	// COM Apartment

	// ApartmentStartTimeout bounds how long opening the backend waits for the
	// COM thread to initialise and create the AutoItX3 object.
	ApartmentStartTimeout = 10 * time.Second
)

// Seconds converts d to whole seconds for AutoIt timeout parameters.
// AutoIt treats 0 as "wait forever", so any positive duration below one
// second rounds up to 1.
func Seconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	s := int(d / time.Second)
	if d%time.Second != 0 {
		s++
	}

	return s
}

package autoit

import (
	"log/slog"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// ToolTipOptions positions a tooltip
type ToolTipOptions struct {
	// At places the tooltip; nil shows it at the mouse cursor
	At *Point
}

// ToolTip is a tooltip shown from construction until Destroy.
// AutoIt shows one tooltip at a time, so a new one replaces any other.
type ToolTip struct {
	backend interfaces.ToolTipBackend
	log     logger.LoggerInterface
	text    string
}

// NewToolTip displays text straight away
func NewToolTip(backend interfaces.ToolTipBackend, text string, opts ToolTipOptions, log logger.LoggerInterface) (*ToolTip, error) {
	t := &ToolTip{backend: backend, log: orNoOp(log), text: text}

	x, y := IntDefault, IntDefault
	if opts.At != nil {
		x, y = opts.At.X, opts.At.Y
	}

	t.log.Trace("ToolTip", slog.Int("x", x), slog.Int("y", y))

	if err := backend.ToolTip(text, x, y); err != nil {
		return nil, transportError("ToolTip", err)
	}

	return t, nil
}

// Text returns the text shown
func (t *ToolTip) Text() string {
	return t.text
}

// Destroy clears the current tooltip
func (t *ToolTip) Destroy() error {
	t.log.Trace("ToolTip clear")

	if err := t.backend.ToolTip("", IntDefault, IntDefault); err != nil {
		return transportError("ToolTip", err)
	}

	return nil
}

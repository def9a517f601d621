package autoit

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// Clipboard reads and writes clipboard text
type Clipboard struct {
	backend interfaces.ClipboardBackend
	log     logger.LoggerInterface
}

// NewClipboard creates a clipboard wrapper
func NewClipboard(backend interfaces.ClipboardBackend, log logger.LoggerInterface) *Clipboard {
	return &Clipboard{backend: backend, log: orNoOp(log)}
}

// Get returns the current clipboard text.
// An empty clipboard yields ErrNotFound; non-text content or a clipboard
// that cannot be opened yields ErrFailed with the @error code.
func (c *Clipboard) Get() (string, error) {
	c.log.Trace("ClipGet")

	text, err := c.backend.ClipGet()
	if err != nil {
		return "", transportError("ClipGet", err)
	}

	if err := checkLastError(c.log, c.backend, "ClipGet", 1); err != nil {
		return "", err
	}

	return text, nil
}

// Put writes the string forms of args, concatenated in order, to the clipboard
func (c *Clipboard) Put(args ...any) error {
	text := concat(args)
	c.log.Trace("ClipPut", slog.Int("length", len(text)))

	ret, err := c.backend.ClipPut(text)
	return checkStatus(c.log, "ClipPut", ret, err)
}

func concat(args []any) string {
	var b strings.Builder
	for _, arg := range args {
		fmt.Fprint(&b, arg)
	}

	return b.String()
}

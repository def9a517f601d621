package autoit

import (
	"log/slog"
	"time"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
	"github.com/Norgate-AV/autoitx/internal/timeouts"
)

// WindowBackend is what Window and Control need from the backend
type WindowBackend interface {
	interfaces.WindowBackend
	interfaces.ControlBackend
}

// Window is a top-level window matched by title and text.
// Matching follows the WinTitleMatchMode option.
type Window struct {
	backend WindowBackend
	log     logger.LoggerInterface
	title   string
	text    string
}

// NewWindow creates a window matcher. Nothing is looked up until a method is called.
func NewWindow(backend WindowBackend, title, text string, log logger.LoggerInterface) *Window {
	return &Window{backend: backend, log: orNoOp(log), title: title, text: text}
}

// Exists reports whether a matching window exists
func (w *Window) Exists() (bool, error) {
	w.log.Trace("WinExists", slog.String("title", w.title))

	ret, err := w.backend.WinExists(w.title, w.text)
	if err != nil {
		return false, transportError("WinExists", err)
	}

	return ret != 0, nil
}

// Activate gives the window focus
func (w *Window) Activate() error {
	w.log.Trace("WinActivate", slog.String("title", w.title))

	if err := w.backend.WinActivate(w.title, w.text); err != nil {
		return transportError("WinActivate", err)
	}

	return nil
}

// Close asks the window to close
func (w *Window) Close() error {
	w.log.Trace("WinClose", slog.String("title", w.title))

	ret, err := w.backend.WinClose(w.title, w.text)
	if err != nil {
		return transportError("WinClose", err)
	}

	if ret == 0 {
		return &OpError{Op: "WinClose", Err: ErrNotFound}
	}

	return nil
}

// Wait blocks until the window exists or timeout passes.
// A zero timeout uses timeouts.WindowWaitTimeout.
func (w *Window) Wait(timeout time.Duration) error {
	if timeout == 0 {
		timeout = timeouts.WindowWaitTimeout
	}

	w.log.Trace("WinWait", slog.String("title", w.title), slog.Duration("timeout", timeout))

	ret, err := w.backend.WinWait(w.title, w.text, timeouts.Seconds(timeout))
	if err != nil {
		return transportError("WinWait", err)
	}

	if ret == 0 {
		return &OpError{Op: "WinWait", Err: ErrTimeout}
	}

	return nil
}

// Handle returns the window handle as AutoIt formats it (hex string)
func (w *Window) Handle() (string, error) {
	hwnd, err := w.backend.WinGetHandle(w.title, w.text)
	if err != nil {
		return "", transportError("WinGetHandle", err)
	}

	if err := checkLastError(w.log, w.backend, "WinGetHandle", 1); err != nil {
		return "", err
	}

	return hwnd, nil
}

// Title returns the full title of the matched window
func (w *Window) Title() (string, error) {
	title, err := w.backend.WinGetTitle(w.title, w.text)
	if err != nil {
		return "", transportError("WinGetTitle", err)
	}

	if err := checkLastError(w.log, w.backend, "WinGetTitle", 1); err != nil {
		return "", err
	}

	return title, nil
}

// Control returns a control of this window, identified by AutoIt control id
// syntax such as "Edit1" or "[CLASS:Button; TEXT:OK]"
func (w *Window) Control(id string) *Control {
	return &Control{window: w, id: id}
}

// Control is a control inside a Window
type Control struct {
	window *Window
	id     string
}

// ID returns the control identifier
func (c *Control) ID() string {
	return c.id
}

// Click clicks the control clicks times with button
func (c *Control) Click(button MouseButton, clicks int) error {
	w := c.window
	if clicks < 1 {
		clicks = 1
	}

	w.log.Trace("ControlClick", slog.String("title", w.title), slog.String("control", c.id))

	ret, err := w.backend.ControlClick(w.title, w.text, c.id, string(buttonOrDefault(button)), clicks)
	return checkStatus(w.log, "ControlClick", ret, err)
}

// Send sends keys to the control without activating its window
func (c *Control) Send(keys string) error {
	w := c.window
	w.log.Trace("ControlSend", slog.String("title", w.title), slog.String("control", c.id))

	ret, err := w.backend.ControlSend(w.title, w.text, c.id, keys, sendSpecial)
	return checkStatus(w.log, "ControlSend", ret, err)
}

// SetText replaces the control's text
func (c *Control) SetText(value string) error {
	w := c.window
	w.log.Trace("ControlSetText", slog.String("title", w.title), slog.String("control", c.id))

	ret, err := w.backend.ControlSetText(w.title, w.text, c.id, value)
	return checkStatus(w.log, "ControlSetText", ret, err)
}

// Text returns the control's text
func (c *Control) Text() (string, error) {
	w := c.window

	text, err := w.backend.ControlGetText(w.title, w.text, c.id)
	if err != nil {
		return "", transportError("ControlGetText", err)
	}

	if err := checkLastError(w.log, w.backend, "ControlGetText", 1); err != nil {
		return "", err
	}

	return text, nil
}

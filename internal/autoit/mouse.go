package autoit

import (
	"log/slog"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// MouseButton names a button the way AutoIt expects it
type MouseButton string

const (
	ButtonLeft      MouseButton = "left"
	ButtonRight     MouseButton = "right"
	ButtonMiddle    MouseButton = "middle"
	ButtonPrimary   MouseButton = "primary"   // follows the system button swap setting
	ButtonSecondary MouseButton = "secondary" // follows the system button swap setting
)

// ButtonState is a pressed or released button
type ButtonState string

const (
	StateDown ButtonState = "down"
	StateUp   ButtonState = "up"
)

// WheelDirection is the mouse wheel direction
type WheelDirection string

const (
	WheelUp   WheelDirection = "up"
	WheelDown WheelDirection = "down"
)

// DefaultMouseSpeed is AutoIt's default movement speed (0 instant, 100 slowest)
const DefaultMouseSpeed = 10

// CursorID identifies the mouse cursor shape
type CursorID int

const (
	CursorUnknown CursorID = iota
	CursorAppStarting
	CursorArrow
	CursorCross
	CursorHelp
	CursorIBeam
	CursorIcon
	CursorNo
	CursorSize
	CursorSizeAll
	CursorSizeNESW
	CursorSizeNS
	CursorSizeNWSE
	CursorSizeWE
	CursorUpArrow
	CursorWait
	CursorHand
)

var cursorNames = map[CursorID]string{
	CursorUnknown:     "UNKNOWN",
	CursorAppStarting: "APPSTARTING",
	CursorArrow:       "ARROW",
	CursorCross:       "CROSS",
	CursorHelp:        "HELP",
	CursorIBeam:       "IBEAM",
	CursorIcon:        "ICON",
	CursorNo:          "NO",
	CursorSize:        "SIZE",
	CursorSizeAll:     "SIZEALL",
	CursorSizeNESW:    "SIZENESW",
	CursorSizeNS:      "SIZENS",
	CursorSizeNWSE:    "SIZENWSE",
	CursorSizeWE:      "SIZEWE",
	CursorUpArrow:     "UPARROW",
	CursorWait:        "WAIT",
	CursorHand:        "HAND",
}

func (c CursorID) String() string {
	if name, ok := cursorNames[c]; ok {
		return name
	}

	return "UNKNOWN"
}

// ClickOptions configures Mouse.Click
type ClickOptions struct {
	Button MouseButton // default ButtonLeft
	At     *Point      // default: current position
	Clicks int         // default 1
	Speed  int         // 1-100, default DefaultMouseSpeed
	// Instant moves the pointer with speed 0, overriding Speed
	Instant bool
}

// DragOptions configures Mouse.ClickDrag
type DragOptions struct {
	Button  MouseButton // default ButtonLeft
	Start   *Point      // default: current position
	End     Point
	Speed   int // default DefaultMouseSpeed
	Instant bool
}

// Mouse moves and clicks the mouse
type Mouse struct {
	backend interfaces.MouseBackend
	log     logger.LoggerInterface
}

// NewMouse creates a mouse wrapper
func NewMouse(backend interfaces.MouseBackend, log logger.LoggerInterface) *Mouse {
	return &Mouse{backend: backend, log: orNoOp(log)}
}

// Click clicks a button, at the current position unless opts.At is set
func (m *Mouse) Click(opts ClickOptions) error {
	button := buttonOrDefault(opts.Button)
	clicks := opts.Clicks
	if clicks < 1 {
		clicks = 1
	}

	x, y := IntDefault, IntDefault
	if opts.At != nil {
		x, y = opts.At.X, opts.At.Y
	}

	speed := speedOrDefault(opts.Speed, opts.Instant)
	m.log.Trace("MouseClick",
		slog.String("button", string(button)),
		slog.Int("x", x), slog.Int("y", y),
		slog.Int("clicks", clicks), slog.Int("speed", speed),
	)

	ret, err := m.backend.MouseClick(string(button), x, y, clicks, speed)
	return checkStatus(m.log, "MouseClick", ret, err)
}

// ClickDrag drags from opts.Start (the current position if nil) to opts.End
func (m *Mouse) ClickDrag(opts DragOptions) error {
	button := buttonOrDefault(opts.Button)

	var start Point
	if opts.Start != nil {
		start = *opts.Start
	} else {
		pos, err := m.Position()
		if err != nil {
			return err
		}

		start = pos
	}

	speed := speedOrDefault(opts.Speed, opts.Instant)
	m.log.Trace("MouseClickDrag",
		slog.String("button", string(button)),
		slog.String("from", start.String()),
		slog.String("to", opts.End.String()),
		slog.Int("speed", speed),
	)

	ret, err := m.backend.MouseClickDrag(string(button), start.X, start.Y, opts.End.X, opts.End.Y, speed)
	return checkStatus(m.log, "MouseClickDrag", ret, err)
}

// Move moves the pointer to p. A negative speed uses the default.
func (m *Mouse) Move(p Point, speed int) error {
	if speed < 0 {
		speed = DefaultMouseSpeed
	}

	m.log.Trace("MouseMove", slog.String("to", p.String()), slog.Int("speed", speed))

	if _, err := m.backend.MouseMove(p.X, p.Y, speed); err != nil {
		return transportError("MouseMove", err)
	}

	return nil
}

// Wheel scrolls the wheel by clicks notches
func (m *Mouse) Wheel(direction WheelDirection, clicks int) error {
	if clicks < 1 {
		clicks = 1
	}

	m.log.Trace("MouseWheel", slog.String("direction", string(direction)), slog.Int("clicks", clicks))

	if err := m.backend.MouseWheel(string(direction), clicks); err != nil {
		return transportError("MouseWheel", err)
	}

	return nil
}

// Position returns the pointer position
func (m *Mouse) Position() (Point, error) {
	x, err := m.backend.MouseGetPosX()
	if err != nil {
		return Point{}, transportError("MouseGetPosX", err)
	}

	y, err := m.backend.MouseGetPosY()
	if err != nil {
		return Point{}, transportError("MouseGetPosY", err)
	}

	return Point{X: x, Y: y}, nil
}

// Cursor returns the current cursor shape
func (m *Mouse) Cursor() (CursorID, error) {
	id, err := m.backend.MouseGetCursor()
	if err != nil {
		return CursorUnknown, transportError("MouseGetCursor", err)
	}

	return CursorID(id), nil
}

// SetPrimaryState presses or releases the primary button.
// States other than StateDown and StateUp are ignored.
func (m *Mouse) SetPrimaryState(state ButtonState) error {
	return m.setState(ButtonPrimary, state)
}

// SetSecondaryState presses or releases the secondary button.
// States other than StateDown and StateUp are ignored.
func (m *Mouse) SetSecondaryState(state ButtonState) error {
	return m.setState(ButtonSecondary, state)
}

func (m *Mouse) setState(button MouseButton, state ButtonState) error {
	switch state {
	case StateDown:
		m.log.Trace("MouseDown", slog.String("button", string(button)))
		if err := m.backend.MouseDown(string(button)); err != nil {
			return transportError("MouseDown", err)
		}
	case StateUp:
		m.log.Trace("MouseUp", slog.String("button", string(button)))
		if err := m.backend.MouseUp(string(button)); err != nil {
			return transportError("MouseUp", err)
		}
	default:
		m.log.Debug("Ignoring unknown button state", slog.String("state", string(state)))
	}

	return nil
}

func buttonOrDefault(b MouseButton) MouseButton {
	if b == "" {
		return ButtonLeft
	}

	return b
}

func speedOrDefault(speed int, instant bool) int {
	if instant {
		return 0
	}

	if speed <= 0 {
		return DefaultMouseSpeed
	}

	return speed
}

// Package interfaces defines the AutoItX3 backend contract used for dependency injection and testing.
//
// Methods mirror the AutoItX3 COM methods one to one. Integer returns are the raw
// AutoIt return values; the error return only reports transport failures (COM
// dispatch errors), never AutoIt-level failures. AutoIt-level failures are read
// through ErrorReporter immediately after the call.
package interfaces

// ErrorReporter exposes the AutoIt @error value set by the most recent call
type ErrorReporter interface {
	LastError() (int, error)
}

// ClipboardBackend handles clipboard text
type ClipboardBackend interface {
	ErrorReporter
	ClipGet() (string, error)
	ClipPut(text string) (int, error)
}

// IniBackend handles ini file access
type IniBackend interface {
	ErrorReporter
	IniRead(filename, section, key, def string) (string, error)
	IniWrite(filename, section, key, value string) (int, error)
	IniDeleteSection(filename, section string) (int, error)
	IniDeleteKey(filename, section, key string) (int, error)
}

// PixelBackend handles screen pixel inspection
type PixelBackend interface {
	ErrorReporter
	PixelGetColor(x, y int) (int, error)
	PixelChecksum(left, top, right, bottom, step int) (int64, error)
	PixelSearch(left, top, right, bottom, colour, shade, step int) (x, y int, err error)
}

// KeyboardBackend handles key sequence injection
type KeyboardBackend interface {
	Send(keys string, flag int) error
}

// ToolTipBackend displays tooltips
type ToolTipBackend interface {
	ToolTip(text string, x, y int) error
}

// MouseBackend handles mouse input and queries
type MouseBackend interface {
	MouseClick(button string, x, y, clicks, speed int) (int, error)
	MouseClickDrag(button string, x1, y1, x2, y2, speed int) (int, error)
	MouseDown(button string) error
	MouseUp(button string) error
	MouseMove(x, y, speed int) (int, error)
	MouseWheel(direction string, clicks int) error
	MouseGetPosX() (int, error)
	MouseGetPosY() (int, error)
	MouseGetCursor() (int, error)
}

// ProcessBackend handles process lookup, launch and control
type ProcessBackend interface {
	ErrorReporter
	ProcessExists(name string) (int, error)
	ProcessClose(name string) (int, error)
	ProcessSetPriority(name string, priority int) (int, error)
	ProcessWait(name string, timeout int) (int, error)
	ProcessWaitClose(name string, timeout int) (int, error)
	Run(program, dir string, show int) (int, error)
	RunWait(program, dir string, show int) (int, error)
	RunAs(user, domain, password string, logonFlag int, program, dir string, show int) (int, error)
	RunAsWait(user, domain, password string, logonFlag int, program, dir string, show int) (int, error)
}

// RegistryBackend handles registry access
type RegistryBackend interface {
	ErrorReporter
	RegRead(key, value string) (string, error)
	RegWrite(key, value, typ, data string) (int, error)
	RegDeleteKey(key string) (int, error)
	RegDeleteVal(key, value string) (int, error)
	RegEnumKey(key string, instance int) (string, error)
	RegEnumVal(key string, instance int) (string, error)
}

// WindowBackend handles top-level window operations
type WindowBackend interface {
	ErrorReporter
	WinExists(title, text string) (int, error)
	WinActivate(title, text string) error
	WinClose(title, text string) (int, error)
	WinWait(title, text string, timeout int) (int, error)
	WinGetHandle(title, text string) (string, error)
	WinGetTitle(title, text string) (string, error)
}

// ControlBackend handles operations on controls inside a window
type ControlBackend interface {
	ErrorReporter
	ControlClick(title, text, control, button string, clicks int) (int, error)
	ControlSend(title, text, control, keys string, flag int) (int, error)
	ControlSetText(title, text, control, value string) (int, error)
	ControlGetText(title, text, control string) (string, error)
}

// DriveMapBackend handles network drive mappings
type DriveMapBackend interface {
	ErrorReporter
	DriveMapAdd(device, share string, flags int, user, password string) (string, error)
	DriveMapDel(device string) (int, error)
	DriveMapGet(device string) (string, error)
}

// SystemBackend handles input blocking, shutdown and engine options
type SystemBackend interface {
	BlockInput(flag int) error
	Shutdown(code int) (int, error)
	IsAdmin() (int, error)
	AutoItSetOption(option string, value int) (int, error)
}

// Backend is the full AutoItX3 surface
type Backend interface {
	ClipboardBackend
	IniBackend
	PixelBackend
	KeyboardBackend
	ToolTipBackend
	MouseBackend
	ProcessBackend
	RegistryBackend
	WindowBackend
	ControlBackend
	DriveMapBackend
	SystemBackend
	Close() error
}
